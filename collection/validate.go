package collection

import "fmt"

// Validate audits an extraction against its solved graph.
//
// Three passes, in order:
//
//  1. shape and range: all three arrays hold exactly T rows, and every
//     terse target is a turbine or an in-range substation, never the
//     origin itself;
//  2. reachability: following terse links from every turbine reaches a
//     substation within T hops, so the encoded forest has no cycles;
//  3. load monotonicity: a cable's load is strictly below its downstream
//     turbine's load, since every downstream cable aggregates at least one
//     more turbine.
//
// Extract already guarantees most of this for graphs it built itself;
// Validate exists for outputs that crossed a serialization or solver
// boundary before coming back.
//
// Complexity: O(T·L), L = longest string.
//
// Errors: ErrShapeMismatch, ErrBadNode, ErrUnreachableRoot, ErrBadLoad.
func Validate(s *Solved, ex *Extraction) error {
	t := s.turbines
	if len(ex.TerseLinks) != t || len(ex.Lengths) != t || len(ex.Loads) != t {
		return fmt.Errorf("%w: want %d rows, have %d/%d/%d",
			ErrShapeMismatch, t, len(ex.TerseLinks), len(ex.Lengths), len(ex.Loads))
	}

	for i, next := range ex.TerseLinks {
		switch {
		case next == i:
			return fmt.Errorf("%w: turbine %d links to itself", ErrBadNode, i)
		case next >= t:
			return fmt.Errorf("%w: terse link of %d targets %d with T=%d", ErrBadNode, i, next, t)
		case next < 0 && -next > s.substations:
			return fmt.Errorf("%w: terse link of %d targets %d with R=%d", ErrBadNode, i, next, s.substations)
		}
	}

	for i := 0; i < t; i++ {
		cur := i
		for hops := 0; cur >= 0; hops++ {
			if hops >= t {
				return fmt.Errorf("%w: turbine %d never reaches a substation", ErrUnreachableRoot, i)
			}
			cur = ex.TerseLinks[cur]
		}
	}

	for i, next := range ex.TerseLinks {
		if next >= 0 && ex.Loads[next] <= ex.Loads[i] {
			return fmt.Errorf("%w: load %d at turbine %d, load %d downstream at %d",
				ErrBadLoad, ex.Loads[i], i, ex.Loads[next], next)
		}
	}
	return nil
}
