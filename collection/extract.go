package collection

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Extraction is the dense per-turbine view of a solved collection network.
//
// TerseLinks[i] is the node the cable originating at turbine i runs to:
// another turbine, or a negative substation index. Lengths[i] is that
// cable's physical length, including any relay hops hidden behind a
// detoured feeder. Loads[i] is the turbine count the cable carries.
// TotalLength and MaxLoad are the farm-level scalars downstream cost
// models consume.
type Extraction struct {
	TerseLinks  []int
	Lengths     []float64
	Loads       []int
	TotalLength float64
	MaxLoad     int
}

// Extract converts a solved collection graph into per-turbine arrays.
//
// Every solved edge writes its target and load at its origin turbine's row.
// The cable length comes from one of three sources:
//
//  1. inter-turbine edge: the candidate link table entry for the pair;
//  2. direct feeder (substation endpoint, and the physical graph holds the
//     link): the precomputed root distance of the head turbine;
//  3. detoured feeder (no direct physical link): a bounded walk along the
//     relay chain realizing the feeder, summing hop lengths until the chain
//     drops back below the turbine index range.
//
// After the edge pass the per-turbine lengths must sum to the physical
// graph's total weighted size within LengthTol. A mismatch means either an
// extraction defect or an inconsistent solver output, and aborts the
// evaluation: inconsistent lengths would silently corrupt every downstream
// cost gradient.
//
// Complexity: O(E + H), E = solved edges, H = total relay hops walked.
//
// Errors: ErrDuplicateOrigin, ErrTerseGap, ErrMissingLink, *DetourError
// (wrapping ErrDetourCycle or ErrMissingLink), *LengthMismatchError.
func Extract(s *Solved, links *CandidateLinks, phys *Physical, opts ...Option) (*Extraction, error) {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	maxHops := o.MaxHops
	if maxHops == 0 {
		// A legitimate chain visits each physical node at most once; ten
		// times the combined node count leaves generous slack.
		maxHops = 10 * (s.turbines + s.substations + phys.NumNodes())
	}

	t := s.turbines
	ex := &Extraction{
		TerseLinks: make([]int, t),
		Lengths:    make([]float64, t),
		Loads:      make([]int, t),
		MaxLoad:    s.maxLoad,
	}
	filled := make([]bool, t)

	for _, l := range s.links {
		i := l.origin.ID
		if filled[i] {
			return nil, fmt.Errorf("%w: turbine %d", ErrDuplicateOrigin, i)
		}
		filled[i] = true
		ex.TerseLinks[i] = l.target.ID
		ex.Loads[i] = l.load

		switch {
		case l.u.Kind != KindSubstation:
			// Inter-turbine link: the candidate table has it directly.
			d, ok := links.Length(l.u.ID, l.v.ID)
			if !ok {
				return nil, fmt.Errorf("%w: (%d,%d)", ErrMissingLink, l.u.ID, l.v.ID)
			}
			ex.Lengths[i] = d
		case phys.HasEdge(l.u.ID, l.v.ID):
			// Straight feeder: priced by the routed root distance.
			d, ok := links.RootDistance(l.v.ID, l.u.ID)
			if !ok {
				return nil, fmt.Errorf("%w: root distance (%d,%d)", ErrMissingLink, l.v.ID, l.u.ID)
			}
			ex.Lengths[i] = d
		default:
			// Segmented feeder: reconstruct the relay-chain route.
			d, err := detourLength(phys, l.u.ID, l.v.ID, l.load, t, maxHops)
			if err != nil {
				return nil, err
			}
			ex.Lengths[i] = d
		}
	}

	for i, ok := range filled {
		if !ok {
			return nil, fmt.Errorf("%w: turbine %d", ErrTerseGap, i)
		}
	}

	ex.TotalLength = floats.Sum(ex.Lengths)
	if diff := math.Abs(ex.TotalLength - phys.TotalLength()); diff > o.LengthTol {
		return nil, &LengthMismatchError{Got: ex.TotalLength, Want: phys.TotalLength(), Tol: o.LengthTol}
	}
	return ex, nil
}

// detourLength walks the relay chain realizing feeder (root, head) and
// returns the summed hop lengths.
//
// The first hop is head's physical neighbor that is a relay carrying the
// feeder's load; each later hop moves to the neighbor that is not the node
// just visited (relay vertices have exactly two neighbors in well-formed
// graphs; ties resolve in adjacency insertion order). The chain ends at the
// first index below the turbine range — the substation side of the feeder.
func detourLength(phys *Physical, root, head, load, turbines, maxHops int) (float64, error) {
	var (
		total float64
		fwd   int
		found bool
	)
	for _, h := range phys.Neighbors(head) {
		if h.To >= turbines && h.Load == load {
			fwd, total, found = h.To, h.Length, true
			break
		}
	}
	if !found {
		return 0, &DetourError{Root: root, Head: head, Node: head, Hops: 0, Err: ErrMissingLink}
	}

	prev, cur := head, fwd
	hops := 1
	for cur >= turbines {
		if hops >= maxHops {
			return 0, &DetourError{Root: root, Head: head, Node: cur, Hops: hops, Err: ErrDetourCycle}
		}
		next, nlen, ok := stepAway(phys, cur, prev)
		if !ok {
			return 0, &DetourError{Root: root, Head: head, Node: cur, Hops: hops, Err: ErrMissingLink}
		}
		total += nlen
		prev, cur = cur, next
		hops++
	}
	return total, nil
}

// stepAway picks cur's first neighbor that is not prev.
func stepAway(phys *Physical, cur, prev int) (next int, length float64, ok bool) {
	for _, h := range phys.Neighbors(cur) {
		if h.To != prev {
			return h.To, h.Length, true
		}
	}
	return 0, 0, false
}
