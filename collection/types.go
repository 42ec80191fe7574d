// Package collection defines the graph types fed into the extraction
// engine and the sentinel errors it can surface.
//
// Node indexing follows the routing solver's convention: turbines occupy
// 0..T-1, substations are negative (-1..-R), and synthetic relay vertices
// created for detoured feeder routes sit at T and above. Every index is
// resolved to a tagged Node exactly once, at ingestion, so the algorithms
// downstream branch on Node.Kind instead of re-deriving index ranges.
//
// Errors (sentinel):
//
//	– ErrNoTurbines     if a graph is built with no turbines.
//	– ErrNoSubstations  if a graph is built with no substations.
//	– ErrBadNode        if an edge touches an index outside the valid ranges.
//	– ErrBadLoad        if an edge load is not a positive turbine count.
//	– ErrDuplicateEdge  if the same undirected edge is ingested twice.
//	– ErrDuplicateOrigin if two edges originate at the same turbine.
//	– ErrTerseGap       if some turbine originates no edge.
//	– ErrMissingLink    if the candidate table lacks a solved edge's length.
//	– ErrDetourCycle    if a detour walk exceeds its hop bound.
//	– ErrLengthMismatch if per-turbine lengths fail the conservation check.
//	– ErrShapeMismatch  if parallel coordinate arrays disagree in length.
//	– ErrUnreachableRoot if terse links do not lead to a substation.
//	– ErrNotATree       if the solved graph is not a forest.
package collection

import (
	"errors"
	"fmt"
)

// DefaultLengthTol is the absolute tolerance for the length conservation
// check: the per-turbine lengths must sum to the physical graph's total
// weighted size within this bound.
const DefaultLengthTol = 1e-7

// Sentinel errors returned by graph ingestion and extraction.
var (
	// ErrNoTurbines indicates a solved graph constructed with T < 1.
	ErrNoTurbines = errors.New("collection: graph has no turbines")

	// ErrNoSubstations indicates a solved graph constructed with R < 1.
	ErrNoSubstations = errors.New("collection: graph has no substations")

	// ErrBadNode indicates an edge endpoint outside the valid index ranges,
	// or an edge whose resolved origin is not a turbine.
	ErrBadNode = errors.New("collection: node index outside the expected range")

	// ErrBadLoad indicates an edge load that is not a positive turbine count,
	// or loads that do not grow monotonically toward the substation.
	ErrBadLoad = errors.New("collection: edge load is not a positive turbine count")

	// ErrDuplicateEdge indicates the same undirected edge ingested twice.
	ErrDuplicateEdge = errors.New("collection: duplicate undirected edge")

	// ErrDuplicateOrigin indicates two solved edges claiming the same turbine
	// as their origin; the terse representation admits exactly one.
	ErrDuplicateOrigin = errors.New("collection: two edges originate at the same turbine")

	// ErrTerseGap indicates a turbine that originates no edge at all.
	ErrTerseGap = errors.New("collection: a turbine originates no edge")

	// ErrMissingLink indicates a solved edge with no length entry in the
	// candidate link table (or root-distance table, for feeders).
	ErrMissingLink = errors.New("collection: no length entry for a solved edge")

	// ErrDetourCycle indicates a detour walk that exceeded its hop bound;
	// the physical graph contains a cycle or a broken relay chain.
	ErrDetourCycle = errors.New("collection: detour walk exceeded its hop bound")

	// ErrLengthMismatch indicates a failed length conservation check: a logic
	// defect in either the extraction or the upstream solver output.
	ErrLengthMismatch = errors.New("collection: per-turbine lengths do not sum to the physical total")

	// ErrShapeMismatch indicates parallel x/y arrays of different lengths.
	ErrShapeMismatch = errors.New("collection: coordinate arrays differ in length")

	// ErrUnreachableRoot indicates a turbine whose terse-link chain never
	// reaches a substation.
	ErrUnreachableRoot = errors.New("collection: terse links do not lead to a substation")

	// ErrNotATree indicates a solved graph that is not a forest rooted at
	// its substations.
	ErrNotATree = errors.New("collection: solved graph is not a tree")

	// ErrBadHopCap indicates WithMaxHops called with a non-positive cap.
	ErrBadHopCap = errors.New("collection: MaxHops must be positive")

	// ErrBadTolerance indicates WithLengthTolerance called with a
	// non-positive tolerance.
	ErrBadTolerance = errors.New("collection: LengthTol must be positive")
)

// NodeKind partitions solver node indices by role.
type NodeKind uint8

const (
	// KindTurbine is a generator node, index 0..T-1.
	KindTurbine NodeKind = iota

	// KindSubstation is a collection root, index -R..-1.
	KindSubstation

	// KindRelay is a synthetic routing vertex, index ≥ T, introduced when a
	// feeder's direct path is infeasible.
	KindRelay
)

// String implements fmt.Stringer for log and error formatting.
func (k NodeKind) String() string {
	switch k {
	case KindTurbine:
		return "turbine"
	case KindSubstation:
		return "substation"
	case KindRelay:
		return "relay"
	default:
		return "unknown"
	}
}

// Node is a solver index resolved to its role.
type Node struct {
	ID   int
	Kind NodeKind
}

// Classify resolves a raw solver index against the turbine count.
func Classify(id, turbines int) Node {
	switch {
	case id < 0:
		return Node{ID: id, Kind: KindSubstation}
	case id < turbines:
		return Node{ID: id, Kind: KindTurbine}
	default:
		return Node{ID: id, Kind: KindRelay}
	}
}

// Edge is one undirected link of the solver output. U and V may arrive in
// either order; ingestion canonicalizes to (smaller, larger).
//
// Reverse is defined against the canonical orientation: it reports that the
// stored direction runs opposite to "flow toward the substation", so the
// origin (the turbine whose cable this is) is the larger endpoint when
// Reverse is true and the smaller endpoint otherwise. Feeder edges pair a
// negative substation index with a turbine, which forces Reverse true.
type Edge struct {
	U, V    int
	Load    int
	Reverse bool
}

// link is an ingested edge: canonical endpoints plus the resolved
// origin/target pair.
type link struct {
	u, v   Node // canonical: u.ID < v.ID
	origin Node
	target Node
	load   int
}

// Solved is the ingested solver output: a forest of cable links over turbine
// and substation nodes, every edge canonicalized and its origin resolved.
// Build one with NewSolved; the zero value is not usable.
type Solved struct {
	turbines    int
	substations int
	maxLoad     int
	links       []link
}

// NewSolved validates and ingests a solver output graph.
//
// turbines and substations are the node counts T and R. Each edge endpoint
// must be a turbine (0..T-1) or a substation (-R..-1); relay indices never
// appear in the solved graph, only in the physical routing graph. The
// resolved origin of every edge must be a turbine: a feeder stored with
// Reverse=false is rejected here rather than silently mis-indexing the
// output arrays.
//
// Complexity: O(E).
func NewSolved(turbines, substations int, edges []Edge) (*Solved, error) {
	if turbines < 1 {
		return nil, ErrNoTurbines
	}
	if substations < 1 {
		return nil, ErrNoSubstations
	}

	s := &Solved{
		turbines:    turbines,
		substations: substations,
		links:       make([]link, 0, len(edges)),
	}
	seen := make(map[[2]int]struct{}, len(edges))

	for _, e := range edges {
		u, v := e.U, e.V
		if u > v {
			u, v = v, u
		}
		if u == v {
			return nil, fmt.Errorf("%w: self loop at %d", ErrBadNode, u)
		}
		if u < -substations || v >= turbines {
			return nil, fmt.Errorf("%w: edge (%d,%d) with T=%d R=%d", ErrBadNode, u, v, turbines, substations)
		}
		nu, nv := Classify(u, turbines), Classify(v, turbines)
		if nv.Kind == KindSubstation {
			// u < v, so u is a substation too.
			return nil, fmt.Errorf("%w: edge (%d,%d) links two substations", ErrBadNode, u, v)
		}
		if e.Load < 1 {
			return nil, fmt.Errorf("%w: edge (%d,%d) load %d", ErrBadLoad, u, v, e.Load)
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrDuplicateEdge, u, v)
		}
		seen[key] = struct{}{}

		origin, target := nu, nv
		if e.Reverse {
			origin, target = nv, nu
		}
		if origin.Kind != KindTurbine {
			return nil, fmt.Errorf("%w: edge (%d,%d) resolves its origin to %s %d; check the reverse flag",
				ErrBadNode, u, v, origin.Kind, origin.ID)
		}

		if e.Load > s.maxLoad {
			s.maxLoad = e.Load
		}
		s.links = append(s.links, link{u: nu, v: nv, origin: origin, target: target, load: e.Load})
	}
	return s, nil
}

// Turbines returns the turbine count T.
func (s *Solved) Turbines() int { return s.turbines }

// Substations returns the substation count R.
func (s *Solved) Substations() int { return s.substations }

// MaxLoad returns the maximum edge load anywhere in the graph.
func (s *Solved) MaxLoad() int { return s.maxLoad }

// NumEdges returns the number of ingested edges.
func (s *Solved) NumEdges() int { return len(s.links) }

// Options configures Extract.
//
// MaxHops   – hard cap on relay hops per detour walk. 0 derives a bound from
// the graphs: ten times the combined node count, which any legitimate simple
// chain sits far below.
// LengthTol – absolute tolerance for the length conservation check.
type Options struct {
	MaxHops   int
	LengthTol float64
}

// Option is a functional option for configuring Extract.
type Option func(*Options)

// WithMaxHops caps the relay hops a single detour walk may take.
// Must be positive; non-positive values cause ErrBadHopCap.
func WithMaxHops(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadHopCap.Error())
		}
		o.MaxHops = n
	}
}

// WithLengthTolerance overrides the length conservation tolerance.
// Must be positive; non-positive values cause ErrBadTolerance.
func WithLengthTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic(ErrBadTolerance.Error())
		}
		o.LengthTol = tol
	}
}

// DefaultOptions returns the Extract defaults: a derived hop bound and the
// 1e-7 conservation tolerance.
func DefaultOptions() Options {
	return Options{
		MaxHops:   0, // derived per call from graph size
		LengthTol: DefaultLengthTol,
	}
}

// DetourError reports a detour-chain walk that could not complete. Root and
// Head identify the feeder being resolved, Node is where the walk stopped,
// and the wrapped sentinel distinguishes a hop-bound overrun (ErrDetourCycle)
// from a chain with no viable next hop (ErrMissingLink).
type DetourError struct {
	Root, Head int
	Node       int
	Hops       int
	Err        error
}

// Error implements the error interface.
func (e *DetourError) Error() string {
	return fmt.Sprintf("%v: feeder (%d,%d) stopped at node %d after %d hops",
		e.Err, e.Root, e.Head, e.Node, e.Hops)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *DetourError) Unwrap() error { return e.Err }

// LengthMismatchError reports a failed length conservation check.
type LengthMismatchError struct {
	Got, Want, Tol float64
}

// Error implements the error interface.
func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%v: got %.9g, want %.9g (tolerance %g)",
		ErrLengthMismatch, e.Got, e.Want, e.Tol)
}

// Unwrap exposes ErrLengthMismatch for errors.Is.
func (e *LengthMismatchError) Unwrap() error { return ErrLengthMismatch }
