package geom

import (
	"math"

	"github.com/paulmach/orb"
)

// Ring is an explicitly closed polygon boundary with counterclockwise
// winding.
//
// Construction normalizes the two representation hazards of raw vertex
// lists: a duplicated closing vertex is dropped (closure is structural, the
// closing edge is always part of edge iteration), and clockwise input is
// reversed so that inward normals and the inside/outside sign convention
// hold for any input winding.
//
// A Ring is immutable after construction and safe for concurrent use.
type Ring struct {
	pts   orb.Ring // open storage; Edge(i) wraps modularly
	bound orb.Bound
}

// NewRing builds a Ring from vertices in order. The closing vertex may be
// present or absent; fewer than three vertices yields ErrRingTooSmall.
// Degenerate (repeated or collinear) vertices are tolerated, not validated:
// well-formedness is a caller precondition.
func NewRing(pts ...orb.Point) (Ring, error) {
	n := len(pts)
	if n >= 2 && pts[0] == pts[n-1] {
		n--
	}
	if n < 3 {
		return Ring{}, ErrRingTooSmall
	}

	open := make(orb.Ring, n)
	copy(open, pts[:n])

	closed := append(orb.Ring{}, open...)
	closed = append(closed, open[0])
	if closed.Orientation() == orb.CW {
		for i, j := 0, len(open)-1; i < j; i, j = i+1, j-1 {
			open[i], open[j] = open[j], open[i]
		}
	}

	return Ring{pts: open, bound: closed.Bound()}, nil
}

// NewRingXY builds a Ring from parallel coordinate arrays.
func NewRingXY(xs, ys []float64) (Ring, error) {
	if len(xs) != len(ys) {
		return Ring{}, ErrShapeMismatch
	}
	pts := make([]orb.Point, len(xs))
	for i := range xs {
		pts[i] = orb.Point{xs[i], ys[i]}
	}
	return NewRing(pts...)
}

// NumVertices returns the number of stored (distinct) vertices.
func (r Ring) NumVertices() int { return len(r.pts) }

// Vertex returns the i-th vertex in counterclockwise order.
func (r Ring) Vertex(i int) orb.Point { return r.pts[i] }

// NumEdges returns the edge count, which equals the vertex count: the
// closing edge from the last vertex back to the first is always included.
func (r Ring) NumEdges() int { return len(r.pts) }

// Edge returns the endpoints of the i-th edge; i == NumEdges()-1 is the
// closing edge.
func (r Ring) Edge(i int) (a, b orb.Point) {
	a = r.pts[i]
	b = r.pts[(i+1)%len(r.pts)]
	return a, b
}

// Bound returns the axis-aligned bounding box of the ring.
func (r Ring) Bound() orb.Bound { return r.bound }

// Closed returns a closed copy (first vertex repeated at the end) for
// interoperation with code that expects the closing vertex materialized.
func (r Ring) Closed() orb.Ring {
	out := make(orb.Ring, 0, len(r.pts)+1)
	out = append(out, r.pts...)
	out = append(out, r.pts[0])
	return out
}

// Normals returns the inward unit normal of every edge, closing edge
// included. Each normal is the edge tangent rotated +90° and normalized;
// with counterclockwise winding that rotation points into the ring.
// Zero-length edges yield a zero vector.
func (r Ring) Normals() []orb.Point {
	out := make([]orb.Point, r.NumEdges())
	for i := range out {
		a, b := r.Edge(i)
		tx, ty := b[0]-a[0], b[1]-a[1]
		l := math.Hypot(tx, ty)
		if l == 0 {
			continue
		}
		out[i] = orb.Point{-ty / l, tx / l}
	}
	return out
}

// Contains reports whether p lies inside the ring, where "inside" means
// the smoothed signed distance is at most opt.Tol. Points exactly on an
// edge therefore count as inside; this is the documented tie-break used by
// multi-region assignment.
func (r Ring) Contains(p orb.Point, opt Options) bool {
	opt = opt.withDefaults()
	return SignedDistance(p, r, opt) <= opt.Tol
}
