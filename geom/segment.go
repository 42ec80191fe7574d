package geom

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// PointToSegment — Euclidean distance from a point to a line segment,
// N-dimensional.
//
// Description:
//
//	Projects p onto the parametric line through a and b and clamps the
//	projection parameter to [0,1], so the closest point never leaves the
//	segment. A segment that degenerates to a single point reduces to the
//	point-to-point distance. The result is exactly zero for any p on the
//	segment and stays finite and smooth for near-degenerate segments.
//
// p, a and b must share one length (2 or 3 in practice); shapes are a
// documented caller precondition and are not validated here.
func PointToSegment(p, a, b []float64) float64 {
	c, _ := ClosestOnSegment(p, a, b)
	return floats.Distance(p, c, 2)
}

// ClosestOnSegment returns the closest point on segment a-b to p together
// with the clamped projection parameter t ∈ [0,1] (t=0 at a, t=1 at b).
func ClosestOnSegment(p, a, b []float64) ([]float64, float64) {
	n := len(a)
	seg := make([]float64, n)
	floats.SubTo(seg, b, a)

	den := floats.Dot(seg, seg)
	if den == 0 {
		c := make([]float64, n)
		copy(c, a)
		return c, 0
	}

	rel := make([]float64, n)
	floats.SubTo(rel, p, a)
	t := floats.Dot(rel, seg) / den
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	c := make([]float64, n)
	floats.AddScaledTo(c, a, t, seg)
	return c, t
}

// OnSegment reports whether p lies on segment a-b within tol.
func OnSegment(p, a, b []float64, tol float64) bool {
	return PointToSegment(p, a, b) <= tol
}

// pointSeg2 is the allocation-free 2D kernel behind the ray cast: distance
// from (px,py) to segment (ax,ay)-(bx,by) plus the clamped closest point.
func pointSeg2(px, py, ax, ay, bx, by float64) (d, cx, cy float64) {
	dx, dy := bx-ax, by-ay
	den := dx*dx + dy*dy
	if den == 0 {
		return math.Hypot(px-ax, py-ay), ax, ay
	}
	t := ((px-ax)*dx + (py-ay)*dy) / den
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	cx, cy = ax+t*dx, ay+t*dy
	return math.Hypot(px-cx, py-cy), cx, cy
}
