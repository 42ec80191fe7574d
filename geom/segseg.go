package geom

import "math"

// SegmentToSegment — smooth distance between two line segments in 2D or 3D
// (2D inputs are zero-padded into 3D).
//
// Description:
//
//	Four configurations are handled:
//	 1. both segments degenerate to points      → point-to-point distance
//	 2. exactly one degenerates                 → point-to-segment distance
//	 3. near-parallel / coplanar pair           → soft-min of the four
//	    endpoint-to-opposite-segment distances (robust where the
//	    parametric solve loses rank)
//	 4. proper skew pair                        → closest-approach solve
//
// In case 4 the closest-approach parameters (s,t) come from the standard
// determinant-ratio solution of the two-line system; both are clamped to
// [0,1] and the result is the soft-min over three candidates: the distance
// between the two clamped points and each clamped point's distance to the
// other full segment. The extra candidates cover configurations where
// clamping moves the true minimum off the infinite-line solution.
//
// The parallel test compares the squared cross product of the two
// direction vectors against opt.SegTol, so collinear overlapping segments
// return 0 rather than NaN.
//
// Complexity: O(1). Symmetric in its two segments.
func SegmentToSegment(a0, a1, b0, b1 []float64, opt Options) float64 {
	opt = opt.withDefaults()

	pa0, pa1, pb0, pb1 := pad3(a0), pad3(a1), pad3(b0), pad3(b1)
	u := sub3(pa1, pa0)
	v := sub3(pb1, pb0)

	aIsPoint := dot3(u, u) == 0
	bIsPoint := dot3(v, v) == 0
	switch {
	case aIsPoint && bIsPoint:
		return dist3(pa0, pb0)
	case aIsPoint:
		d, _ := pointSeg3(pa0, pb0, pb1)
		return d
	case bIsPoint:
		d, _ := pointSeg3(pb0, pa0, pa1)
		return d
	}

	cr := cross3(u, v)
	den := dot3(cr, cr)
	if den <= opt.SegTol {
		// Near-parallel or coplanar: the parametric system is singular.
		da0, _ := pointSeg3(pa0, pb0, pb1)
		da1, _ := pointSeg3(pa1, pb0, pb1)
		db0, _ := pointSeg3(pb0, pa0, pa1)
		db1, _ := pointSeg3(pb1, pa0, pa1)
		return SmoothMin([]float64{da0, da1, db0, db1}, opt.Sharpness)
	}

	w0 := sub3(pb0, pa0)
	s := det3(w0, v, cr) / den
	t := det3(w0, u, cr) / den
	s = clamp01(s)
	t = clamp01(t)

	ca := addScaled3(pa0, s, u)
	cb := addScaled3(pb0, t, v)

	d0 := dist3(ca, cb)
	d1, _ := pointSeg3(ca, pb0, pb1)
	d2, _ := pointSeg3(cb, pa0, pa1)
	return SmoothMin([]float64{d0, d1, d2}, opt.Sharpness)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// pad3 widens a 2D or 3D coordinate slice into a fixed 3-vector.
func pad3(p []float64) [3]float64 {
	var out [3]float64
	copy(out[:], p)
	return out
}

func sub3(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func addScaled3(a [3]float64, t float64, v [3]float64) [3]float64 {
	return [3]float64{a[0] + t*v[0], a[1] + t*v[1], a[2] + t*v[2]}
}

func dot3(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross3(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// det3 is the scalar triple product det[a b c] laid out as rows.
func det3(a, b, c [3]float64) float64 {
	return a[0]*(b[1]*c[2]-b[2]*c[1]) -
		a[1]*(b[0]*c[2]-b[2]*c[0]) +
		a[2]*(b[0]*c[1]-b[1]*c[0])
}

func dist3(a, b [3]float64) float64 {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// pointSeg3 mirrors ClosestOnSegment on fixed 3-vectors without heap
// allocation; returns the distance and the clamped closest point.
func pointSeg3(p, a, b [3]float64) (float64, [3]float64) {
	seg := sub3(b, a)
	den := dot3(seg, seg)
	if den == 0 {
		return dist3(p, a), a
	}
	t := clamp01(dot3(sub3(p, a), seg) / den)
	c := addScaled3(a, t, seg)
	return dist3(p, c), c
}
