package layout

import (
	"fmt"
	"sort"
)

// BoundingBoxArea returns the area of the axis-aligned bounding box of a
// placed farm: the crudest land-use footprint proxy. Degenerate farms (one
// turbine, or all collinear along an axis) report zero.
//
// Errors: ErrShapeMismatch, ErrTooFewTurbines.
func BoundingBoxArea(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrShapeMismatch, len(x), len(y))
	}
	if len(x) == 0 {
		return 0, ErrTooFewTurbines
	}
	minX, maxX := x[0], x[0]
	minY, maxY := y[0], y[0]
	for i := 1; i < len(x); i++ {
		minX = min(minX, x[i])
		maxX = max(maxX, x[i])
		minY = min(minY, y[i])
		maxY = max(maxY, y[i])
	}
	return (maxX - minX) * (maxY - minY), nil
}

// ConvexHullArea returns the area of the convex hull of a placed farm: the
// tight footprint proxy land-use cost outputs consume. Hull construction is
// Andrew's monotone chain; the area is the shoelace sum over the hull.
// Fewer than three non-collinear turbines report zero area.
//
// Complexity: O(n log n).
//
// Errors: ErrShapeMismatch, ErrTooFewTurbines.
func ConvexHullArea(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrShapeMismatch, len(x), len(y))
	}
	n := len(x)
	if n == 0 {
		return 0, ErrTooFewTurbines
	}
	if n < 3 {
		return 0, nil
	}

	type pt struct{ x, y float64 }
	pts := make([]pt, n)
	for i := range x {
		pts[i] = pt{x[i], y[i]}
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].x != pts[j].x {
			return pts[i].x < pts[j].x
		}
		return pts[i].y < pts[j].y
	})

	cross := func(o, a, b pt) float64 {
		return (a.x-o.x)*(b.y-o.y) - (a.y-o.y)*(b.x-o.x)
	}

	var hull []pt
	for _, p := range pts { // lower chain
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- { // upper chain
		p := pts[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	hull = hull[:len(hull)-1] // last point repeats the first

	var area float64
	for i := range hull {
		j := (i + 1) % len(hull)
		area += hull[i].x*hull[j].y - hull[j].x*hull[i].y
	}
	if area < 0 {
		area = -area
	}
	return area / 2, nil
}
