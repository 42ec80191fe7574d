package geomorph

import (
	"fmt"
	"sort"
)

// Sample returns the bilinearly interpolated depth at (x, y). Sampling is
// exact at grid nodes and continuous across cell boundaries; querying
// outside the axis spans is an error rather than an extrapolation, since a
// turbine outside the surveyed domain has no defensible depth.
//
// Complexity: O(log nx + log ny) per query.
//
// Errors: ErrOutOfDomain.
func (g *Grid) Sample(x, y float64) (float64, error) {
	i, fx, err := locate(g.X, x)
	if err != nil {
		return 0, fmt.Errorf("%w: x=%g", ErrOutOfDomain, x)
	}
	j, fy, err := locate(g.Y, y)
	if err != nil {
		return 0, fmt.Errorf("%w: y=%g", ErrOutOfDomain, y)
	}

	// Single-node axes collapse the cell onto itself (frac is 0 there).
	i1 := min(i+1, len(g.X)-1)
	j1 := min(j+1, len(g.Y)-1)
	v00 := g.Values.At(j, i)
	v10 := g.Values.At(j, i1)
	v01 := g.Values.At(j1, i)
	v11 := g.Values.At(j1, i1)
	return (1-fy)*((1-fx)*v00+fx*v10) + fy*((1-fx)*v01+fx*v11), nil
}

// SampleAll samples a batch of points; any out-of-domain point fails the
// whole batch.
func (g *Grid) SampleAll(x, y []float64) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d x, %d y", ErrBadGrid, len(x), len(y))
	}
	out := make([]float64, len(x))
	for k := range x {
		v, err := g.Sample(x[k], y[k])
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// locate finds the cell index i with axis[i] ≤ v ≤ axis[i+1] and the
// fractional position of v inside that cell. The top edge belongs to the
// last cell. Single-node axes only admit exact hits.
func locate(axis []float64, v float64) (i int, frac float64, err error) {
	n := len(axis)
	if v < axis[0] || v > axis[n-1] {
		return 0, 0, ErrOutOfDomain
	}
	if n == 1 {
		return 0, 0, nil
	}
	i = sort.SearchFloat64s(axis, v)
	if i > 0 && (i == n || axis[i] != v) {
		i--
	}
	if i == n-1 {
		i-- // top edge: interpolate within the last cell
		return i, 1, nil
	}
	return i, (v - axis[i]) / (axis[i+1] - axis[i]), nil
}
