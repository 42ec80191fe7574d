package geom

import "math"

// SmoothMin — differentiable minimum of a slice.
//
// Description:
//
//	Boltzmann-weighted average with negative exponent: each value is
//	weighted by exp(-sharpness·(x-min)), so the result approaches the true
//	minimum as the gap between values widens. Unlike the plain min, the
//	result varies smoothly as values cross, which keeps downstream
//	constraints differentiable.
//
// Properties:
//   - exact at a single element
//   - equals the true minimum when one value dominates (weights underflow)
//   - invariant under reordering of xs
//
// A non-positive sharpness falls back to DefaultSharpness. An empty slice
// returns NaN.
func SmoothMin(xs []float64, sharpness float64) float64 {
	f, _ := smoothMinCoeffs(xs, sharpness, nil)
	return f
}

// SmoothMax — differentiable maximum of a slice; mirror of SmoothMin.
func SmoothMax(xs []float64, sharpness float64) float64 {
	neg := make([]float64, len(xs))
	for i, x := range xs {
		neg[i] = -x
	}
	return -SmoothMin(neg, sharpness)
}

// smoothMinCoeffs computes the smooth minimum of xs and, when coeffs is
// non-nil, fills coeffs[k] with ∂SmoothMin/∂xs[k]:
//
//	w_k·(1 - sharpness·(x_k - f)),  w_k = exp(-sharpness·(x_k - min)) / Z
//
// The coefficients form a convex-combination-like weighting concentrated on
// the smallest entries; they are exact, not an approximation to the
// softmin weights. Shifting by the true minimum keeps every exponent
// non-positive, so the sum never overflows.
func smoothMinCoeffs(xs []float64, sharpness float64, coeffs []float64) (float64, []float64) {
	if len(xs) == 0 {
		return math.NaN(), coeffs
	}
	if sharpness <= 0 {
		sharpness = DefaultSharpness
	}

	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}

	var z, num float64
	for _, x := range xs {
		e := math.Exp(-sharpness * (x - m))
		z += e
		num += x * e
	}
	f := num / z

	if coeffs != nil {
		for k, x := range xs {
			w := math.Exp(-sharpness*(x-m)) / z
			coeffs[k] = w * (1 - sharpness*(x-f))
		}
	}
	return f, coeffs
}
