package layout

import (
	"fmt"
	"math"
)

// goldenAngle is 2π(1 − 1/φ), the divergence angle of phyllotaxis spirals.
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// Sunflower places n turbines on a golden-angle phyllotaxis spiral scaled so
// that the mean area claimed per turbine is spacing², giving a roughly
// uniform packing at the target spacing inside a circular footprint.
//
// Turbine k sits at radius c·sqrt(k+0.5) and azimuth k·goldenAngle, with
// c = spacing/√π so that a disc of radius c·sqrt(n) holds n·spacing² of
// area. The half offset keeps the first turbine off the exact center, where
// the spiral degenerates.
//
// Complexity: O(n).
//
// Errors: ErrTooFewTurbines, ErrBadSpacing.
func Sunflower(n int, spacing float64) (Farm, error) {
	if n < 1 {
		return Farm{}, fmt.Errorf("%w: n=%d", ErrTooFewTurbines, n)
	}
	if spacing <= 0 {
		return Farm{}, fmt.Errorf("%w: spacing=%g", ErrBadSpacing, spacing)
	}

	c := spacing / math.Sqrt(math.Pi)
	f := Farm{X: make([]float64, n), Y: make([]float64, n)}
	for k := 0; k < n; k++ {
		r := c * math.Sqrt(float64(k)+0.5)
		a := float64(k) * goldenAngle
		f.X[k] = r * math.Cos(a)
		f.Y[k] = r * math.Sin(a)
	}
	return f, nil
}
