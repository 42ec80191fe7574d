package layout

import (
	"fmt"
	"math"
)

// Ring places n turbines on a regular polygon of the given radius around the
// origin. phase rotates the whole polygon, in degrees counterclockwise;
// turbine 0 sits at azimuth phase, on the +x axis when phase is zero.
//
// Complexity: O(n).
//
// Errors: ErrTooFewTurbines, ErrBadSpacing (non-positive radius).
func Ring(n int, radius, phase float64) (Farm, error) {
	if n < 1 {
		return Farm{}, fmt.Errorf("%w: n=%d", ErrTooFewTurbines, n)
	}
	if radius <= 0 {
		return Farm{}, fmt.Errorf("%w: radius=%g", ErrBadSpacing, radius)
	}

	f := Farm{X: make([]float64, n), Y: make([]float64, n)}
	for k := 0; k < n; k++ {
		a := phase*math.Pi/180 + 2*math.Pi*float64(k)/float64(n)
		f.X[k] = radius * math.Cos(a)
		f.Y[k] = radius * math.Sin(a)
	}
	return f, nil
}
