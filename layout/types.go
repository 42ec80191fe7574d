// Package layout sentinel errors and the shared farm value type.
package layout

import "errors"

// Sentinel errors returned by the layout generators.
var (
	// ErrTooFewTurbines indicates a generator asked for fewer than one turbine.
	ErrTooFewTurbines = errors.New("layout: at least one turbine required")

	// ErrBadSpacing indicates a non-positive spacing or radius.
	ErrBadSpacing = errors.New("layout: spacing must be positive")

	// ErrBadAngle indicates a skew angle at which the grid axes collapse.
	ErrBadAngle = errors.New("layout: grid axes are collinear at this skew")

	// ErrShapeMismatch indicates parallel x/y arrays of different lengths.
	ErrShapeMismatch = errors.New("layout: coordinate arrays differ in length")
)

// Farm is a placed layout: parallel coordinate arrays in metres, centered on
// the origin by the generators.
type Farm struct {
	X, Y []float64
}

// N returns the turbine count.
func (f Farm) N() int { return len(f.X) }
