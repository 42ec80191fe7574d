// Package geom defines the configuration options and sentinel errors shared
// by the smooth-distance kernels.
//
// All smoothing behavior is carried in an explicit Options value threaded
// through every call. There is no package-level mutable configuration: two
// concurrent evaluations with different sharpness never interfere.
//
// Options:
//
//	– Sharpness: soft-min/soft-max concentration. Larger values track the
//	  true min/max more tightly at the cost of a narrower smoothing band.
//	– Tol:       containment tolerance; a signed distance ≤ Tol counts as
//	  inside when assigning points to regions.
//	– SegTol:    squared-cross-product threshold below which two segments
//	  are treated as parallel/coplanar and the endpoint fallback is used.
//	– Shift:     additive guard in the ray-cast slope denominator so that
//	  x-vertical edges never divide by zero.
//	– Workers:   number of goroutines for batch evaluation; ≤ 1 is serial.
//
// Errors (sentinel):
//
//	– ErrRingTooSmall   if a ring is constructed from fewer than 3 vertices.
//	– ErrShapeMismatch  if parallel coordinate arrays disagree in length.
//	– ErrNoRegions      if a boundary set is constructed with no rings.
//	– ErrBadRegion      if a supplied region assignment is out of range.
package geom

import "errors"

// Default smoothing constants. They are deliberately conservative: a
// sharpness of 700 keeps the soft-min within ~1e-3 of the true minimum for
// metre-scale farm geometry while staying differentiable.
const (
	// DefaultSharpness is the soft-min/soft-max concentration parameter.
	DefaultSharpness = 700.0

	// DefaultTol is the containment tolerance used for region assignment.
	DefaultTol = 1e-6

	// DefaultSegTol is the parallelism threshold for segment-segment
	// distance: squared cross-product magnitudes at or below it trigger the
	// endpoint-distance fallback.
	DefaultSegTol = 1e-12

	// DefaultShift guards the ray-cast slope denominator against
	// x-vertical polygon edges.
	DefaultShift = 1e-10
)

// Sentinel errors returned by ring construction and batch evaluation.
var (
	// ErrRingTooSmall indicates a ring with fewer than three vertices.
	ErrRingTooSmall = errors.New("geom: ring needs at least 3 vertices")

	// ErrShapeMismatch indicates parallel x/y arrays of different lengths.
	ErrShapeMismatch = errors.New("geom: coordinate arrays differ in length")

	// ErrNoRegions indicates a boundary set constructed without rings.
	ErrNoRegions = errors.New("geom: boundary set needs at least one ring")

	// ErrBadRegion indicates a region assignment outside [0, len(rings)).
	ErrBadRegion = errors.New("geom: region assignment out of range")
)

// Options configures the smooth-distance kernels.
//
// The zero value is usable: any field left at zero is replaced by the
// package default (Workers stays serial). DefaultOptions returns the
// defaults explicitly for callers that want to tweak a single field.
type Options struct {
	Sharpness float64 // soft-min/soft-max concentration, > 0
	Tol       float64 // containment tolerance for region assignment
	SegTol    float64 // parallel/coplanar threshold for segment pairs
	Shift     float64 // ray-cast slope guard against vertical edges
	Workers   int     // goroutines for batch evaluation; <= 1 is serial
}

// DefaultOptions returns Options populated with the package defaults.
func DefaultOptions() Options {
	return Options{
		Sharpness: DefaultSharpness,
		Tol:       DefaultTol,
		SegTol:    DefaultSegTol,
		Shift:     DefaultShift,
	}
}

// withDefaults fills zero-valued fields with the package defaults.
// Negative sharpness is treated like zero: the default applies.
func (o Options) withDefaults() Options {
	if o.Sharpness <= 0 {
		o.Sharpness = DefaultSharpness
	}
	if o.Tol == 0 {
		o.Tol = DefaultTol
	}
	if o.SegTol == 0 {
		o.SegTol = DefaultSegTol
	}
	if o.Shift == 0 {
		o.Shift = DefaultShift
	}
	return o
}
