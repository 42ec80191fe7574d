package cost

import "fmt"

// SpacingSurrogate infers a mean turbine spacing, in rotor diameters, from
// the total collection-cable length: totalLength / (rotorDiameter · n).
// Balance-of-system models take spacing as an input, and this surrogate
// lets them react to cable-driven layout changes without re-meshing.
//
// The surrogate is linear in the cable length; Partial returns the constant
// ∂spacing/∂totalLength so the optimizer can chain it without finite
// differencing.
type SpacingSurrogate struct {
	n        int
	diameter float64
}

// NewSpacingSurrogate validates and binds the farm constants.
//
// Errors: ErrBadCount, ErrBadDiameter.
func NewSpacingSurrogate(n int, rotorDiameter float64) (*SpacingSurrogate, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadCount, n)
	}
	if rotorDiameter <= 0 {
		return nil, fmt.Errorf("%w: %g m", ErrBadDiameter, rotorDiameter)
	}
	return &SpacingSurrogate{n: n, diameter: rotorDiameter}, nil
}

// Spacing returns the surrogate spacing in rotor diameters.
func (s *SpacingSurrogate) Spacing(totalLength float64) float64 {
	return totalLength / (s.diameter * float64(s.n))
}

// Partial returns the constant derivative of the spacing with respect to
// total cable length.
func (s *SpacingSurrogate) Partial() float64 {
	return 1 / (s.diameter * float64(s.n))
}
