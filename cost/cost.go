package cost

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by parameter validation.
var (
	// ErrBadCount indicates a non-positive turbine count.
	ErrBadCount = errors.New("cost: turbine count must be positive")

	// ErrBadRating indicates a non-positive machine rating.
	ErrBadRating = errors.New("cost: machine rating must be positive")

	// ErrBadDiameter indicates a non-positive rotor diameter.
	ErrBadDiameter = errors.New("cost: rotor diameter must be positive")
)

// TurbineSpec is the per-machine data the closed-form components consume.
type TurbineSpec struct {
	RatingKW      float64 // machine rating, kW
	RotorDiameter float64 // rotor diameter, m
	TCCPerKW      float64 // turbine capital cost rate, USD/kW
	OffsetTCC     float64 // additional capital cost rate, USD/kW
	OpexPerKW     float64 // operating cost rate, USD/kW/yr
}

// TurbineCapitalCost returns the farm's turbine capital cost in USD:
// n · rating · (tccPerKW + offset).
//
// Errors: ErrBadCount, ErrBadRating.
func TurbineCapitalCost(n int, spec TurbineSpec) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: n=%d", ErrBadCount, n)
	}
	if spec.RatingKW <= 0 {
		return 0, fmt.Errorf("%w: %g kW", ErrBadRating, spec.RatingKW)
	}
	return float64(n) * spec.RatingKW * (spec.TCCPerKW + spec.OffsetTCC), nil
}

// OperatingExpenses returns the farm's annual operating expenses in USD/yr:
// n · rating · opexPerKW.
//
// Errors: ErrBadCount, ErrBadRating.
func OperatingExpenses(n int, spec TurbineSpec) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: n=%d", ErrBadCount, n)
	}
	if spec.RatingKW <= 0 {
		return 0, fmt.Errorf("%w: %g kW", ErrBadRating, spec.RatingKW)
	}
	return float64(n) * spec.RatingKW * spec.OpexPerKW, nil
}
