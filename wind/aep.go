package wind

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// HoursPerYear converts mean power in watts to annual energy in watt-hours.
const HoursPerYear = 8760.0

// PowerModel is the external wake/power engine. Implementations are out of
// scope here: FLORIS-style solvers, surrogates, or test stubs all fit.
//
// FarmPowers returns total farm power in watts for every condition of the
// query. TurbinePowers and TurbineThrusts return one row per condition,
// each row holding a per-turbine value.
type PowerModel interface {
	FarmPowers(x, y, yaw []float64, q Query) ([]float64, error)
	TurbinePowers(x, y, yaw []float64, q Query) ([][]float64, error)
	TurbineThrusts(x, y, yaw []float64, q Query) ([][]float64, error)
}

// AEP evaluates the model over the query and rolls the per-condition farm
// powers into annual energy production, in watt-hours: Σ pᵢ·Pᵢ·8760.
//
// probs must parallel the query's conditions; it is typically the vector
// returned by Rose.Flatten.
//
// Errors: ErrShapeMismatch, plus anything the model returns.
func AEP(m PowerModel, x, y, yaw []float64, q Query, probs []float64) (float64, error) {
	if err := q.Validate(); err != nil {
		return 0, err
	}
	if len(probs) != q.N() {
		return 0, fmt.Errorf("%w: %d conditions, %d probabilities", ErrShapeMismatch, q.N(), len(probs))
	}

	powers, err := m.FarmPowers(x, y, yaw, q)
	if err != nil {
		return 0, err
	}
	if len(powers) != q.N() {
		return 0, fmt.Errorf("%w: model returned %d powers for %d conditions",
			ErrShapeMismatch, len(powers), q.N())
	}
	return floats.Dot(powers, probs) * HoursPerYear, nil
}
