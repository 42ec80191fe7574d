package wind

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by query and rose validation.
var (
	// ErrShapeMismatch indicates parallel condition arrays of different lengths.
	ErrShapeMismatch = errors.New("wind: condition arrays differ in length")

	// ErrEmptyQuery indicates a query with no conditions.
	ErrEmptyQuery = errors.New("wind: query has no conditions")

	// ErrBadDirection indicates a direction outside [0, 360).
	ErrBadDirection = errors.New("wind: direction outside [0, 360)")

	// ErrBadSpeed indicates a negative wind speed.
	ErrBadSpeed = errors.New("wind: speed must be non-negative")

	// ErrBadProbability indicates rose probabilities that are negative or do
	// not sum to one.
	ErrBadProbability = errors.New("wind: probabilities must be non-negative and sum to 1")
)

// probSumTol is the tolerance on the rose probability sum.
const probSumTol = 1e-9

// Query is a batch of wind conditions to evaluate a farm against: parallel
// arrays of direction (degrees, meteorological), speed (m/s) and turbulence
// intensity (fraction). TI may be left nil when the power engine does not
// consume it; when present it must parallel the other two.
type Query struct {
	Directions []float64
	Speeds     []float64
	TIs        []float64
}

// N returns the condition count.
func (q Query) N() int { return len(q.Directions) }

// Validate checks array shapes and value ranges.
func (q Query) Validate() error {
	if len(q.Directions) == 0 {
		return ErrEmptyQuery
	}
	if len(q.Speeds) != len(q.Directions) {
		return fmt.Errorf("%w: %d directions, %d speeds", ErrShapeMismatch, len(q.Directions), len(q.Speeds))
	}
	if q.TIs != nil && len(q.TIs) != len(q.Directions) {
		return fmt.Errorf("%w: %d directions, %d TIs", ErrShapeMismatch, len(q.Directions), len(q.TIs))
	}
	for i, d := range q.Directions {
		if d < 0 || d >= 360 {
			return fmt.Errorf("%w: condition %d has direction %g", ErrBadDirection, i, d)
		}
	}
	for i, v := range q.Speeds {
		if v < 0 {
			return fmt.Errorf("%w: condition %d has speed %g", ErrBadSpeed, i, v)
		}
	}
	return nil
}
