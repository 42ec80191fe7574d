package wind

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Rose is a joint wind resource table: P[i][j] is the probability of
// direction bin i at speed bin j. Build with NewRose, which validates the
// distribution; Flatten turns the table into a Query plus the matching
// probability vector for AEP weighting.
type Rose struct {
	directions []float64
	speeds     []float64
	probs      *mat.Dense
}

// NewRose validates and stores a wind resource table. probs must be
// len(directions)×len(speeds), entries non-negative and summing to one
// within 1e-9.
func NewRose(directions, speeds []float64, probs *mat.Dense) (*Rose, error) {
	rows, cols := probs.Dims()
	if rows != len(directions) || cols != len(speeds) {
		return nil, fmt.Errorf("%w: table %d×%d for %d directions, %d speeds",
			ErrShapeMismatch, rows, cols, len(directions), len(speeds))
	}
	if len(directions) == 0 || len(speeds) == 0 {
		return nil, ErrEmptyQuery
	}
	for i, d := range directions {
		if d < 0 || d >= 360 {
			return nil, fmt.Errorf("%w: bin %d at %g", ErrBadDirection, i, d)
		}
	}
	for j, v := range speeds {
		if v < 0 {
			return nil, fmt.Errorf("%w: bin %d at %g", ErrBadSpeed, j, v)
		}
	}

	var sum float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			p := probs.At(i, j)
			if p < 0 {
				return nil, fmt.Errorf("%w: bin (%d,%d) is %g", ErrBadProbability, i, j, p)
			}
			sum += p
		}
	}
	if math.Abs(sum-1) > probSumTol {
		return nil, fmt.Errorf("%w: sum is %.12g", ErrBadProbability, sum)
	}

	r := &Rose{
		directions: append([]float64(nil), directions...),
		speeds:     append([]float64(nil), speeds...),
		probs:      mat.DenseCopyOf(probs),
	}
	return r, nil
}

// NumBins returns the direction and speed bin counts.
func (r *Rose) NumBins() (directions, speeds int) {
	return len(r.directions), len(r.speeds)
}

// Probability returns the probability of direction bin i at speed bin j.
func (r *Rose) Probability(i, j int) float64 { return r.probs.At(i, j) }

// Flatten unrolls the table row-major into a condition Query and the
// parallel probability vector. Bin order is deterministic: direction-major,
// speeds innermost.
func (r *Rose) Flatten() (Query, []float64) {
	n := len(r.directions) * len(r.speeds)
	q := Query{
		Directions: make([]float64, 0, n),
		Speeds:     make([]float64, 0, n),
	}
	probs := make([]float64, 0, n)
	for i, d := range r.directions {
		for j, v := range r.speeds {
			q.Directions = append(q.Directions, d)
			q.Speeds = append(q.Speeds, v)
			probs = append(probs, r.probs.At(i, j))
		}
	}
	return q, probs
}
