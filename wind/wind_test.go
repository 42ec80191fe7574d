package wind

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestQueryValidate(t *testing.T) {
	q := Query{
		Directions: []float64{0, 90, 270},
		Speeds:     []float64{8, 10, 12},
	}
	assert.NoError(t, q.Validate())
	assert.Equal(t, 3, q.N())

	q.TIs = []float64{0.06, 0.06, 0.06}
	assert.NoError(t, q.Validate(), "parallel TI array is accepted")

	q.TIs = []float64{0.06}
	assert.ErrorIs(t, q.Validate(), ErrShapeMismatch)
}

func TestQueryValidateRejectsBadValues(t *testing.T) {
	assert.ErrorIs(t, Query{}.Validate(), ErrEmptyQuery)

	q := Query{Directions: []float64{0, 90}, Speeds: []float64{8}}
	assert.ErrorIs(t, q.Validate(), ErrShapeMismatch)

	q = Query{Directions: []float64{360}, Speeds: []float64{8}}
	assert.ErrorIs(t, q.Validate(), ErrBadDirection)

	q = Query{Directions: []float64{-1}, Speeds: []float64{8}}
	assert.ErrorIs(t, q.Validate(), ErrBadDirection)

	q = Query{Directions: []float64{0}, Speeds: []float64{-3}}
	assert.ErrorIs(t, q.Validate(), ErrBadSpeed)
}

func TestNewRoseValidation(t *testing.T) {
	dirs := []float64{0, 180}
	speeds := []float64{8, 12}

	_, err := NewRose(dirs, speeds, mat.NewDense(1, 2, []float64{0.5, 0.5}))
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = NewRose(dirs, speeds, mat.NewDense(2, 2, []float64{0.5, 0.5, 0.5, 0.5}))
	assert.ErrorIs(t, err, ErrBadProbability, "sums to 2")

	_, err = NewRose(dirs, speeds, mat.NewDense(2, 2, []float64{1.5, -0.5, 0, 0}))
	assert.ErrorIs(t, err, ErrBadProbability, "negative bin")

	_, err = NewRose([]float64{400, 180}, speeds, mat.NewDense(2, 2, []float64{0.25, 0.25, 0.25, 0.25}))
	assert.ErrorIs(t, err, ErrBadDirection)

	r, err := NewRose(dirs, speeds, mat.NewDense(2, 2, []float64{0.1, 0.2, 0.3, 0.4}))
	require.NoError(t, err)
	nd, ns := r.NumBins()
	assert.Equal(t, 2, nd)
	assert.Equal(t, 2, ns)
	assert.Equal(t, 0.3, r.Probability(1, 0))
}

func TestRoseFlattenOrder(t *testing.T) {
	r, err := NewRose(
		[]float64{0, 180},
		[]float64{8, 12},
		mat.NewDense(2, 2, []float64{0.1, 0.2, 0.3, 0.4}),
	)
	require.NoError(t, err)

	q, probs := r.Flatten()
	require.NoError(t, q.Validate())
	assert.Equal(t, []float64{0, 0, 180, 180}, q.Directions, "direction-major order")
	assert.Equal(t, []float64{8, 12, 8, 12}, q.Speeds)
	assert.Equal(t, []float64{0.1, 0.2, 0.3, 0.4}, probs)
}

// stubPower reports each condition's speed cubed as farm power, a crude
// but monotone stand-in for a wake engine.
type stubPower struct{}

func (stubPower) FarmPowers(x, y, yaw []float64, q Query) ([]float64, error) {
	out := make([]float64, q.N())
	for i, v := range q.Speeds {
		out[i] = v * v * v
	}
	return out, nil
}

func (s stubPower) TurbinePowers(x, y, yaw []float64, q Query) ([][]float64, error) {
	farm, _ := s.FarmPowers(x, y, yaw, q)
	rows := make([][]float64, q.N())
	for i := range rows {
		per := make([]float64, len(x))
		for j := range per {
			per[j] = farm[i] / float64(len(x))
		}
		rows[i] = per
	}
	return rows, nil
}

func (s stubPower) TurbineThrusts(x, y, yaw []float64, q Query) ([][]float64, error) {
	return s.TurbinePowers(x, y, yaw, q)
}

func TestAEPWeightsPowers(t *testing.T) {
	q := Query{Directions: []float64{0, 90}, Speeds: []float64{8, 10}}
	probs := []float64{0.75, 0.25}

	aep, err := AEP(stubPower{}, []float64{0}, []float64{0}, []float64{0}, q, probs)
	require.NoError(t, err)

	want := (0.75*math.Pow(8, 3) + 0.25*math.Pow(10, 3)) * HoursPerYear
	assert.InDelta(t, want, aep, 1e-9)
}

func TestAEPShapeChecks(t *testing.T) {
	q := Query{Directions: []float64{0}, Speeds: []float64{8}}
	_, err := AEP(stubPower{}, nil, nil, nil, q, []float64{0.5, 0.5})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = AEP(stubPower{}, nil, nil, nil, Query{}, nil)
	assert.ErrorIs(t, err, ErrEmptyQuery)
}
