package cost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refSpec = TurbineSpec{
	RatingKW:      3400,
	RotorDiameter: 130,
	TCCPerKW:      1100,
	OffsetTCC:     50,
	OpexPerKW:     40,
}

func TestTurbineCapitalCost(t *testing.T) {
	tcc, err := TurbineCapitalCost(25, refSpec)
	require.NoError(t, err)
	assert.InDelta(t, 25*3400*(1100.0+50.0), tcc, 1e-6)
}

func TestOperatingExpenses(t *testing.T) {
	opex, err := OperatingExpenses(25, refSpec)
	require.NoError(t, err)
	assert.InDelta(t, 25*3400*40.0, opex, 1e-6)
}

func TestCostValidation(t *testing.T) {
	_, err := TurbineCapitalCost(0, refSpec)
	assert.ErrorIs(t, err, ErrBadCount)

	bad := refSpec
	bad.RatingKW = 0
	_, err = TurbineCapitalCost(5, bad)
	assert.ErrorIs(t, err, ErrBadRating)
	_, err = OperatingExpenses(5, bad)
	assert.ErrorIs(t, err, ErrBadRating)
	_, err = OperatingExpenses(-1, refSpec)
	assert.ErrorIs(t, err, ErrBadCount)
}

func TestSpacingSurrogate(t *testing.T) {
	s, err := NewSpacingSurrogate(25, 130)
	require.NoError(t, err)

	// 25 turbines averaging 7 diameters of cable each.
	total := 25 * 7 * 130.0
	assert.InDelta(t, 7, s.Spacing(total), 1e-12)
	assert.InDelta(t, 1/(130.0*25), s.Partial(), 1e-18)

	// Linearity: the partial is exact, not an approximation.
	d := 1234.5
	assert.InDelta(t, s.Spacing(total)+d*s.Partial(), s.Spacing(total+d), 1e-12)
}

func TestSpacingSurrogateValidation(t *testing.T) {
	_, err := NewSpacingSurrogate(0, 130)
	assert.ErrorIs(t, err, ErrBadCount)
	_, err = NewSpacingSurrogate(25, 0)
	assert.ErrorIs(t, err, ErrBadDiameter)
}
