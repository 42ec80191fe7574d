package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validExtraction(t *testing.T, f *farmFixture) (*Solved, *Extraction) {
	t.Helper()
	s := f.solved(t)
	ex, err := Extract(s, f.links, f.phys)
	require.NoError(t, err)
	return s, ex
}

func TestValidateAcceptsExtractOutput(t *testing.T) {
	for name, f := range map[string]*farmFixture{
		"grid":     gridFarm(),
		"pentagon": pentagonFarm(),
		"detour":   detourFarm(),
	} {
		t.Run(name, func(t *testing.T) {
			s, ex := validExtraction(t, f)
			assert.NoError(t, Validate(s, ex))
		})
	}
}

func TestValidateShapeMismatch(t *testing.T) {
	s, ex := validExtraction(t, pentagonFarm())
	ex.Lengths = ex.Lengths[:3]
	assert.ErrorIs(t, Validate(s, ex), ErrShapeMismatch)
}

func TestValidateSelfLink(t *testing.T) {
	s, ex := validExtraction(t, pentagonFarm())
	ex.TerseLinks[2] = 2
	assert.ErrorIs(t, Validate(s, ex), ErrBadNode)
}

func TestValidateTargetOutOfRange(t *testing.T) {
	s, ex := validExtraction(t, pentagonFarm())

	ex.TerseLinks[0] = 5 // relay indices never appear in terse links
	assert.ErrorIs(t, Validate(s, ex), ErrBadNode)

	ex.TerseLinks[0] = -2 // only one substation exists
	assert.ErrorIs(t, Validate(s, ex), ErrBadNode)
}

func TestValidateCycleNeverReachesRoot(t *testing.T) {
	s, ex := validExtraction(t, gridFarm())
	// Close a two-turbine cycle: 0 → 1 → 0.
	ex.TerseLinks[0] = 1
	ex.TerseLinks[1] = 0
	assert.ErrorIs(t, Validate(s, ex), ErrUnreachableRoot)
}

func TestValidateLoadMonotonicity(t *testing.T) {
	s, ex := validExtraction(t, gridFarm())
	// The head of a string must carry more than the turbine behind it.
	head := -1
	for i, next := range ex.TerseLinks {
		if next >= 0 {
			head = next
			ex.Loads[head] = ex.Loads[i]
			break
		}
	}
	require.GreaterOrEqual(t, head, 0)
	assert.ErrorIs(t, Validate(s, ex), ErrBadLoad)
}
