package geomorph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func testGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := NewGrid(
		[]float64{0, 100, 300},
		[]float64{-50, 50},
		mat.NewDense(2, 3, []float64{
			10, 20, 40, // y = -50
			12, 24, 48, // y = +50
		}),
	)
	require.NoError(t, err)
	return g
}

func TestNewGridValidation(t *testing.T) {
	_, err := NewGrid(nil, []float64{0}, mat.NewDense(1, 1, nil))
	assert.ErrorIs(t, err, ErrBadGrid)

	_, err = NewGrid([]float64{0, 1}, []float64{0}, mat.NewDense(2, 2, nil))
	assert.ErrorIs(t, err, ErrBadGrid, "values shape must be ny×nx")

	_, err = NewGrid([]float64{0, 0}, []float64{0}, mat.NewDense(1, 2, nil))
	assert.ErrorIs(t, err, ErrBadGrid, "x axis must strictly increase")

	_, err = NewGrid([]float64{0, 1}, []float64{5, -5}, mat.NewDense(2, 2, nil))
	assert.ErrorIs(t, err, ErrBadGrid, "y axis must strictly increase")

	g := testGrid(t)
	ny, nx := g.Shape()
	assert.Equal(t, 2, ny)
	assert.Equal(t, 3, nx)
	assert.Equal(t, 24.0, g.At(1, 1))
}

func TestSampleAtNodesReproducesValues(t *testing.T) {
	g := testGrid(t)
	for j, y := range g.Y {
		for i, x := range g.X {
			v, err := g.Sample(x, y)
			require.NoError(t, err)
			assert.Equal(t, g.At(i, j), v, "node (%d,%d)", i, j)
		}
	}
}

func TestSampleInterpolates(t *testing.T) {
	g := testGrid(t)

	// Midpoint of the first cell in x, at the lower y edge.
	v, err := g.Sample(50, -50)
	require.NoError(t, err)
	assert.InDelta(t, 15, v, 1e-12)

	// Center of the first cell: mean of its four corners.
	v, err = g.Sample(50, 0)
	require.NoError(t, err)
	assert.InDelta(t, (10+20+12+24)/4.0, v, 1e-12)

	// Unequal x spacing: three quarters across the second cell.
	v, err = g.Sample(250, -50)
	require.NoError(t, err)
	assert.InDelta(t, 35, v, 1e-12)
}

func TestSampleOutOfDomain(t *testing.T) {
	g := testGrid(t)
	_, err := g.Sample(-1, 0)
	assert.ErrorIs(t, err, ErrOutOfDomain)
	_, err = g.Sample(301, 0)
	assert.ErrorIs(t, err, ErrOutOfDomain)
	_, err = g.Sample(100, 51)
	assert.ErrorIs(t, err, ErrOutOfDomain)
}

func TestSampleAll(t *testing.T) {
	g := testGrid(t)
	out, err := g.SampleAll([]float64{0, 300}, []float64{-50, 50})
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 48}, out)

	_, err = g.SampleAll([]float64{0}, nil)
	assert.ErrorIs(t, err, ErrBadGrid)
	_, err = g.SampleAll([]float64{-5}, []float64{0})
	assert.ErrorIs(t, err, ErrOutOfDomain)
}

const moorpyFixture = `--- MoorPy Bathymetry Input File ---
nGridX 3
nGridY 2
0.0 100.0 300.0
-50.0 10 20 40

50.0 12 24 48
`

func TestParseMoorPy(t *testing.T) {
	g, err := ParseMoorPy(strings.NewReader(moorpyFixture))
	require.NoError(t, err)

	ny, nx := g.Shape()
	assert.Equal(t, 2, ny)
	assert.Equal(t, 3, nx)
	assert.Equal(t, []float64{0, 100, 300}, g.X)
	assert.Equal(t, []float64{-50, 50}, g.Y)
	assert.Equal(t, 40.0, g.At(2, 0))
	assert.Equal(t, 12.0, g.At(0, 1))
}

func TestParseMoorPyRoundTripSampling(t *testing.T) {
	g, err := ParseMoorPy(strings.NewReader(moorpyFixture))
	require.NoError(t, err)
	v, err := g.Sample(50, -50)
	require.NoError(t, err)
	assert.InDelta(t, 15, v, 1e-12)
}

func TestParseMoorPyErrors(t *testing.T) {
	cases := map[string]struct {
		in   string
		want error
	}{
		"missing magic": {"nGridX 2\n", ErrBadHeader},
		"missing nGridX": {
			"--- MoorPy Bathymetry Input File ---\nnGridY 2\n", ErrBadHeader},
		"bad count": {
			"--- MoorPy Bathymetry Input File ---\nnGridX zero\n", ErrBadHeader},
		"wrong x count": {
			"--- MoorPy Bathymetry Input File ---\nnGridX 3\nnGridY 1\n0.0 1.0\n", ErrBadHeader},
		"short data row": {
			"--- MoorPy Bathymetry Input File ---\nnGridX 2\nnGridY 1\n0.0 1.0\n0.0 5\n", ErrBadRow},
		"missing data row": {
			"--- MoorPy Bathymetry Input File ---\nnGridX 2\nnGridY 2\n0.0 1.0\n0.0 5 6\n", ErrBadRow},
		"unsorted x axis": {
			"--- MoorPy Bathymetry Input File ---\nnGridX 2\nnGridY 1\n1.0 0.0\n0.0 5 6\n", ErrBadGrid},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseMoorPy(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReadMoorPyMissingFile(t *testing.T) {
	_, err := ReadMoorPy(t.TempDir() + "/nope.txt")
	assert.Error(t, err)
}
