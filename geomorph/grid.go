package geomorph

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by grid construction, parsing and sampling.
var (
	// ErrBadGrid indicates axes or a value matrix with inconsistent shapes,
	// or an axis that is not strictly increasing.
	ErrBadGrid = errors.New("geomorph: malformed grid")

	// ErrBadHeader indicates a MoorPy file whose header lines are missing or
	// malformed.
	ErrBadHeader = errors.New("geomorph: malformed MoorPy header")

	// ErrBadRow indicates a MoorPy data row with the wrong number of fields
	// or an unparsable value.
	ErrBadRow = errors.New("geomorph: malformed MoorPy data row")

	// ErrOutOfDomain indicates a sample point outside the grid's axis spans.
	ErrOutOfDomain = errors.New("geomorph: query point outside the grid")
)

// Grid is a rectilinear depth (or elevation) field: strictly increasing x
// and y axes and an ny×nx value matrix, Values.At(j, i) holding the depth
// at (X[i], Y[j]). SeaLevel shifts the datum for offshore sites.
type Grid struct {
	X, Y     []float64
	Values   *mat.Dense
	SeaLevel float64
}

// NewGrid validates axis monotonicity and matrix shape.
//
// Errors: ErrBadGrid.
func NewGrid(x, y []float64, values *mat.Dense) (*Grid, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, fmt.Errorf("%w: empty axis", ErrBadGrid)
	}
	rows, cols := values.Dims()
	if rows != len(y) || cols != len(x) {
		return nil, fmt.Errorf("%w: values %d×%d for %d y, %d x", ErrBadGrid, rows, cols, len(y), len(x))
	}
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return nil, fmt.Errorf("%w: x axis not strictly increasing at %d", ErrBadGrid, i)
		}
	}
	for j := 1; j < len(y); j++ {
		if y[j] <= y[j-1] {
			return nil, fmt.Errorf("%w: y axis not strictly increasing at %d", ErrBadGrid, j)
		}
	}
	return &Grid{X: x, Y: y, Values: values}, nil
}

// Shape returns the grid dimensions as (ny, nx).
func (g *Grid) Shape() (ny, nx int) { return len(g.Y), len(g.X) }

// At returns the stored value at x index i, y index j.
func (g *Grid) At(i, j int) float64 { return g.Values.At(j, i) }
