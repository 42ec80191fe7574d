package collection

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/mat"
)

// zeroLengthTol is the edge length below which a physical edge contributes
// no gradient: the unit direction of a collapsed edge is undefined, and
// coincident endpoints are expected mid-optimization inputs, not errors.
const zeroLengthTol = 1e-8

// Coordinates is the stacked coordinate table the solver's node indices
// resolve against: turbine rows first, then auxiliary routing rows (site
// border and detour vertices), then substation rows last. Negative
// substation indices count back from the end of the table, mirroring the
// solver's convention.
type Coordinates struct {
	turbines    int
	substations int
	rows        *mat.Dense
}

// NewCoordinates builds the table from parallel turbine and substation
// coordinate arrays plus optional auxiliary rows.
func NewCoordinates(xt, yt, xs, ys []float64, aux ...orb.Point) (*Coordinates, error) {
	if len(xt) != len(yt) || len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: turbines %d/%d, substations %d/%d",
			ErrShapeMismatch, len(xt), len(yt), len(xs), len(ys))
	}
	if len(xt) == 0 {
		return nil, ErrNoTurbines
	}
	if len(xs) == 0 {
		return nil, ErrNoSubstations
	}

	t, r := len(xt), len(xs)
	n := t + len(aux) + r
	rows := mat.NewDense(n, 2, nil)
	for i := range xt {
		rows.Set(i, 0, xt[i])
		rows.Set(i, 1, yt[i])
	}
	for i, p := range aux {
		rows.Set(t+i, 0, p[0])
		rows.Set(t+i, 1, p[1])
	}
	for i := range xs {
		rows.Set(n-r+i, 0, xs[i])
		rows.Set(n-r+i, 1, ys[i])
	}
	return &Coordinates{turbines: t, substations: r, rows: rows}, nil
}

// Turbines returns the turbine count T.
func (c *Coordinates) Turbines() int { return c.turbines }

// Substations returns the substation count R.
func (c *Coordinates) Substations() int { return c.substations }

// NumRows returns the total row count, auxiliary rows included.
func (c *Coordinates) NumRows() int {
	n, _ := c.rows.Dims()
	return n
}

// At returns a node's coordinates. Negative indices resolve to substation
// rows from the end of the table; relay indices must be remapped to their
// row (see Physical.Resolve) before the call.
func (c *Coordinates) At(node int) (x, y float64, err error) {
	ri, err := c.row(node)
	if err != nil {
		return 0, 0, err
	}
	return c.rows.At(ri, 0), c.rows.At(ri, 1), nil
}

// row maps a resolved node index to its table row.
func (c *Coordinates) row(node int) (int, error) {
	n, _ := c.rows.Dims()
	switch {
	case node < 0:
		if -node > c.substations {
			return 0, fmt.Errorf("%w: substation %d with R=%d", ErrBadNode, node, c.substations)
		}
		return n + node, nil
	case node < n-c.substations:
		return node, nil
	default:
		return 0, fmt.Errorf("%w: node %d with %d coordinate rows", ErrBadNode, node, n)
	}
}

// Gradient is the total-cable-length gradient split into coordinate blocks:
// Turbines is T×2 and Substations R×2, column 0 holding ∂/∂x and column 1
// ∂/∂y.
type Gradient struct {
	Turbines    *mat.Dense
	Substations *mat.Dense
}

// TurbineX returns ∂(total length)/∂x for every turbine.
func (g Gradient) TurbineX() []float64 { return mat.Col(nil, 0, g.Turbines) }

// TurbineY returns ∂(total length)/∂y for every turbine.
func (g Gradient) TurbineY() []float64 { return mat.Col(nil, 1, g.Turbines) }

// SubstationX returns ∂(total length)/∂x for every substation.
func (g Gradient) SubstationX() []float64 { return mat.Col(nil, 0, g.Substations) }

// SubstationY returns ∂(total length)/∂y for every substation.
func (g Gradient) SubstationY() []float64 { return mat.Col(nil, 1, g.Substations) }

// TotalLengthGradient assembles the analytic gradient of total cable length
// with respect to every turbine and substation coordinate.
//
// The gradient of one Euclidean edge length |Pu − Pv| with respect to Pu is
// exactly the unit vector from Pv to Pu, so a single pass over the physical
// edges accumulates +unit at each edge's first endpoint row and −unit at
// its second. Relay indices are resolved through the physical graph's remap
// first, so detour clones of a vertex accumulate into one shared row.
// Edges shorter than zeroLengthTol contribute nothing.
//
// Complexity: O(E_phys).
//
// Errors: ErrBadNode if an edge endpoint resolves outside the table.
func TotalLengthGradient(phys *Physical, coords *Coordinates) (Gradient, error) {
	n, _ := coords.rows.Dims()
	acc := mat.NewDense(n, 2, nil)

	for _, e := range phys.Edges() {
		ru, err := coords.row(phys.Resolve(e.U))
		if err != nil {
			return Gradient{}, err
		}
		rv, err := coords.row(phys.Resolve(e.V))
		if err != nil {
			return Gradient{}, err
		}
		dx := coords.rows.At(ru, 0) - coords.rows.At(rv, 0)
		dy := coords.rows.At(ru, 1) - coords.rows.At(rv, 1)
		norm := math.Hypot(dx, dy)
		if norm <= zeroLengthTol {
			continue
		}
		dx /= norm
		dy /= norm
		acc.Set(ru, 0, acc.At(ru, 0)+dx)
		acc.Set(ru, 1, acc.At(ru, 1)+dy)
		acc.Set(rv, 0, acc.At(rv, 0)-dx)
		acc.Set(rv, 1, acc.At(rv, 1)-dy)
	}

	t, r := coords.turbines, coords.substations
	gt := mat.NewDense(t, 2, nil)
	gt.Copy(acc.Slice(0, t, 0, 2))
	gr := mat.NewDense(r, 2, nil)
	gr.Copy(acc.Slice(n-r, n, 0, 2))
	return Gradient{Turbines: gt, Substations: gr}, nil
}
