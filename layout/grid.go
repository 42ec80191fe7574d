package layout

import (
	"fmt"
	"math"
)

// GridSpec parameterizes a structured lattice farm.
//
// SpacingPrimary separates neighbors along the primary axis, which points at
// AngleOrientation degrees counterclockwise from east. SpacingSecondary
// separates the rows; the secondary axis sits 90+AngleSkew degrees from the
// primary, so a zero skew gives an orthogonal grid and a nonzero skew shears
// the rows into a parallelogram.
type GridSpec struct {
	SpacingPrimary   float64
	SpacingSecondary float64
	AngleOrientation float64 // degrees CCW from +x
	AngleSkew        float64 // degrees; 0 is orthogonal
}

// Grid places rows×cols turbines on a (possibly sheared and rotated)
// lattice, centered on the origin.
//
// Complexity: O(rows·cols).
//
// Errors: ErrTooFewTurbines, ErrBadSpacing, ErrBadAngle (axes collinear).
func Grid(rows, cols int, spec GridSpec) (Farm, error) {
	if rows < 1 || cols < 1 {
		return Farm{}, fmt.Errorf("%w: rows=%d cols=%d", ErrTooFewTurbines, rows, cols)
	}
	if spec.SpacingPrimary <= 0 || spec.SpacingSecondary <= 0 {
		return Farm{}, fmt.Errorf("%w: primary=%g secondary=%g",
			ErrBadSpacing, spec.SpacingPrimary, spec.SpacingSecondary)
	}

	between := (90 + spec.AngleSkew) * math.Pi / 180
	if math.Abs(math.Sin(between)) < 1e-9 {
		return Farm{}, fmt.Errorf("%w: skew=%g°", ErrBadAngle, spec.AngleSkew)
	}

	primary := spec.AngleOrientation * math.Pi / 180
	secondary := primary + between
	px, py := math.Cos(primary), math.Sin(primary)
	sx, sy := math.Cos(secondary), math.Sin(secondary)

	n := rows * cols
	f := Farm{X: make([]float64, 0, n), Y: make([]float64, 0, n)}
	for r := 0; r < rows; r++ {
		q := spec.SpacingSecondary * (float64(r) - float64(rows-1)/2)
		for c := 0; c < cols; c++ {
			p := spec.SpacingPrimary * (float64(c) - float64(cols-1)/2)
			f.X = append(f.X, p*px+q*sx)
			f.Y = append(f.Y, p*py+q*sy)
		}
	}
	return f, nil
}
