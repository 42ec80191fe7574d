package geomorph_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/skagerrak/windplan/geomorph"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleGrid_Sample
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A 2×2 bathymetry grid over a 100 m square. Node queries reproduce the
//	stored depths exactly; the center blends all four corners.
//
// Complexity: O(log nx + log ny) per query
func ExampleGrid_Sample() {
	depths := mat.NewDense(2, 2, []float64{
		10, 20,
		30, 40,
	})
	grid, err := geomorph.NewGrid([]float64{0, 100}, []float64{0, 100}, depths)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for _, q := range [][2]float64{{0, 0}, {100, 100}, {50, 50}} {
		d, err := grid.Sample(q[0], q[1])
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("depth(%.0f, %.0f) = %.1f\n", q[0], q[1], d)
	}
	// Output:
	// depth(0, 0) = 10.0
	// depth(100, 100) = 40.0
	// depth(50, 50) = 25.0
}
