package cost_test

import (
	"fmt"

	"github.com/skagerrak/windplan/cost"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSpacingSurrogate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	25 machines with 130 m rotors and 22 750 m of collection cable: the
//	surrogate reads that as a 7-diameter mean spacing, with a constant
//	sensitivity to cable length.
//
// Complexity: O(1)
func ExampleSpacingSurrogate() {
	s, err := cost.NewSpacingSurrogate(25, 130)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("spacing  = %.1f D\n", s.Spacing(22750))
	fmt.Printf("∂spacing = %.3e per m\n", s.Partial())
	// Output:
	// spacing  = 7.0 D
	// ∂spacing = 3.077e-04 per m
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleTurbineCapitalCost
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A 25-machine farm of 3.4 MW turbines at 1100 + 50 USD/kW.
//
// Complexity: O(1)
func ExampleTurbineCapitalCost() {
	tcc, err := cost.TurbineCapitalCost(25, cost.TurbineSpec{
		RatingKW:  3400,
		TCCPerKW:  1100,
		OffsetTCC: 50,
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("TCC = %.0f USD\n", tcc)
	// Output:
	// TCC = 97750000 USD
}
