package cost

// FarmDesign is the geometry/topology snapshot handed to the external cost
// models: everything they need that the optimizer controls.
type FarmDesign struct {
	XTurbines, YTurbines       []float64
	XSubstations, YSubstations []float64
	TotalCableLength           float64 // m
	MaxCableLoad               int     // turbines on the heaviest cable
	SpacingDiameters           float64 // surrogate spacing, rotor diameters
}

// BOSCosts is the balance-of-system breakdown an external estimator returns.
type BOSCosts struct {
	CapexPerKW float64 // USD/kW
	TotalCapex float64 // USD
}

// BOSModel is a LandBOSSE/ORBIT-class balance-of-system estimator. The
// implementation is an external collaborator; tests use fixed-value stubs.
type BOSModel interface {
	Estimate(design FarmDesign, spec TurbineSpec, n int) (BOSCosts, error)
}

// FinanceResult is the financial roll-up an external plant-finance model
// returns.
type FinanceResult struct {
	LCOE float64 // USD/Wh
}

// FinanceModel folds capital and operating expenditures against annual
// energy production into a levelized cost of energy.
type FinanceModel interface {
	Evaluate(tcc, bosCapex, opex, aepWh float64) (FinanceResult, error)
}
