package collection

// Solver is the external collection-topology engine: given turbine and
// substation coordinates and the per-string capacity limit, it returns the
// solved cable tree together with the candidate-link table and the realized
// physical routing graph that price and ground it.
//
// Implementations are expected to be expensive (mixed-integer routing); the
// extraction side never calls one, it only consumes the triple. Tests
// hand-build feasible trees instead of solving.
type Solver interface {
	Solve(xTurbines, yTurbines, xSubstations, ySubstations []float64, maxPerString int) (*Solved, *CandidateLinks, *Physical, error)
}
