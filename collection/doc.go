// Package collection turns a solved cable collection network into the dense
// per-turbine arrays downstream cost models consume, and assembles the
// analytic gradient of total cable length with respect to every turbine and
// substation coordinate.
//
// 🚀 What is collection?
//
//	An external routing solver decides which cables exist: a tree (per
//	substation) of links from turbines toward their substation, each link
//	carrying an electrical load and a direction flag. This package walks
//	that solved graph once per optimization iteration and recovers, for
//	every turbine, the single cable it originates: its target node, its
//	physical length (including multi-hop detour routes hidden behind one
//	logical feeder link), and its load. Nothing is persisted; each call is
//	a pure function of its inputs.
//
// ✨ Key features:
//   - Extract — per-turbine terse links, cable lengths, loads, total length
//     and maximum load from a Solved graph + candidate-link table + realized
//     physical graph
//   - three length sources: candidate table (inter-turbine), root-distance
//     table (direct feeders), bounded relay-chain walk (detoured feeders)
//   - mandatory length conservation check: per-turbine lengths must sum to
//     the physical graph's total weighted size
//   - TotalLengthGradient — closed-form ±unit-edge-vector accumulation,
//     split into turbine and substation mat.Dense blocks
//   - Strings — decomposition of the solved tree into ordered cable strings
//     for balance-of-system exporters
//   - Validate — structural audit: terse totality, load monotonicity,
//     root reachability
//
// ⚙️ Usage:
//
//	import "github.com/skagerrak/windplan/collection"
//
//	solved, _ := collection.NewSolved(T, R, edges)
//	ex, err := collection.Extract(solved, links, phys)
//	if err != nil {
//	    return err // fatal: this iteration's outputs are unusable
//	}
//	grad, _ := collection.TotalLengthGradient(phys, coords)
//
// Performance:
//
//   - Extract: O(E + H) where E = solved edges, H = total detour hops
//   - TotalLengthGradient: O(E_phys)
//   - Strings / Validate: O(E)
//
// Structural failures (cyclic detour chains, length-sum mismatches, gaps in
// the terse array) are hard errors: a single inconsistent evaluation would
// poison the surrounding optimization iteration, so nothing is returned
// partially. See types.go for the sentinel list.
package collection
