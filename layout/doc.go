// Package layout generates parametric wind-farm layouts: the structured
// turbine placements an optimizer uses as starting points.
//
// 🚀 What is layout?
//
//	Every generator returns parallel x/y coordinate arrays centered on the
//	origin, in the same metre units the geometry and collection engines
//	consume. Generators are deterministic: the same parameters always
//	produce the same farm.
//
// ✨ Generators:
//   - Grid      — rows×cols lattice with independent primary/secondary
//     spacing, an orientation angle for the primary axis, and a skew angle
//     between the axes
//   - Sunflower — phyllotaxis (golden-angle) packing towards a target
//     mean spacing, for roughly circular sites
//   - Ring      — n turbines on a regular polygon of a given radius,
//     optionally phase-shifted
//
// ⚙️ Usage:
//
//	farm, err := layout.Grid(5, 5, layout.GridSpec{
//	    SpacingPrimary:   7 * 130,
//	    SpacingSecondary: 7 * 130,
//	})
//
// Land-use helpers (BoundingBoxArea, ConvexHullArea) report footprint
// proxies of a placed farm for land-cost outputs.
//
// All constructors validate parameters up front and return sentinel errors;
// they never panic.
package layout
