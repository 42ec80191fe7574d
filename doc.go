// Package windplan is the numerical core of a wind-farm design-optimization
// toolchain: differentiable geometric constraints, collection-cable network
// extraction with analytic sensitivities, and the supporting farm modeling
// pieces a gradient-based layout optimizer needs.
//
// 🚀 What is windplan?
//
//	A library that brings together:
//		• Smooth geometry: signed point-to-polygon distance (ray casting with
//		  soft-min magnitude), segment-to-segment distance, inward edge normals
//		• Collection networks: per-turbine cable length/load extraction from a
//		  solved routing graph, detour-chain reconstruction, analytic gradient
//		  of total cable length w.r.t. turbine and substation coordinates
//		• Farm modeling: parametric layout generators, wind-resource queries,
//		  capital/operating cost components, terrain & bathymetry grids
//
// ✨ Why windplan?
//
//   - Differentiable by construction – every constraint stays smooth so it can
//     feed straight into a gradient-based optimizer
//   - Solver-agnostic – the routing solver is an interface; any tool that can
//     return a cable tree plugs in
//   - Deterministic – documented tie-breaks everywhere ordering matters
//
// Subpackages:
//
//	geom/       — smooth distance kernels, closed rings, boundary sets
//	collection/ — solved-graph extraction, string decomposition, gradients
//	layout/     — grid / sunflower / ring farm layout generators
//	wind/       — wind-resource queries, wind roses, AEP weighting
//	cost/       — turbine capital & operating cost components, spacing surrogate
//	geomorph/   — terrain and bathymetry grids, MoorPy bathymetry reader
//	config/     — YAML turbine-spec and farm-config loading
//	viz/        — layout and cable-route plots
//	recorder/   — per-iteration optimization archives
//
// Quick ASCII sketch of a solved collection system:
//
//	  t0───t1───t2
//	             │
//	  t3───t4───[S]   feeder strings aggregate toward the substation S
//
// Dive into the per-package docs for algorithms, complexity notes and
// worked examples.
//
//	go get github.com/skagerrak/windplan
package windplan
