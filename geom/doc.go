// Package geom provides smooth, differentiable geometric primitives for
// layout optimization: point-to-segment and segment-to-segment distances,
// signed point-to-polygon distances via a smoothed ray-casting rule, inward
// edge normals, and multi-region dispatch with region assignment.
//
// 🚀 What is geom?
//
//	Every distance here is built to feed a gradient-based optimizer:
//	non-smooth min/max selections are replaced by sharpness-controlled
//	smooth surrogates, and near-degenerate configurations (zero-length
//	segments, parallel lines, vertical ray-cast edges) are resolved with
//	epsilon guards instead of errors. Typical uses:
//	  • keep-in / keep-out site boundary constraints
//	  • turbine spacing and cable-crossing clearances
//	  • per-point constraint gradients for the optimizer
//
// ✨ Key features:
//   - SmoothMin / SmoothMax — Boltzmann-weighted differentiable min/max
//   - PointToSegment — N-dimensional, clamped parametric projection
//   - SegmentToSegment — closest-approach solve with a robust
//     near-parallel fallback (never NaN, even for overlapping segments)
//   - SignedDistance — negative inside, positive outside, smooth magnitude
//   - Ring — explicitly closed, counterclockwise polygon boundary
//   - BoundarySet — multi-region dispatch with an R-tree bbox prefilter,
//     deterministic first-match region assignment, optional parallel batch
//
// ⚙️ Usage:
//
//	import "github.com/skagerrak/windplan/geom"
//
//	ring, _ := geom.NewRingXY(xs, ys)
//	opt := geom.DefaultOptions()
//	d := geom.SignedDistance(orb.Point{x, y}, ring, opt) // d <= 0 means inside
//
// Performance:
//
//   - SignedDistance: O(E) per point, E = ring edges
//   - BoundarySet dispatch: O(E_candidate) per point after bbox prefilter,
//     O(R·E) worst case when a point is outside every region
//
// All functions are pure; no state survives a call. See example_test.go.
package geom
