// Package geomorph represents site terrain and bathymetry as rectilinear
// depth grids, with a MoorPy-format file reader and bilinear sampling.
//
// 🚀 What is geomorph?
//
//	Offshore farms anchor into the seabed and onshore farms grade terrain;
//	either way the site arrives as a grid of depths (or elevations) over
//	rectilinear x/y axes. Grid stores the axes plus a dense value matrix,
//	validates their shapes, and samples depth at arbitrary points by
//	bilinear interpolation so foundation and mooring cost models can query
//	depth under every candidate turbine position.
//
// ✨ Key features:
//   - NewGrid — axes + ny×nx value matrix with shape/monotonicity checks
//   - ReadMoorPy / ParseMoorPy — the MoorPy bathymetry grid file format
//   - Sample — bilinear depth interpolation, exact at grid nodes
//
// Errors are sentinels (ErrBadGrid, ErrBadHeader, ErrOutOfDomain, ...); a
// parse failure names the offending line.
package geomorph
