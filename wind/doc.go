// Package wind carries the wind-condition query and resource types the farm
// power engine is evaluated against, plus the AEP weighting helper.
//
// 🚀 What is wind?
//
//	The wake/power engine is an external collaborator: given turbine
//	coordinates and a batch of wind conditions, it returns farm power per
//	condition. This package owns the inputs to that exchange — a Query of
//	parallel direction/speed/turbulence arrays, a Rose of condition
//	probabilities — and the annual-energy-production roll-up that weights
//	the engine's per-condition powers by their probabilities.
//
// ✨ Key types:
//   - Query      — parallel per-condition arrays with shape validation
//   - Rose       — directions × speeds probability table; flattens into a
//     Query plus a matching probability vector
//   - PowerModel — the external engine interface (farm power, per-turbine
//     power and thrust, per condition)
//   - AEP        — probability-weighted annual energy in watt-hours
//
// All validation errors are sentinels; no numeric edge cases are errors.
package wind
