// Package cost holds the pure-algebra cost components of the framework and
// the interfaces behind which the heavyweight balance-of-system and
// financial models live.
//
// 🚀 What is cost?
//
//	Downstream of the layout and collection engines, costs split in two:
//	simple closed-form components (turbine capital cost, operating
//	expenses, the cable-length→spacing surrogate) implemented here, and
//	the external BOS/finance models (LandBOSSE/ORBIT-class) that stay
//	behind the BOSModel and FinanceModel interfaces.
//
// ✨ Components:
//   - TurbineCapitalCost — n · rating · (tccPerKW + offset)
//   - OperatingExpenses  — n · rating · opexPerKW, per year
//   - SpacingSurrogate   — mean turbine spacing in rotor diameters inferred
//     from total cable length, with its constant partial derivative exposed
//     for the optimizer
//
// Every component is a pure function of its inputs; the only errors are
// parameter validation sentinels.
package cost
