// Package signaltl evaluates Signal Temporal Logic (STL) requirements over
// recorded, real-valued signals and reports by how much each requirement is
// satisfied or violated.
//
// 🚀 What is signaltl?
//
//	An offline robustness engine. Build a formula, hand it named signals,
//	get back a robustness signal:
//		• signal/     — sampled signals with hold or linear interpolation
//		• trace/      — named channels and their synchronization
//		• formula/    — the closed formula algebra, intervals, validation
//		• robustness/ — exact quantitative semantics, batch evaluation
//		• builder/    — deterministic pulse, chirp, sine, ramp and OHLC data
//
// ✨ Why choose signaltl?
//
//   - Exact – outputs keep every breakpoint of the true robustness function
//   - Pure – no global state; formulas and traces are immutable and shareable
//   - Observable – log/slog and OpenTelemetry hooks, silent by default
//
// Quick example:
//
//	x, _ := signal.FromSlices([]float64{0, 1, 2}, []float64{1, 3, 0}, signal.Linear)
//	phi := signaltl.G(0, 1, formula.Var("x").LE(2))
//	rho, _ := signaltl.ComputeRobustness(phi, map[string]*signal.Signal{"x": x})
//	rho.ValueAt(0) // -1: x reaches 3 within the next time unit
//
// The root package only offers short names (G, F, U, Top, Bot, Inf) and
// ComputeRobustness; everything else lives in the subpackages.
package signaltl
