// Package robustness computes the quantitative (robustness) semantics of
// Signal Temporal Logic formulas over multi-channel traces.
//
// 🚀 What is robustness?
//
//	A real-valued signal ρ(φ, t) whose sign tells whether φ holds at t and
//	whose magnitude tells by how much the trace could be perturbed before
//	the verdict flips:
//
//	  ρ(x <= c, t)       = c - x(t)
//	  ρ(¬φ, t)           = -ρ(φ, t)
//	  ρ(φ ∧ ψ, t)        = min(ρ(φ, t), ρ(ψ, t))
//	  ρ(G[a,b] φ, t)     = inf_{t' ∈ [t+a, t+b]} ρ(φ, t')
//	  ρ(F[a,b] φ, t)     = sup_{t' ∈ [t+a, t+b]} ρ(φ, t')
//	  ρ(φ U[a,b] ψ, t)   = sup_{t' ∈ [t+a, t+b]} min(ρ(ψ, t'), inf_{[t, t']} ρ(φ, ·))
//
// ✨ Key properties:
//   - exact: outputs carry every breakpoint of the true robustness function
//     (window boundaries, crossings of linear pieces), never a fixed grid
//   - pure: no global state; the same formula and trace may be evaluated
//     from many goroutines at once
//   - shared subformulas are evaluated once per call
//   - temporal operators shrink the domain by their lower bound and clip
//     windows at the end of the trace
//
// ⚙️ Usage:
//
//	rho, err := robustness.Compute(phi, map[string]*signal.Signal{"x": x})
//	v, err := robustness.At(phi, tr, 0)
//	results, err := robustness.EvaluateAll(ctx, tr, jobs, robustness.WithConcurrency(4))
//
// Options: WithEvalTimes, WithConstBound, WithLogger (log/slog),
// WithTracerProvider and WithMeterProvider (OpenTelemetry), WithConcurrency.
//
// Errors are *EvalError values naming the failing node; errors.Is matches
// the sentinels of this package and of signal, trace and formula.
package robustness
