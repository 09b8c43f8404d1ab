// Package signal models discrete-time real-valued signals: ordered, strictly
// increasing (time, value) samples plus an interpolation policy that defines
// the value between samples.
//
// 🚀 What is a Signal?
//
//	A Signal is an immutable series of Samples over a closed domain
//	[t_first, t_last]. The interpolation policy is fixed per instance:
//	  • Hold   — piecewise constant, right-continuous: v(t) = v_i on [t_i, t_{i+1})
//	  • Linear — piecewise linear between consecutive samples
//
// ✨ Key features:
//   - strict validation at construction (ErrInvalidSignal)
//   - exact values at sample times, interpolation elsewhere (ValueAt)
//   - derived signals: Restrict, Shift, Simplify, Resample, Negate
//   - Synchronize: align N signals on the union of their timestamps inside
//     the common overlap, each one resampled by its own policy
//
// ⚙️ Usage:
//
//	x, err := signal.FromSlices(
//	  []float64{0, 1, 2},   // times
//	  []float64{1, 3, 0},   // values
//	  signal.Linear,
//	)
//	v, err := x.ValueAt(0.5) // 2
//
//	aligned, times, err := signal.Synchronize(x, y)
//
// Performance:
//
//   - ValueAt:     O(log n) (binary search)
//   - Synchronize: O(N log N) over the total number of samples N
//
// Signals never change after construction, so a *Signal may be shared by any
// number of goroutines without locking.
package signal
