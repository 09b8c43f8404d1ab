// SPDX-License-Identifier: MIT
// Package: signaltl/builder
//
// impl_pulse.go — deterministic rectangular/triangular pulse signal.
//
// Purpose:
//   • Provide a reproducible pulse train for tests, examples and benchmarks.
//   • Shape controls: rectangular (duty ∈ [0,1]) or triangular (0..A envelope).
//   • Optional linear trend and additive Gaussian noise, both deterministic.
//
// Contract:
//   • Pulse(n, seed, opts...) returns an n-sample signal or ErrBadSize.
//   • Strict determinism per (n, seed, options); no panics; no global state.
//   • O(n) time and memory.
//
// With the default step of 1 and frequency 0.125 the period is 8 samples;
// a rectangular pulse with Hold interpolation is then an exact square wave.

package builder

import (
	"math"

	"github.com/katalvlaran/signaltl/signal"
)

const defPulseFreq = 0.125 // cycles per time unit; period 8 at step 1

// Pulse returns an n-sample pulse train.
//
// Shape:
//   - Rectangular: y ∈ {0, A}, on while the phase fraction is < duty.
//   - Triangular:  y = A·(1 − |2·frac − 1|).
//
// Errors:
//   - ErrBadSize — n < MinSamples.
func Pulse(n int, seed int64, opts ...BuilderOption) (*signal.Signal, error) {
	if err := validateMin(MethodPulse, n, MinSamples); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	f0 := cfg.freqOr(defPulseFreq)
	rng := rngFrom(cfg, seed)

	base := make([]float64, n)
	var frac float64
	for i := range base {
		frac = math.Mod(float64(i)*cfg.step*f0, unitOne)
		switch {
		case cfg.triangular:
			base[i] = cfg.amplitude * (unitOne - math.Abs(triDouble*frac-triCenter))
		case frac < cfg.duty:
			base[i] = cfg.amplitude
		default:
			base[i] = unitZero
		}
	}

	return finish(MethodPulse, cfg, base, rng)
}
