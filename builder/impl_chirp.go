// SPDX-License-Identifier: MIT
// Package: signaltl/builder
//
// impl_chirp.go — deterministic linear chirp signal.
//
// Model:
//   - fᵢ   = f0 + (f1 − f0)·i/(n−1)        (cycles per time unit)
//   - θᵢ₊₁ = θᵢ + 2π·fᵢ·step               (phase accumulator)
//   - yᵢ   = A·sin(θᵢ) + trend + noise
//
// The accumulator keeps the phase continuous while the frequency sweeps.

package builder

import (
	"math"

	"github.com/katalvlaran/signaltl/signal"
)

const (
	defChirpF0 = 0.02 // sweep start
	defChirpF1 = 0.25 // sweep end
)

// tau is 2π.
const tau = 2.0 * math.Pi

// Chirp returns an n-sample linear chirp sweeping from f0 to f1
// (WithFrequency / WithSweep; defaults 0.02 → 0.25).
//
// Errors:
//   - ErrBadSize — n < MinSamples.
func Chirp(n int, seed int64, opts ...BuilderOption) (*signal.Signal, error) {
	if err := validateMin(MethodChirp, n, MinSamples); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	f0 := cfg.freqOr(defChirpF0)
	f1 := defChirpF1
	if cfg.sweepEnd > 0 {
		f1 = cfg.sweepEnd
	}
	rng := rngFrom(cfg, seed)

	base := make([]float64, n)
	theta := unitZero
	for i := range base {
		pos := unitZero
		if n > 1 {
			pos = float64(i) / float64(n-1)
		}
		theta += tau * (f0 + (f1-f0)*pos) * cfg.step
		base[i] = cfg.amplitude * math.Sin(theta)
	}

	return finish(MethodChirp, cfg, base, rng)
}
