// SPDX-License-Identifier: MIT
// Package: signaltl/builder
//
// impl_periodic.go — deterministic sine, ramp and function-sampled signals.
// None of them draw random numbers unless WithNoise is set, in which case
// WithSeed / WithRand supply the stream (seed 0 otherwise).

package builder

import (
	"math"

	"github.com/katalvlaran/signaltl/signal"
)

const defSineFreq = 0.1

// Sine returns A·sin(2π·f·(t − start)) sampled n times.
//
// Errors:
//   - ErrBadSize — n < MinSamples.
func Sine(n int, opts ...BuilderOption) (*signal.Signal, error) {
	if err := validateMin(MethodSine, n, MinSamples); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	f := cfg.freqOr(defSineFreq)

	base := make([]float64, n)
	for i := range base {
		base[i] = cfg.amplitude * math.Sin(tau*f*float64(i)*cfg.step)
	}

	return finish(MethodSine, cfg, base, rngFrom(cfg, 0))
}

// Ramp returns the line from 0 to A over n samples (constant A·0 for n = 1).
// Combine with WithTrend for an unbounded slope.
//
// Errors:
//   - ErrBadSize — n < MinSamples.
func Ramp(n int, opts ...BuilderOption) (*signal.Signal, error) {
	if err := validateMin(MethodRamp, n, MinSamples); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)

	base := make([]float64, n)
	for i := range base {
		if n > 1 {
			base[i] = cfg.amplitude * float64(i) / float64(n-1)
		}
	}

	return finish(MethodRamp, cfg, base, rngFrom(cfg, 0))
}

// FromFunc samples fn at the n configured times. Amplitude scales fn.
//
// Errors:
//   - ErrBadSize         — n < MinSamples.
//   - ErrOptionViolation — fn is nil or returns a non-finite value.
func FromFunc(n int, fn func(t float64) float64, opts ...BuilderOption) (*signal.Signal, error) {
	if err := validateMin(MethodFromFunc, n, MinSamples); err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, builderErrorf(MethodFromFunc, ErrOptionViolation, "nil function")
	}
	cfg := newBuilderConfig(opts...)

	base := make([]float64, n)
	for i := range base {
		base[i] = cfg.amplitude * fn(cfg.timeAt(i))
	}

	return finish(MethodFromFunc, cfg, base, rngFrom(cfg, 0))
}
