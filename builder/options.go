// SPDX-License-Identifier: MIT
// Package: signaltl/builder
//
// options.go — functional options for the generators.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand, or
//     through the seed argument of stochastic generators.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/signaltl/signal"
)

// BuilderOption customizes a generator by mutating its builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG, shared across calls that receive it.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed, overriding the
// generator's seed argument.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithAmplitude sets the amplitude A (>0). Panics if A <= 0 or NaN.
func WithAmplitude(A float64) BuilderOption {
	if !(A > 0) || math.IsInf(A, 1) {
		panic("builder: WithAmplitude(A<=0)")
	}

	return func(c *builderConfig) { c.amplitude = A }
}

// WithFrequency sets the base frequency f0 (>0) in cycles per time unit.
// For Chirp it is the start of the sweep. Panics if f0 <= 0.
func WithFrequency(f0 float64) BuilderOption {
	if !(f0 > 0) || math.IsInf(f0, 1) {
		panic("builder: WithFrequency(f0<=0)")
	}

	return func(c *builderConfig) { c.frequency = f0 }
}

// WithSweep sets both ends of a Chirp sweep. Panics unless both are > 0.
func WithSweep(f0, f1 float64) BuilderOption {
	if !(f0 > 0) || !(f1 > 0) || math.IsInf(f0, 1) || math.IsInf(f1, 1) {
		panic("builder: WithSweep(f<=0)")
	}

	return func(c *builderConfig) { c.frequency, c.sweepEnd = f0, f1 }
}

// WithTrend adds k·(t - start) to every sample. Any finite k is accepted.
func WithTrend(k float64) BuilderOption {
	if math.IsNaN(k) || math.IsInf(k, 0) {
		panic("builder: WithTrend(non-finite)")
	}

	return func(c *builderConfig) { c.trendK = k }
}

// WithNoise sets the Gaussian noise sigma (>=0). Panics if sigma < 0.
func WithNoise(sigma float64) BuilderOption {
	if !(sigma >= 0) || math.IsInf(sigma, 1) {
		panic("builder: WithNoise(sigma<0)")
	}

	return func(c *builderConfig) { c.noiseSigma = sigma }
}

// WithDuty sets the on-fraction of rectangular pulses. Panics outside [0,1].
func WithDuty(duty float64) BuilderOption {
	if !(duty >= 0 && duty <= 1) {
		panic("builder: WithDuty(duty∉[0,1])")
	}

	return func(c *builderConfig) { c.duty = duty }
}

// WithTriangular switches Pulse to a triangular 0..A envelope.
func WithTriangular() BuilderOption {
	return func(c *builderConfig) { c.triangular = true }
}

// WithStep sets the time between consecutive samples (>0).
func WithStep(dt float64) BuilderOption {
	if !(dt > 0) || math.IsInf(dt, 1) {
		panic("builder: WithStep(dt<=0)")
	}

	return func(c *builderConfig) { c.step = dt }
}

// WithStart sets the time of the first sample.
func WithStart(t0 float64) BuilderOption {
	if math.IsNaN(t0) || math.IsInf(t0, 0) {
		panic("builder: WithStart(non-finite)")
	}

	return func(c *builderConfig) { c.start = t0 }
}

// WithInterpolation sets the policy of the generated signal.
func WithInterpolation(p signal.Interpolation) BuilderOption {
	if p != signal.Linear && p != signal.Hold {
		panic("builder: WithInterpolation(unknown)")
	}

	return func(c *builderConfig) { c.interp = p }
}
