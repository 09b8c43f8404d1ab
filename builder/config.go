// SPDX-License-Identifier: MIT
// Package: signaltl/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all generator knobs.
//   • newBuilderConfig applies options in order (later overrides earlier).
//   • Zero frequency means "use the generator's own default", so Pulse and
//     Chirp keep their characteristic shapes unless told otherwise.
//
// Deterministic defaults:
//   • rng         = nil      (generators fall back to their seed argument)
//   • amplitude   = 1.0
//   • frequency   = 0        (generator default)
//   • trendK      = 0.0
//   • noiseSigma  = 0.0
//   • step        = 1.0      (time between samples)
//   • start       = 0.0      (time of the first sample)
//   • interp      = signal.Linear

package builder

import (
	"math/rand"

	"github.com/katalvlaran/signaltl/signal"
)

// builderConfig aggregates all knobs used by the generators.
// It is passed by value to generators.
type builderConfig struct {
	rng *rand.Rand

	amplitude  float64 // > 0
	frequency  float64 // cycles per time unit; 0 ⇒ generator default
	sweepEnd   float64 // chirp end frequency; 0 ⇒ default
	trendK     float64 // added k·t
	noiseSigma float64 // ≥ 0
	duty       float64 // rectangular pulse duty in [0,1]
	triangular bool

	step   float64 // > 0
	start  float64
	interp signal.Interpolation
}

const (
	defaultAmplitude  = 1.0
	defaultTrend      = 0.0
	defaultNoiseSigma = 0.0
	defaultStep       = 1.0
	defaultStart      = 0.0
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		amplitude:  defaultAmplitude,
		trendK:     defaultTrend,
		noiseSigma: defaultNoiseSigma,
		duty:       defDuty,
		step:       defaultStep,
		start:      defaultStart,
		interp:     signal.Linear,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// timeAt returns the time of sample i.
func (c builderConfig) timeAt(i int) float64 {
	return c.start + float64(i)*c.step
}

// freqOr returns the configured frequency or def when none was set.
func (c builderConfig) freqOr(def float64) float64 {
	if c.frequency > 0 {
		return c.frequency
	}

	return def
}
