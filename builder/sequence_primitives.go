// SPDX-License-Identifier: MIT
// Package: signaltl/builder
//
// sequence_primitives.go — shared defaults and helpers for the generators.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/signaltl/signal"
)

// Shape defaults shared across generators.
const (
	defDuty   = 0.5 // rectangular duty cycle in [0,1]
	unitZero  = 0.0
	unitOne   = 1.0
	triDouble = 2.0 // 1 − |2·frac − 1|
	triCenter = 1.0
)

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by seed.
func rngFrom(cfg builderConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}

// finish adds trend and noise to the base values, attaches the time axis and
// returns the signal. noise may be nil when sigma is zero.
func finish(method string, cfg builderConfig, base []float64, noise *rand.Rand) (*signal.Signal, error) {
	samples := make([]signal.Sample, len(base))
	for i, v := range base {
		v += cfg.trendK * float64(i) * cfg.step
		if cfg.noiseSigma > 0 && noise != nil {
			v += cfg.noiseSigma * noise.NormFloat64()
		}
		if err := validateFinite(method, "sample value", v); err != nil {
			return nil, err
		}
		samples[i] = signal.Sample{Time: cfg.timeAt(i), Value: v}
	}
	s, err := signal.New(samples, cfg.interp)
	if err != nil {
		return nil, builderErrorf(method, err, "time axis start=%v step=%v", cfg.start, cfg.step)
	}

	return s, nil
}
