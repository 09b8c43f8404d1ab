// SPDX-License-Identifier: MIT
// Package: signaltl/builder
//
// impl_ohlc.go — deterministic OHLC price trace via discrete-time GBM with
// intraday steps.
//
// Purpose:
//   • Emit a reproducible four-channel trace (open, high, low, close) for
//     multi-channel formulas, e.g. "G(low <= close) ∧ F[0,5](close > open)".
//   • A small fixed number of intraday steps forms realistic wicks.
//
// Contract:
//   • OHLC(days, seed, opts...) → *trace.Trace with ChannelOpen/High/Low/Close,
//     one sample per day at start + d·step, Hold interpolation unless
//     WithInterpolation says otherwise.
//   • O(days·steps) time, O(days) memory.
//
// Invariant per day: low ≤ min(open, close) ≤ max(open, close) ≤ high.

package builder

import (
	"math"

	"github.com/katalvlaran/signaltl/signal"
	"github.com/katalvlaran/signaltl/trace"
)

const (
	defOHLCStart     = 100.0  // initial price S0 (>0)
	defOHLCDailyMu   = 0.0005 // daily drift μ
	defOHLCDailyVol  = 0.02   // daily volatility σ (≥0)
	defIntradaySteps = 8      // intraday steps per day
)

// OHLC returns a deterministic open/high/low/close trace for days days.
// WithAmplitude scales the starting price (S0 = 100·A); WithNoise replaces
// the daily volatility.
//
// Model (per intraday step, Δt = 1/steps):
//
//	S_{t+1} = S_t · exp((μ − ½σ²)Δt + σ√Δt·Z),  Z ~ N(0,1)
//
// Errors:
//   - ErrBadSize — days < 1.
func OHLC(days int, seed int64, opts ...BuilderOption) (*trace.Trace, error) {
	if err := validateMin(MethodOHLC, days, MinSamples); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(append([]BuilderOption{WithInterpolation(signal.Hold)}, opts...)...)
	vol := defOHLCDailyVol
	if cfg.noiseSigma > 0 {
		vol = cfg.noiseSigma
	}
	rng := rngFrom(cfg, seed)

	open := make([]signal.Sample, days)
	high := make([]signal.Sample, days)
	low := make([]signal.Sample, days)
	closing := make([]signal.Sample, days)

	S := defOHLCStart * cfg.amplitude
	dt := 1.0 / float64(defIntradaySteps)
	drift := defOHLCDailyMu - 0.5*vol*vol
	noise := vol * math.Sqrt(dt)

	for d := 0; d < days; d++ {
		t := cfg.timeAt(d)
		openD := S
		dayHigh, dayLow := S, S
		for s := 0; s < defIntradaySteps; s++ {
			S *= math.Exp(drift*dt + noise*rng.NormFloat64())
			dayHigh = math.Max(dayHigh, S)
			dayLow = math.Min(dayLow, S)
		}
		open[d] = signal.Sample{Time: t, Value: openD}
		high[d] = signal.Sample{Time: t, Value: dayHigh}
		low[d] = signal.Sample{Time: t, Value: dayLow}
		closing[d] = signal.Sample{Time: t, Value: S}
	}

	channels := make(map[string]*signal.Signal, 4)
	for name, samples := range map[string][]signal.Sample{
		ChannelOpen: open, ChannelHigh: high, ChannelLow: low, ChannelClose: closing,
	} {
		s, err := signal.New(samples, cfg.interp)
		if err != nil {
			return nil, builderErrorf(MethodOHLC, err, "channel %s", name)
		}
		channels[name] = s
	}

	return trace.New(channels)
}
