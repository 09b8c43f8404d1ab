// SPDX-License-Identifier: MIT

// Package robustness: functional configuration of an evaluation.
//
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values,
//   - gatherOptions, which resolves ...Option into an Options value.
//
// Options never change the semantics of a well-formed evaluation except
// where documented (WithConstBound changes the value of Const nodes,
// WithEvalTimes changes the shape of the returned signal).

package robustness

import (
	"log/slog"
	"math"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// ---------- Defaults ----------

const (
	// DefaultConcurrency bounds EvaluateAll to this many jobs in flight;
	// 0 means one goroutine per job.
	DefaultConcurrency = 0

	// instrumentationName names the tracer and meter of this package.
	instrumentationName = "github.com/katalvlaran/signaltl/robustness"
)

// DefaultConstBound is the robustness magnitude of Const nodes: +Inf for
// true, -Inf for false.
var DefaultConstBound = math.Inf(1)

// ---------- Panic messages ----------

const (
	panicConstBoundInvalid  = "robustness: WithConstBound: bound must be > 0 and not NaN"
	panicConcurrencyInvalid = "robustness: WithConcurrency: n must be >= 0"
	panicEvalTimesInvalid   = "robustness: WithEvalTimes: times must be finite and strictly increasing"
)

// ---------- Option type ----------

// Option mutates Options. Options are applied in order; later ones win.
type Option func(*Options)

// Options is the resolved configuration of one evaluation. Fields are
// unexported; public entry points accept ...Option.
type Options struct {
	evalTimes      []float64 // nil ⇒ return the full robustness signal
	constBound     float64   // DefaultConstBound
	logger         *slog.Logger
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	concurrency    int // DefaultConcurrency
}

// WithEvalTimes makes Evaluate/Compute return the robustness signal
// resampled at exactly these times. Times outside the robustness domain
// fail with ErrDomainMismatch wrapping signal.ErrOutOfDomain.
//
// Panics if times are empty, non-finite, or not strictly increasing.
func WithEvalTimes(times ...float64) Option {
	if len(times) == 0 {
		panic(panicEvalTimesInvalid)
	}
	for i, t := range times {
		if math.IsNaN(t) || math.IsInf(t, 0) || (i > 0 && t <= times[i-1]) {
			panic(panicEvalTimesInvalid)
		}
	}
	own := slices.Clone(times)

	return func(o *Options) { o.evalTimes = own }
}

// WithConstBound replaces the ±Inf robustness of Const nodes by ±bound.
// +Inf restores the default.
func WithConstBound(bound float64) Option {
	if math.IsNaN(bound) || bound <= 0 {
		panic(panicConstBoundInvalid)
	}

	return func(o *Options) { o.constBound = bound }
}

// WithLogger routes per-node debug records and batch progress to l.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider used by
// EvaluateAll. A nil provider is ignored.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		if tp != nil {
			o.tracerProvider = tp
		}
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider used to count
// evaluations. A nil provider is ignored.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *Options) {
		if mp != nil {
			o.meterProvider = mp
		}
	}
}

// WithConcurrency bounds the number of EvaluateAll jobs in flight.
// 0 removes the bound.
func WithConcurrency(n int) Option {
	if n < 0 {
		panic(panicConcurrencyInvalid)
	}

	return func(o *Options) { o.concurrency = n }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		constBound:  DefaultConstBound,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	if o.tracerProvider == nil {
		o.tracerProvider = otel.GetTracerProvider()
	}
	if o.meterProvider == nil {
		o.meterProvider = otel.GetMeterProvider()
	}

	return o
}
