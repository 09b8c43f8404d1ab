// SPDX-License-Identifier: MIT
// Package: signaltl/robustness
//
// engine.go — recursive evaluation of a formula over a trace.
//
// Pipeline of one evaluation:
//  1. formula.Validate — structural errors surface before any signal work.
//  2. Channel selection — the channels referenced by the formula, or every
//     channel when it references none; all must share one interpolation.
//  3. Synchronization of the selection on one merged time basis.
//  4. Post-order evaluation; each distinct node is evaluated once even when
//     it is shared by several parents.
//  5. Optional resampling at WithEvalTimes.

package robustness

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/katalvlaran/signaltl/formula"
	"github.com/katalvlaran/signaltl/signal"
	"github.com/katalvlaran/signaltl/trace"
)

// Evaluate returns the robustness signal of f over tr. Every channel f
// references must use the same interpolation policy; a formula mixing Hold
// and Linear channels fails with ErrMixedInterpolation.
//
// The output domain is the common domain of the referenced channels, shrunk
// by the lower bounds of nested temporal operators. With WithEvalTimes the
// result holds exactly those times.
//
// Errors (wrapped in *EvalError):
//   - formula.ErrMalformedFormula, formula.ErrMalformedInterval — invalid f.
//   - trace.ErrUnknownChannel — f references a channel missing from tr.
//   - signal.ErrEmptyIntersection — the referenced channels do not overlap.
//   - ErrMixedInterpolation — referenced channels disagree on interpolation.
//   - ErrDomainMismatch — some node has an empty output domain, or an
//     evaluation time lies outside the robustness domain.
func Evaluate(f formula.Formula, tr *trace.Trace, opts ...Option) (*signal.Signal, error) {
	o := gatherOptions(opts...)
	rho, err := evaluate(f, tr, &o)
	o.count(f, err)
	if err != nil {
		return nil, err
	}

	return rho, nil
}

// At returns the robustness of f over tr at time t.
func At(f formula.Formula, tr *trace.Trace, t float64, opts ...Option) (float64, error) {
	rho, err := Evaluate(f, tr, opts...)
	if err != nil {
		return 0, err
	}
	v, err := rho.ValueAt(t)
	if err != nil {
		return 0, &EvalError{Node: f, Op: "at", Time: &t, Err: fmt.Errorf("%w: %w", ErrDomainMismatch, err)}
	}

	return v, nil
}

// Compute builds a trace from channels and evaluates f over it. It is the
// one-call entry point for callers holding plain signals.
func Compute(f formula.Formula, channels map[string]*signal.Signal, opts ...Option) (*signal.Signal, error) {
	tr, err := trace.New(channels)
	if err != nil {
		return nil, &EvalError{Node: f, Op: "trace", Err: err}
	}

	return Evaluate(f, tr, opts...)
}

func evaluate(f formula.Formula, tr *trace.Trace, o *Options) (*signal.Signal, error) {
	if err := formula.Validate(f); err != nil {
		var ne *formula.NodeError
		if errors.As(err, &ne) {
			return nil, &EvalError{Node: ne.Node, Op: "validate", Err: err}
		}

		return nil, &EvalError{Node: f, Op: "validate", Err: err}
	}
	if tr == nil {
		return nil, &EvalError{Node: f, Op: "trace", Err: fmt.Errorf("%w: nil trace", signal.ErrInvalidSignal)}
	}

	sync, policy, err := selectChannels(f, tr)
	if err != nil {
		return nil, &EvalError{Node: f, Op: "synchronize", Err: err}
	}
	t0, tN, err := sync.Domain()
	if err != nil {
		return nil, &EvalError{Node: f, Op: "synchronize", Err: err}
	}

	ev := &evaluator{
		trace:  sync,
		begin:  t0,
		end:    tN,
		bound:  o.constBound,
		interp: policy,
		memo:   make(map[formula.Formula]*signal.Signal),
		log:    o.logger,
	}
	rho, err := ev.eval(f)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("robustness evaluated",
		slog.String("formula", f.String()),
		slog.Int("nodes", len(ev.memo)),
		slog.Int("samples", rho.Len()))

	if o.evalTimes == nil {
		return rho, nil
	}
	out := make([]signal.Sample, len(o.evalTimes))
	for i, t := range o.evalTimes {
		v, err := rho.ValueAt(t)
		if err != nil {
			return nil, &EvalError{Node: f, Op: "resample", Time: &t, Err: fmt.Errorf("%w: %w", ErrDomainMismatch, err)}
		}
		out[i] = signal.Sample{Time: t, Value: v}
	}

	return signal.New(out, rho.Interpolation())
}

// selectChannels synchronizes the channels f needs and returns their common
// interpolation policy.
func selectChannels(f formula.Formula, tr *trace.Trace) (*trace.Trace, signal.Interpolation, error) {
	names := formula.Channels(f)
	if len(names) == 0 {
		names = tr.Names()
	}
	if len(names) == 0 {
		return nil, 0, fmt.Errorf("%w: trace has no channels", signal.ErrInvalidSignal)
	}
	var policy signal.Interpolation
	for i, name := range names {
		s, err := tr.Get(name)
		if err != nil {
			return nil, 0, err
		}
		if i == 0 {
			policy = s.Interpolation()
		} else if s.Interpolation() != policy {
			return nil, 0, fmt.Errorf("%w: %q is %v, %q is %v",
				ErrMixedInterpolation, names[0], policy, name, s.Interpolation())
		}
	}

	sync, err := tr.Synchronize(names...)

	return sync, policy, err
}

// evaluator holds the state of one evaluation call.
type evaluator struct {
	trace      *trace.Trace
	begin, end float64
	bound      float64
	interp     signal.Interpolation
	memo       map[formula.Formula]*signal.Signal
	log        *slog.Logger
}

func (ev *evaluator) eval(f formula.Formula) (*signal.Signal, error) {
	if rho, ok := ev.memo[f]; ok {
		return rho, nil
	}
	rho, err := ev.node(f)
	if err != nil {
		return nil, wrapNode(f, "eval", err)
	}
	ev.memo[f] = rho
	ev.log.Debug("node evaluated",
		slog.String("kind", f.Kind().String()),
		slog.Int("samples", rho.Len()),
		slog.Float64("end", rho.End()))

	return rho, nil
}

func (ev *evaluator) node(f formula.Formula) (*signal.Signal, error) {
	switch n := f.(type) {
	case *formula.ConstExpr:
		v := ev.bound
		if !n.Value() {
			v = -v
		}

		return signal.Const(ev.begin, ev.end, v, ev.interp)

	case *formula.PredicateExpr:
		return predicate(n, ev.trace)

	case *formula.NotExpr:
		rho, err := ev.eval(n.Arg())
		if err != nil {
			return nil, err
		}

		return rho.Negate(), nil

	case *formula.AndExpr:
		sigs, err := ev.evalAll(n.Args())
		if err != nil {
			return nil, err
		}

		return pointwiseMin(sigs...)

	case *formula.OrExpr:
		sigs, err := ev.evalAll(n.Args())
		if err != nil {
			return nil, err
		}

		return pointwiseMax(sigs...)

	case *formula.AlwaysExpr:
		rho, err := ev.eval(n.Arg())
		if err != nil {
			return nil, err
		}
		iv := n.Interval()

		return windowMin(rho, iv.Lo(), iv.Hi())

	case *formula.EventuallyExpr:
		rho, err := ev.eval(n.Arg())
		if err != nil {
			return nil, err
		}
		iv := n.Interval()

		return windowMax(rho, iv.Lo(), iv.Hi())

	case *formula.UntilExpr:
		left, err := ev.eval(n.Left())
		if err != nil {
			return nil, err
		}
		right, err := ev.eval(n.Right())
		if err != nil {
			return nil, err
		}
		iv := n.Interval()

		return until(left, right, iv.Lo(), iv.Hi())
	}

	return nil, fmt.Errorf("%w: unsupported node %T", formula.ErrMalformedFormula, f)
}

func (ev *evaluator) evalAll(args []formula.Formula) ([]*signal.Signal, error) {
	out := make([]*signal.Signal, len(args))
	for i, a := range args {
		rho, err := ev.eval(a)
		if err != nil {
			return nil, err
		}
		out[i] = rho
	}

	return out, nil
}

// evalCounters caches the evaluation counter per meter provider.
var evalCounters sync.Map // metric.MeterProvider → metric.Int64Counter

// counter returns the evaluation counter of o's meter provider, creating it
// on first use. Providers of non-comparable types are not cached.
func (o *Options) counter() (metric.Int64Counter, error) {
	mp := o.meterProvider
	cacheable := reflect.TypeOf(mp).Comparable()
	if cacheable {
		if c, ok := evalCounters.Load(mp); ok {
			return c.(metric.Int64Counter), nil
		}
	}
	c, err := mp.Meter(instrumentationName).Int64Counter(
		"signaltl.robustness.evaluations",
		metric.WithDescription("Robustness evaluations by root operator and outcome."),
	)
	if err != nil {
		return nil, err
	}
	if cacheable {
		actual, _ := evalCounters.LoadOrStore(mp, c)
		c = actual.(metric.Int64Counter)
	}

	return c, nil
}

// count records one evaluation outcome on the configured meter.
func (o *Options) count(f formula.Formula, err error) {
	counter, cerr := o.counter()
	if cerr != nil {
		o.logger.Warn("evaluation counter unavailable", slog.String("error", cerr.Error()))

		return
	}
	kind := "<nil>"
	if f != nil {
		kind = f.Kind().String()
	}
	counter.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.Bool("ok", err == nil),
	))
}
