// SPDX-License-Identifier: MIT
// Package: signaltl/robustness
//
// predicate.go — robustness of atomic comparisons.
//
//	x <  c, x <= c  →  c - x
//	x >  c, x >= c  →  x - c
//	x == c          →  -|x - c|
//
// Strict and non-strict relations share robustness; they differ only on the
// measure-zero boundary where robustness is 0. A channel reference replaces
// c pointwise. For linear signals the kink of |x - c| at each zero crossing
// becomes a sample.

package robustness

import (
	"fmt"
	"math"

	"github.com/katalvlaran/signaltl/formula"
	"github.com/katalvlaran/signaltl/signal"
	"github.com/katalvlaran/signaltl/trace"
)

// predicate evaluates p over a synchronized trace.
func predicate(p *formula.PredicateExpr, tr *trace.Trace) (*signal.Signal, error) {
	x, err := tr.Get(p.Channel())
	if err != nil {
		return nil, err
	}
	var ref *signal.Signal
	if p.Ref() != "" {
		if ref, err = tr.Get(p.Ref()); err != nil {
			return nil, err
		}
	}
	diff := func(t float64) float64 {
		if ref != nil {
			return x.Eval(t) - ref.Eval(t)
		}

		return x.Eval(t) - p.Threshold()
	}

	times := x.Times()
	if ref != nil {
		times = signal.MergeTimes(x.Begin(), x.End(), x, ref)
	}

	var score func(d float64) float64
	switch p.Relation() {
	case formula.LT, formula.LE:
		score = func(d float64) float64 { return -d }
	case formula.GT, formula.GE:
		score = func(d float64) float64 { return d }
	case formula.EQ:
		score = func(d float64) float64 { return -math.Abs(d) }
		if x.Interpolation() == signal.Linear {
			times = withZeros(times, diff)
		}
	default:
		return nil, fmt.Errorf("%w: unknown relation %v", formula.ErrMalformedFormula, p.Relation())
	}

	out := make([]signal.Sample, len(times))
	for i, t := range times {
		out[i] = signal.Sample{Time: t, Value: score(diff(t))}
	}

	return signal.New(out, x.Interpolation())
}

// withZeros inserts the zero crossings of the linear function d between
// consecutive times.
func withZeros(times []float64, d func(float64) float64) []float64 {
	var extra []float64
	for k := 0; k+1 < len(times); k++ {
		p, q := times[k], times[k+1]
		extra = append(extra, crossings(p, q, piece{vp: d(p), vq: d(q)}, flat(0))...)
	}
	if len(extra) == 0 {
		return times
	}

	return normalizeTimes(append(append([]float64(nil), times...), extra...), times[0], times[len(times)-1])
}
