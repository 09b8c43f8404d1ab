// SPDX-License-Identifier: MIT
// Package: signaltl/robustness
//
// combine.go — pointwise min/max of several robustness signals (And, Or).

package robustness

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/signaltl/signal"
)

// align synchronizes the operands of an n-ary node. An empty overlap is a
// domain mismatch of that node.
func align(sigs ...*signal.Signal) ([]*signal.Signal, []float64, error) {
	aligned, times, err := signal.Synchronize(sigs...)
	if errors.Is(err, signal.ErrEmptyIntersection) {
		return nil, nil, fmt.Errorf("%w: %w", ErrDomainMismatch, err)
	}

	return aligned, times, err
}

// withCrossings returns times extended by every pairwise crossing of the
// aligned linear signals inside each segment. Hold signals need none.
func withCrossings(aligned []*signal.Signal, times []float64) []float64 {
	if len(times) < 2 || len(aligned) < 2 || aligned[0].Interpolation() != signal.Linear {
		return times
	}
	pieces := make([]piece, len(aligned))
	var extra []float64
	for k := 0; k+1 < len(times); k++ {
		for i, s := range aligned {
			pieces[i] = piece{vp: s.At(k).Value, vq: s.At(k + 1).Value}
		}
		extra = append(extra, crossings(times[k], times[k+1], pieces...)...)
	}
	if len(extra) == 0 {
		return times
	}

	return normalizeTimes(append(append([]float64(nil), times...), extra...), times[0], times[len(times)-1])
}

// pointwise folds the operands with pick (math.Min or math.Max) on their
// common domain, inserting crossing times for linear signals.
//
// Errors:
//   - ErrDomainMismatch — the operand domains do not overlap.
func pointwise(pick func(a, b float64) float64, sigs ...*signal.Signal) (*signal.Signal, error) {
	if len(sigs) == 1 {
		return sigs[0], nil
	}
	aligned, times, err := align(sigs...)
	if err != nil {
		return nil, err
	}
	times = withCrossings(aligned, times)

	out := make([]signal.Sample, len(times))
	for i, t := range times {
		v := aligned[0].Eval(t)
		for _, s := range aligned[1:] {
			v = pick(v, s.Eval(t))
		}
		out[i] = signal.Sample{Time: t, Value: v}
	}

	return signal.New(out, aligned[0].Interpolation())
}

func pointwiseMin(sigs ...*signal.Signal) (*signal.Signal, error) {
	return pointwise(math.Min, sigs...)
}

func pointwiseMax(sigs ...*signal.Signal) (*signal.Signal, error) {
	return pointwise(math.Max, sigs...)
}
