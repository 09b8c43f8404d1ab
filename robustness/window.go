// SPDX-License-Identifier: MIT
// Package: signaltl/robustness
//
// window.go — sliding-window extrema for Always and Eventually.
//
// For a child signal s on [t0, tN] and a window [a, b]:
//
//	G(t) = min { s(τ) : τ ∈ [t+a, min(t+b, tN)] },   t ∈ [t0, tN-a]
//
// and F is the dual max. An unbounded b clips to tN.
//
// Algorithm (exact, no fixed-step grid):
//  1. Candidates: every child time shifted by -a and by -b, plus the domain
//     ends. Between consecutive candidates the set of child samples strictly
//     inside the window is fixed, and each window end stays in one segment.
//  2. Hold: the output is piecewise constant and right-continuous, so the
//     candidates are already all breakpoints.
//  3. Linear: on each candidate span the value is the min of three lines
//     (s at the left end, s at the right end, the constant interior minimum);
//     their pairwise crossings are added.
//  4. Each output sample is computed directly from the definition, using a
//     sparse table for the interior minimum.
//
// Complexity: O(n log n) time and memory for n child samples.

package robustness

import (
	"fmt"
	"math"

	"github.com/katalvlaran/signaltl/signal"
)

// windowMax returns the sliding-window maximum (Eventually).
func windowMax(s *signal.Signal, a, b float64) (*signal.Signal, error) {
	neg, err := windowMin(s.Negate(), a, b)
	if err != nil {
		return nil, err
	}

	return neg.Negate(), nil
}

// windowMin returns the sliding-window minimum (Always).
//
// Errors:
//   - ErrDomainMismatch — tN - a < t0.
func windowMin(s *signal.Signal, a, b float64) (*signal.Signal, error) {
	t0, tN := s.Domain()
	end := tN - a
	if end < t0 {
		return nil, fmt.Errorf("%w: window lower bound %v exceeds signal length %v", ErrDomainMismatch, a, tN-t0)
	}
	w := newWindow(s, a, b)

	times := s.Times()
	cand := make([]float64, 0, 2*len(times)+2)
	for _, t := range times {
		cand = append(cand, t-a)
		if !w.unbounded {
			cand = append(cand, t-b)
		}
	}
	cand = normalizeTimes(cand, t0, end)

	if s.Interpolation() == signal.Linear && len(cand) > 1 {
		extra := make([]float64, 0, len(cand))
		for k := 0; k+1 < len(cand); k++ {
			p, q := cand[k], cand[k+1]
			mid := p + (q-p)/2
			lower := piece{vp: s.Eval(p + a), vq: s.Eval(q + a)}
			upper := piece{vp: s.Eval(w.hi(p)), vq: s.Eval(w.hi(q))}
			inner := flat(w.interior(mid+a, w.hi(mid)))
			extra = append(extra, crossings(p, q, lower, upper, inner)...)
		}
		if len(extra) > 0 {
			cand = normalizeTimes(append(cand, extra...), t0, end)
		}
	}

	out := make([]signal.Sample, len(cand))
	for i, t := range cand {
		out[i] = signal.Sample{Time: t, Value: w.at(t)}
	}

	return signal.New(out, s.Interpolation())
}

// window evaluates the windowed minimum of one signal at arbitrary times.
type window struct {
	s         *signal.Signal
	a, b      float64
	tN        float64
	unbounded bool
	times     []float64
	rmq       *sparseMin
}

func newWindow(s *signal.Signal, a, b float64) *window {
	return &window{
		s:         s,
		a:         a,
		b:         b,
		tN:        s.End(),
		unbounded: math.IsInf(b, 1),
		times:     s.Times(),
		rmq:       newSparseMin(s.Values()),
	}
}

// hi returns the clipped right end of the window opened at t.
func (w *window) hi(t float64) float64 {
	if w.unbounded {
		return w.tN
	}

	return math.Min(t+w.b, w.tN)
}

// interior returns the minimum over samples strictly inside (lo, hi).
func (w *window) interior(lo, hi float64) float64 {
	i := w.s.SearchTime(lo)
	if i < len(w.times) && w.times[i] == lo {
		i++
	}
	j := w.s.SearchTime(hi) - 1

	return w.rmq.query(i, j)
}

// at returns min over [t+a, hi(t)] of the signal.
func (w *window) at(t float64) float64 {
	lo := snapTime(w.times, t+w.a)
	hi := snapTime(w.times, w.hi(t))
	if lo > hi {
		lo = hi
	}
	v := math.Min(w.s.Eval(lo), w.s.Eval(hi))

	return math.Min(v, w.interior(lo, hi))
}
