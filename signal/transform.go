// SPDX-License-Identifier: MIT
// Package: signaltl/signal
//
// transform.go — derived signals. Every function returns a new *Signal and
// leaves the receiver untouched.

package signal

import (
	"fmt"
	"math"
)

// simplifyRelTol is the relative tolerance Simplify uses to decide that a
// linear sample lies on the segment joining its neighbours.
const simplifyRelTol = 1e-12

// Restrict returns s confined to [start, end] ∩ [t_first, t_last]. Samples
// outside are dropped; the new ends are interpolated when they fall between
// samples.
//
// Errors:
//   - ErrOutOfDomain — the requested range does not meet the domain, or
//     start > end, or a bound is NaN.
func (s *Signal) Restrict(start, end float64) (*Signal, error) {
	if math.IsNaN(start) || math.IsNaN(end) || start > end {
		return nil, fmt.Errorf("%w: bad range [%v, %v]", ErrOutOfDomain, start, end)
	}
	lo := math.Max(start, s.Begin())
	hi := math.Min(end, s.End())
	if lo > hi {
		return nil, fmt.Errorf("%w: [%v, %v] misses [%v, %v]", ErrOutOfDomain, start, end, s.Begin(), s.End())
	}
	if lo == s.Begin() && hi == s.End() {
		return s, nil
	}

	out := make([]Sample, 0, len(s.samples)+2)
	out = append(out, Sample{Time: lo, Value: s.Eval(lo)})
	for _, smp := range s.samples {
		if smp.Time > lo && smp.Time < hi {
			out = append(out, smp)
		}
	}
	if hi > lo {
		out = append(out, Sample{Time: hi, Value: s.Eval(hi)})
	}

	return New(out, s.interp)
}

// Shift returns s with every time moved by dt.
//
// Errors:
//   - ErrInvalidSignal — dt is not finite, or the shift collapses two
//     neighbouring times through rounding.
func (s *Signal) Shift(dt float64) (*Signal, error) {
	if math.IsNaN(dt) || math.IsInf(dt, 0) {
		return nil, fmt.Errorf("%w: shift by %v", ErrInvalidSignal, dt)
	}
	if dt == 0 {
		return s, nil
	}
	out := make([]Sample, len(s.samples))
	for i, smp := range s.samples {
		out[i] = Sample{Time: smp.Time + dt, Value: smp.Value}
	}

	return New(out, s.interp)
}

// Negate returns the pointwise negation of s. Negation keeps the sample times
// and the policy, so it cannot fail.
func (s *Signal) Negate() *Signal {
	out := make([]Sample, len(s.samples))
	for i, smp := range s.samples {
		out[i] = Sample{Time: smp.Time, Value: -smp.Value}
	}

	return &Signal{samples: out, interp: s.interp}
}

// Simplify drops samples that do not change the shape of s: for Hold, a
// sample repeating the previous value; for Linear, a sample lying on the
// segment joining its kept predecessor and its successor. The first and last
// samples are always kept, so the domain is unchanged.
func (s *Signal) Simplify() *Signal {
	n := len(s.samples)
	if n <= 2 {
		return s
	}
	out := make([]Sample, 0, n)
	out = append(out, s.samples[0])
	for i := 1; i < n-1; i++ {
		prev := out[len(out)-1]
		cur := s.samples[i]
		switch s.interp {
		case Hold:
			if cur.Value == prev.Value {
				continue
			}
		case Linear:
			next := s.samples[i+1]
			if collinear(prev, cur, next) {
				continue
			}
		}
		out = append(out, cur)
	}
	out = append(out, s.samples[n-1])

	return &Signal{samples: out, interp: s.interp}
}

// Resample returns s evaluated at the given times, keeping its policy.
//
// Errors:
//   - ErrInvalidSignal — times is empty or not strictly increasing.
//   - ErrOutOfDomain   — a time lies outside the domain of s.
func (s *Signal) Resample(times []float64) (*Signal, error) {
	if len(times) == 0 {
		return nil, fmt.Errorf("%w: no resample times", ErrInvalidSignal)
	}
	out := make([]Sample, len(times))
	for i, t := range times {
		v, err := s.ValueAt(t)
		if err != nil {
			return nil, err
		}
		out[i] = Sample{Time: t, Value: v}
	}

	return New(out, s.interp)
}

// collinear reports whether b lies on the segment a→c within simplifyRelTol.
func collinear(a, b, c Sample) bool {
	if a.Value == b.Value && b.Value == c.Value {
		return true
	}
	if math.IsInf(a.Value, 0) || math.IsInf(b.Value, 0) || math.IsInf(c.Value, 0) {
		return false
	}
	want := Lerp(a, c, b.Time)
	scale := math.Max(1, math.Max(math.Abs(want), math.Abs(b.Value)))

	return math.Abs(want-b.Value) <= simplifyRelTol*scale
}
