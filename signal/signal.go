// SPDX-License-Identifier: MIT
// Package: signaltl/signal
//
// signal.go — immutable Signal type, construction and point queries.
//
// Contract:
//   • A valid Signal is non-empty, its times are finite and strictly
//     increasing, and no value is NaN. ±Inf values are allowed: robustness
//     signals of constant formulas use them.
//   • Every accessor returns copies; the sample slice never escapes.
//   • ValueAt at an exact sample time returns that sample's value bit-for-bit.

package signal

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Signal is an immutable, non-empty, strictly time-ordered sample sequence
// with a fixed interpolation policy.
type Signal struct {
	samples []Sample
	interp  Interpolation
}

// New validates samples and returns a Signal owning a private copy of them.
//
// Errors:
//   - ErrInvalidSignal — empty input, unknown policy, non-finite or
//     non-increasing times, NaN values.
//
// Complexity: O(n) time and memory.
func New(samples []Sample, interp Interpolation) (*Signal, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: no samples", ErrInvalidSignal)
	}
	if !interp.valid() {
		return nil, fmt.Errorf("%w: unknown interpolation %d", ErrInvalidSignal, int(interp))
	}
	for i, s := range samples {
		if math.IsNaN(s.Time) || math.IsInf(s.Time, 0) {
			return nil, fmt.Errorf("%w: sample %d has non-finite time %v", ErrInvalidSignal, i, s.Time)
		}
		if math.IsNaN(s.Value) {
			return nil, fmt.Errorf("%w: sample %d has NaN value", ErrInvalidSignal, i)
		}
		if i > 0 && s.Time <= samples[i-1].Time {
			return nil, fmt.Errorf("%w: time %v at sample %d does not follow %v",
				ErrInvalidSignal, s.Time, i, samples[i-1].Time)
		}
	}

	own := make([]Sample, len(samples))
	copy(own, samples)

	return &Signal{samples: own, interp: interp}, nil
}

// FromSlices builds a Signal from parallel times and values slices.
func FromSlices(times, values []float64, interp Interpolation) (*Signal, error) {
	if len(times) != len(values) {
		return nil, fmt.Errorf("%w: %d times but %d values", ErrInvalidSignal, len(times), len(values))
	}
	samples := make([]Sample, len(times))
	for i := range times {
		samples[i] = Sample{Time: times[i], Value: values[i]}
	}

	return New(samples, interp)
}

// Const returns the constant signal v over [start, end]. A degenerate domain
// (start == end) yields a single-sample signal.
func Const(start, end, v float64, interp Interpolation) (*Signal, error) {
	if start == end {
		return New([]Sample{{Time: start, Value: v}}, interp)
	}
	if start > end {
		return nil, fmt.Errorf("%w: const domain [%v, %v] is reversed", ErrInvalidSignal, start, end)
	}

	return New([]Sample{{Time: start, Value: v}, {Time: end, Value: v}}, interp)
}

// Len returns the number of samples.
func (s *Signal) Len() int { return len(s.samples) }

// At returns the i-th sample. It panics if i is out of range, like a slice index.
func (s *Signal) At(i int) Sample { return s.samples[i] }

// Interpolation returns the interpolation policy of s.
func (s *Signal) Interpolation() Interpolation { return s.interp }

// Domain returns (t_first, t_last).
func (s *Signal) Domain() (float64, float64) {
	return s.samples[0].Time, s.samples[len(s.samples)-1].Time
}

// Begin returns t_first.
func (s *Signal) Begin() float64 { return s.samples[0].Time }

// End returns t_last.
func (s *Signal) End() float64 { return s.samples[len(s.samples)-1].Time }

// Samples returns a copy of the sample sequence.
func (s *Signal) Samples() []Sample {
	out := make([]Sample, len(s.samples))
	copy(out, s.samples)

	return out
}

// Times returns a copy of the sample times.
func (s *Signal) Times() []float64 {
	out := make([]float64, len(s.samples))
	for i, smp := range s.samples {
		out[i] = smp.Time
	}

	return out
}

// Values returns a copy of the sample values.
func (s *Signal) Values() []float64 {
	out := make([]float64, len(s.samples))
	for i, smp := range s.samples {
		out[i] = smp.Value
	}

	return out
}

// Contains reports whether t lies in [t_first, t_last].
func (s *Signal) Contains(t float64) bool {
	return t >= s.Begin() && t <= s.End()
}

// ValueAt returns the interpolated value at time t.
//
// Errors:
//   - ErrOutOfDomain — t is NaN or outside [t_first, t_last].
//
// Complexity: O(log n).
func (s *Signal) ValueAt(t float64) (float64, error) {
	if math.IsNaN(t) || !s.Contains(t) {
		return 0, fmt.Errorf("%w: t=%v not in [%v, %v]", ErrOutOfDomain, t, s.Begin(), s.End())
	}

	return s.Eval(t), nil
}

// Eval returns the value at t without a domain check. Times before t_first
// evaluate to the first value, times after t_last to the last value. It is
// meant for callers that have already established t lies in the domain.
func (s *Signal) Eval(t float64) float64 {
	n := len(s.samples)
	if t <= s.samples[0].Time {
		return s.samples[0].Value
	}
	if t >= s.samples[n-1].Time {
		return s.samples[n-1].Value
	}
	// i is the first sample strictly after t; i ∈ [1, n-1] here.
	i := sort.Search(n, func(k int) bool { return s.samples[k].Time > t })
	left := s.samples[i-1]
	if left.Time == t || s.interp == Hold {
		return left.Value
	}

	return Lerp(left, s.samples[i], t)
}

// SearchTime returns the index of the first sample with Time >= t, or Len()
// if there is none.
func (s *Signal) SearchTime(t float64) int {
	return sort.Search(len(s.samples), func(k int) bool { return s.samples[k].Time >= t })
}

// Lerp linearly interpolates between p and q at time t. Equal values
// short-circuit so constant ±Inf segments stay well-defined. Strictly inside a
// segment with an infinite end, the result is that infinite value (p's when
// both ends are infinite); at either sample's own time it is that sample's
// value.
func Lerp(p, q Sample, t float64) float64 {
	if p.Value == q.Value || t == p.Time {
		return p.Value
	}
	if t == q.Time {
		return q.Value
	}
	if math.IsInf(p.Value, 0) {
		return p.Value
	}
	if math.IsInf(q.Value, 0) {
		return q.Value
	}
	frac := (t - p.Time) / (q.Time - p.Time)

	return p.Value + (q.Value-p.Value)*frac
}

// String renders the signal as "[(t0, v0), (t1, v1), ...]".
func (s *Signal) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, smp := range s.samples {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(smp.String())
	}
	b.WriteByte(']')

	return b.String()
}
