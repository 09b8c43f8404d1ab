// SPDX-License-Identifier: MIT
// Package: signaltl/signal
//
// synchronize.go — alignment of N signals on a shared time basis.
//
// Algorithm:
//  1. Overlap: begin = max t_first, end = min t_last. begin > end ⇒ ErrEmptyIntersection.
//  2. Basis: sorted union of every input time inside [begin, end], plus begin
//     and end themselves (they may fall between samples of some input).
//  3. Values: each output is its own input evaluated on the basis under its
//     own interpolation policy; nothing is copied across signals.
//
// Complexity: O(N log N) time, O(K·M) memory for K signals on an M-point basis.

package signal

import (
	"fmt"
	"math"
	"sort"
)

// Synchronize aligns signals on the sorted union of their timestamps
// intersected with the common overlap [max t_first, min t_last]. It returns
// one output per input, in input order, plus the merged timestamp sequence.
//
// Synchronizing a single signal returns a signal with the same samples.
//
// Errors:
//   - ErrInvalidSignal     — no signals, or a nil signal.
//   - ErrEmptyIntersection — the domains do not overlap.
func Synchronize(signals ...*Signal) ([]*Signal, []float64, error) {
	if len(signals) == 0 {
		return nil, nil, fmt.Errorf("%w: nothing to synchronize", ErrInvalidSignal)
	}
	begin, end := math.Inf(-1), math.Inf(1)
	for i, s := range signals {
		if s == nil {
			return nil, nil, fmt.Errorf("%w: signal %d is nil", ErrInvalidSignal, i)
		}
		begin = math.Max(begin, s.Begin())
		end = math.Min(end, s.End())
	}
	if begin > end {
		return nil, nil, fmt.Errorf("%w: overlap [%v, %v] is empty", ErrEmptyIntersection, begin, end)
	}

	times := MergeTimes(begin, end, signals...)
	out := make([]*Signal, len(signals))
	for k, s := range signals {
		samples := make([]Sample, len(times))
		for i, t := range times {
			samples[i] = Sample{Time: t, Value: s.Eval(t)}
		}
		out[k] = &Signal{samples: samples, interp: s.interp}
	}

	return out, times, nil
}

// MergeTimes returns the sorted, de-duplicated union of the sample times of
// signals that fall inside [begin, end], always including begin and end.
// The caller guarantees begin <= end.
func MergeTimes(begin, end float64, signals ...*Signal) []float64 {
	total := 2
	for _, s := range signals {
		total += s.Len()
	}
	times := make([]float64, 0, total)
	times = append(times, begin, end)
	for _, s := range signals {
		for _, smp := range s.samples {
			if smp.Time > begin && smp.Time < end {
				times = append(times, smp.Time)
			}
		}
	}
	sort.Float64s(times)

	// Exact de-duplication only; the inputs are already strictly increasing.
	w := 1
	for r := 1; r < len(times); r++ {
		if times[r] != times[w-1] {
			times[w] = times[r]
			w++
		}
	}

	return times[:w]
}
