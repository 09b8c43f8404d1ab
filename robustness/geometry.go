// SPDX-License-Identifier: MIT
// Package: signaltl/robustness
//
// geometry.go — exact breakpoint arithmetic for piecewise-linear signals.
//
// Every operator that takes a min or max of linear pieces (And, Or, windows,
// Until, equality predicates) produces kinks where two pieces cross. Those
// crossing times are computed here and inserted as samples, so the output is
// again exactly representable with linear interpolation.

package robustness

import (
	"math"
	"sort"
)

// timeULPs is the number of units in the last place under which two
// candidate times are treated as one instant. It absorbs rounding of
// expressions like (τ-a)+a. The tolerance scales with the magnitude of the
// times compared, never with a fixed time unit.
const timeULPs = 16

// timeTol returns the merge tolerance for times of magnitude up to scale.
func timeTol(scale float64) float64 {
	scale = math.Abs(scale)

	return timeULPs * (math.Nextafter(scale, math.Inf(1)) - scale)
}

// nearTimes reports whether a and b are within tol of each other.
func nearTimes(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// normalizeTimes clips ts to [lo, hi], sorts, removes near-duplicates and
// guarantees lo and hi themselves are present exactly.
func normalizeTimes(ts []float64, lo, hi float64) []float64 {
	if lo == hi {
		return []float64{lo}
	}
	tol := timeTol(math.Max(math.Abs(lo), math.Abs(hi)))
	sort.Float64s(ts)
	out := make([]float64, 0, len(ts)+2)
	out = append(out, lo)
	for _, t := range ts {
		if t <= lo || t >= hi || nearTimes(t, out[len(out)-1], tol) {
			continue
		}
		out = append(out, t)
	}
	if len(out) > 1 && nearTimes(out[len(out)-1], hi, tol) {
		out[len(out)-1] = hi
	} else {
		out = append(out, hi)
	}

	return out
}

// snapTime returns the element of sorted times nearest to t when it lies
// within a few ULPs of t, and t otherwise.
func snapTime(times []float64, t float64) float64 {
	if len(times) == 0 {
		return t
	}
	scale := math.Max(math.Abs(t), math.Max(math.Abs(times[0]), math.Abs(times[len(times)-1])))
	tol := timeTol(scale)
	i := sort.SearchFloat64s(times, t)
	if i < len(times) && nearTimes(times[i], t, tol) {
		return times[i]
	}
	if i > 0 && nearTimes(times[i-1], t, tol) {
		return times[i-1]
	}

	return t
}

// sparseMin answers range-minimum queries over a fixed value slice in O(1)
// after O(n log n) preprocessing.
type sparseMin struct {
	levels [][]float64
}

func newSparseMin(values []float64) *sparseMin {
	n := len(values)
	base := make([]float64, n)
	copy(base, values)
	levels := [][]float64{base}
	for w := 1; 2*w <= n; w *= 2 {
		prev := levels[len(levels)-1]
		next := make([]float64, n-2*w+1)
		for i := range next {
			next[i] = math.Min(prev[i], prev[i+w])
		}
		levels = append(levels, next)
	}

	return &sparseMin{levels: levels}
}

// query returns min(values[i..j]) inclusive, or +Inf for an empty range.
func (s *sparseMin) query(i, j int) float64 {
	if i > j {
		return math.Inf(1)
	}
	k := 0
	for (2 << k) <= j-i+1 {
		k++
	}

	return math.Min(s.levels[k][i], s.levels[k][j-(1<<k)+1])
}
