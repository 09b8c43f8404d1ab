// SPDX-License-Identifier: MIT
// Package: signaltl/formula
//
// interval.go — time bounds of temporal operators.

package formula

import (
	"fmt"
	"math"
	"strconv"
)

// Interval is a closed time window [a, b] relative to the evaluation time,
// with 0 ≤ a ≤ b. b = +Inf is the unbounded window [a, ∞), which the engine
// clips at the trace horizon.
//
// The zero value is the degenerate window [0, 0].
type Interval struct {
	lo float64
	hi float64
}

// NewInterval validates and returns [a, b].
//
// Errors:
//   - ErrMalformedInterval — a or b is NaN, a < 0, a = +Inf, or a > b.
func NewInterval(a, b float64) (Interval, error) {
	iv := Interval{lo: a, hi: b}
	if err := iv.Validate(); err != nil {
		return Interval{}, err
	}

	return iv, nil
}

// MustInterval is NewInterval that panics on invalid bounds. Meant for
// literal windows in code, where a bad bound is a programmer error.
func MustInterval(a, b float64) Interval {
	iv, err := NewInterval(a, b)
	if err != nil {
		panic(err)
	}

	return iv
}

// Unbounded returns [a, +Inf). It panics on a < 0 or NaN.
func Unbounded(a float64) Interval {
	return MustInterval(a, math.Inf(1))
}

// Forever returns [0, +Inf).
func Forever() Interval {
	return Interval{lo: 0, hi: math.Inf(1)}
}

// Lo returns a.
func (iv Interval) Lo() float64 { return iv.lo }

// Hi returns b (possibly +Inf).
func (iv Interval) Hi() float64 { return iv.hi }

// IsUnbounded reports b = +Inf.
func (iv Interval) IsUnbounded() bool { return math.IsInf(iv.hi, 1) }

// IsZeroToInf reports whether the interval is [0, +Inf).
func (iv Interval) IsZeroToInf() bool { return iv.lo == 0 && iv.IsUnbounded() }

// IsPoint reports a = b.
func (iv Interval) IsPoint() bool { return iv.lo == iv.hi }

// Validate checks 0 ≤ a ≤ b, finite a, no NaN.
func (iv Interval) Validate() error {
	switch {
	case math.IsNaN(iv.lo) || math.IsNaN(iv.hi):
		return fmt.Errorf("%w: NaN bound", ErrMalformedInterval)
	case iv.lo < 0:
		return fmt.Errorf("%w: lower bound %v < 0", ErrMalformedInterval, iv.lo)
	case math.IsInf(iv.lo, 1):
		return fmt.Errorf("%w: lower bound is +Inf", ErrMalformedInterval)
	case iv.lo > iv.hi:
		return fmt.Errorf("%w: %v > %v", ErrMalformedInterval, iv.lo, iv.hi)
	}

	return nil
}

// String renders "[a,b]" or "[a,inf)".
func (iv Interval) String() string {
	lo := strconv.FormatFloat(iv.lo, 'g', -1, 64)
	if iv.IsUnbounded() {
		return "[" + lo + ",inf)"
	}

	return "[" + lo + "," + strconv.FormatFloat(iv.hi, 'g', -1, 64) + "]"
}
