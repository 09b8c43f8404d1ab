// SPDX-License-Identifier: MIT
// Package signal defines the sample and interpolation types.

package signal

import (
	"fmt"
	"strconv"
)

// Sample is a single (time, value) pair. Samples are plain values and are
// copied, never shared.
type Sample struct {
	Time  float64
	Value float64
}

// String renders the sample as "(t, v)".
func (s Sample) String() string {
	return "(" + formatFloat(s.Time) + ", " + formatFloat(s.Value) + ")"
}

// Interpolation selects how a Signal is valued between two samples.
//
//   - Hold   — piecewise constant and right-continuous. The value on
//     [t_i, t_{i+1}) is v_i; the value at t_last is v_last.
//
//   - Linear — piecewise linear between consecutive samples.
type Interpolation int

const (
	// Linear interpolation between consecutive samples (default).
	Linear Interpolation = iota

	// Hold keeps the last sample value until the next sample.
	Hold
)

// String returns "linear" or "hold".
func (p Interpolation) String() string {
	switch p {
	case Linear:
		return "linear"
	case Hold:
		return "hold"
	default:
		return fmt.Sprintf("interpolation(%d)", int(p))
	}
}

// valid reports whether p is one of the declared policies.
func (p Interpolation) valid() bool {
	return p == Linear || p == Hold
}

// formatFloat renders v with the shortest exact representation.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
