// SPDX-License-Identifier: MIT
// Package: signaltl/builder
//
// validators.go — parameter checks shared by the generators.

package builder

import "math"

// validateMin ensures got ≥ min, reporting ErrBadSize otherwise.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrBadSize, "length must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validateFinite rejects NaN and ±Inf parameters.
func validateFinite(method, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return builderErrorf(method, ErrOptionViolation, "%s must be finite, got %v", name, v)
	}

	return nil
}
