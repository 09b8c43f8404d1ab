// SPDX-License-Identifier: MIT
// Package: signaltl/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (generator name, offending value) is attached with %w.
//   • Generators never panic; option constructors (WithX) panic on
//     meaningless values.

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates an invalid length for a generated signal
// (n < MinSamples, days < 1).
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrOptionViolation indicates a combination of options that is only
// detectable when a generator resolves them (e.g. a sweep whose end
// frequency is not positive after defaults are applied).
var ErrOptionViolation = errors.New("builder: invalid option value")

// builderErrorf prefixes err with the generator name and a formatted detail,
// keeping err reachable through errors.Is.
func builderErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
