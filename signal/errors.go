// SPDX-License-Identifier: MIT
// Package signal: sentinel error set.
// All constructors and queries return these sentinels (wrapped with context
// via %w); callers branch with errors.Is. Nothing in this package panics on
// user input.

package signal

import "errors"

var (
	// ErrInvalidSignal is returned when a sample sequence is empty, its times
	// are not strictly increasing or not finite, a value is NaN, or the
	// times/values slices differ in length.
	ErrInvalidSignal = errors.New("signal: invalid signal")

	// ErrOutOfDomain indicates a query time outside [t_first, t_last].
	ErrOutOfDomain = errors.New("signal: time out of domain")

	// ErrEmptyIntersection is returned by Synchronize when the input signals
	// share no common time domain.
	ErrEmptyIntersection = errors.New("signal: empty domain intersection")
)
