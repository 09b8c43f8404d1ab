// SPDX-License-Identifier: MIT
// Package formula: sentinel error set and the node-carrying validation error.

package formula

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInterval indicates a temporal interval with a < 0, a > b,
	// or a NaN bound.
	ErrMalformedInterval = errors.New("formula: malformed interval")

	// ErrMalformedFormula indicates a structurally invalid tree: nil child,
	// empty channel name, non-finite threshold, unknown relation, or an
	// And/Or node without operands.
	ErrMalformedFormula = errors.New("formula: malformed formula")
)

// NodeError reports the node that failed validation. Unwrap exposes the
// sentinel so errors.Is keeps working.
type NodeError struct {
	Node Formula
	Err  error
}

// Error renders "<err> at <node>".
func (e *NodeError) Error() string {
	if e.Node == nil {
		return fmt.Sprintf("%v at <nil>", e.Err)
	}

	return fmt.Sprintf("%v at %s", e.Err, e.Node)
}

// Unwrap returns the wrapped sentinel.
func (e *NodeError) Unwrap() error { return e.Err }
