// SPDX-License-Identifier: MIT
// Package robustness: sentinel errors and the node-carrying evaluation error.

package robustness

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/signaltl/formula"
)

var (
	// ErrDomainMismatch indicates that a node's output domain is empty: the
	// operands do not overlap, a temporal lower bound exceeds the trace
	// length, or an evaluation time lies outside the robustness domain.
	ErrDomainMismatch = errors.New("robustness: domain mismatch")

	// ErrMixedInterpolation indicates that the channels referenced by one
	// evaluation do not share a single interpolation policy.
	ErrMixedInterpolation = errors.New("robustness: mixed interpolation policies")
)

// EvalError reports the node at which evaluation failed. Window and Time are
// set when the failure concerns a temporal window or a query time.
// Unwrap exposes the underlying sentinel for errors.Is.
type EvalError struct {
	Node   formula.Formula
	Op     string
	Window *formula.Interval
	Time   *float64
	Err    error
}

// Error renders "robustness: <op> <node> [window I] [at t=…]: <err>".
func (e *EvalError) Error() string {
	var b strings.Builder
	b.WriteString("robustness: ")
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteByte(' ')
	}
	if e.Node != nil {
		b.WriteString(e.Node.String())
	} else {
		b.WriteString("<nil>")
	}
	if e.Window != nil {
		b.WriteString(" window ")
		b.WriteString(e.Window.String())
	}
	if e.Time != nil {
		b.WriteString(" at t=")
		b.WriteString(strconv.FormatFloat(*e.Time, 'g', -1, 64))
	}
	fmt.Fprintf(&b, ": %v", e.Err)

	return b.String()
}

// Unwrap returns the wrapped error.
func (e *EvalError) Unwrap() error { return e.Err }

// wrapNode attaches node context to err unless a deeper *EvalError already
// carries it.
func wrapNode(n formula.Formula, op string, err error) error {
	if err == nil {
		return nil
	}
	var ee *EvalError
	if errors.As(err, &ee) {
		return err
	}
	out := &EvalError{Node: n, Op: op, Err: err}
	if w, ok := windowOf(n); ok {
		out.Window = &w
	}

	return out
}

// windowOf returns the interval of a temporal node.
func windowOf(n formula.Formula) (formula.Interval, bool) {
	switch x := n.(type) {
	case *formula.AlwaysExpr:
		return x.Interval(), true
	case *formula.EventuallyExpr:
		return x.Interval(), true
	case *formula.UntilExpr:
		return x.Interval(), true
	}

	return formula.Interval{}, false
}
