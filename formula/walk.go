// SPDX-License-Identifier: MIT
// Package: signaltl/formula
//
// walk.go — traversal, introspection and validation.

package formula

import (
	"fmt"
	"math"
	"sort"
)

// Children returns the direct operands of f in evaluation order.
func Children(f Formula) []Formula {
	switch n := f.(type) {
	case *NotExpr:
		return []Formula{n.arg}
	case *AndExpr:
		return cloneArgs(n.args)
	case *OrExpr:
		return cloneArgs(n.args)
	case *AlwaysExpr:
		return []Formula{n.arg}
	case *EventuallyExpr:
		return []Formula{n.arg}
	case *UntilExpr:
		return []Formula{n.left, n.right}
	}

	return nil
}

// Walk visits f and its descendants in pre-order. Returning false from fn
// skips the children of the current node. Nil children are passed to fn.
func Walk(f Formula, fn func(Formula) bool) {
	if !fn(f) || f == nil {
		return
	}
	for _, c := range Children(f) {
		Walk(c, fn)
	}
}

// Channels returns the sorted set of channel names referenced by f,
// including right-hand channels of channel-to-channel predicates.
func Channels(f Formula) []string {
	seen := make(map[string]struct{})
	Walk(f, func(n Formula) bool {
		if p, ok := n.(*PredicateExpr); ok {
			seen[p.channel] = struct{}{}
			if p.ref != "" {
				seen[p.ref] = struct{}{}
			}
		}

		return true
	})
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Depth returns the height of the tree; a leaf has depth 1.
func Depth(f Formula) int {
	if f == nil {
		return 0
	}
	d := 0
	for _, c := range Children(f) {
		d = max(d, Depth(c))
	}

	return d + 1
}

// Equal reports structural equality of two trees.
func Equal(a, b Formula) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case *ConstExpr:
		return x.value == b.(*ConstExpr).value
	case *PredicateExpr:
		y := b.(*PredicateExpr)

		return x.channel == y.channel && x.rel == y.rel && x.ref == y.ref &&
			(x.ref != "" || x.threshold == y.threshold)
	case *AlwaysExpr:
		if x.interval != b.(*AlwaysExpr).interval {
			return false
		}
	case *EventuallyExpr:
		if x.interval != b.(*EventuallyExpr).interval {
			return false
		}
	case *UntilExpr:
		if x.interval != b.(*UntilExpr).interval {
			return false
		}
	}
	ca, cb := Children(a), Children(b)
	if len(ca) != len(cb) {
		return false
	}
	for i := range ca {
		if !Equal(ca[i], cb[i]) {
			return false
		}
	}

	return true
}

// Validate checks the whole tree and returns a *NodeError for the first
// offending node in pre-order, or nil.
//
// Errors (wrapped in *NodeError):
//   - ErrMalformedFormula  — nil node, empty channel, non-finite threshold,
//     unknown relation, And/Or without operands.
//   - ErrMalformedInterval — invalid temporal bounds.
func Validate(f Formula) error {
	var found error
	Walk(f, func(n Formula) bool {
		if found != nil {
			return false
		}
		if err := validateNode(n); err != nil {
			found = &NodeError{Node: n, Err: err}

			return false
		}

		return true
	})

	return found
}

func validateNode(f Formula) error {
	switch n := f.(type) {
	case nil:
		return fmt.Errorf("%w: nil node", ErrMalformedFormula)
	case *ConstExpr:
		if n == nil {
			return fmt.Errorf("%w: nil node", ErrMalformedFormula)
		}
	case *PredicateExpr:
		switch {
		case n == nil:
			return fmt.Errorf("%w: nil node", ErrMalformedFormula)
		case n.channel == "":
			return fmt.Errorf("%w: empty channel name", ErrMalformedFormula)
		case !n.rel.valid():
			return fmt.Errorf("%w: unknown relation %d", ErrMalformedFormula, uint8(n.rel))
		case n.ref == "" && (math.IsNaN(n.threshold) || math.IsInf(n.threshold, 0)):
			return fmt.Errorf("%w: threshold %v is not finite", ErrMalformedFormula, n.threshold)
		}
	case *NotExpr:
		if n == nil {
			return fmt.Errorf("%w: nil node", ErrMalformedFormula)
		}
	case *AndExpr:
		if n == nil || len(n.args) == 0 {
			return fmt.Errorf("%w: And without operands", ErrMalformedFormula)
		}
	case *OrExpr:
		if n == nil || len(n.args) == 0 {
			return fmt.Errorf("%w: Or without operands", ErrMalformedFormula)
		}
	case *AlwaysExpr:
		if n == nil {
			return fmt.Errorf("%w: nil node", ErrMalformedFormula)
		}

		return n.interval.Validate()
	case *EventuallyExpr:
		if n == nil {
			return fmt.Errorf("%w: nil node", ErrMalformedFormula)
		}

		return n.interval.Validate()
	case *UntilExpr:
		if n == nil {
			return fmt.Errorf("%w: nil node", ErrMalformedFormula)
		}

		return n.interval.Validate()
	}

	return nil
}
