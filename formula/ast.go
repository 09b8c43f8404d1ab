// SPDX-License-Identifier: MIT
// Package: signaltl/formula
//
// ast.go — the sealed node set and its plain constructors.
//
// Contract:
//   • Formula is sealed by the unexported isFormula method; the eight node
//     types below are the only implementations.
//   • Nodes are pointers with unexported fields: comparable by identity,
//     usable as map keys, immutable after construction.
//   • Constructors never fail. Structural problems (nil children, bad
//     thresholds, bad intervals built from zero values) surface in Validate,
//     which every evaluator runs before touching a signal.

package formula

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind enumerates the node variants.
type Kind uint8

const (
	KindConst Kind = iota
	KindPredicate
	KindNot
	KindAnd
	KindOr
	KindAlways
	KindEventually
	KindUntil
)

var kindNames = [...]string{
	KindConst:      "Const",
	KindPredicate:  "Predicate",
	KindNot:        "Not",
	KindAnd:        "And",
	KindOr:         "Or",
	KindAlways:     "Always",
	KindEventually: "Eventually",
	KindUntil:      "Until",
}

// String returns the variant name, e.g. "Always".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Formula is an immutable STL expression tree node.
type Formula interface {
	// Kind reports the variant.
	Kind() Kind
	// String renders the subtree in infix notation.
	String() string

	isFormula()
}

// Relation is the comparison operator of a predicate.
type Relation uint8

const (
	LT Relation = iota // x <  c
	LE                 // x <= c
	GT                 // x >  c
	GE                 // x >= c
	EQ                 // x == c
)

var relationSymbols = [...]string{LT: "<", LE: "<=", GT: ">", GE: ">=", EQ: "=="}

// String returns the operator symbol.
func (r Relation) String() string {
	if r.valid() {
		return relationSymbols[r]
	}

	return fmt.Sprintf("Relation(%d)", uint8(r))
}

func (r Relation) valid() bool { return r <= EQ }

// ---------------------------------------------------------------------------
// Node types
// ---------------------------------------------------------------------------

// ConstExpr is the Boolean constant.
type ConstExpr struct{ value bool }

// PredicateExpr compares a channel to a constant threshold or, when ref is
// set, to another channel.
type PredicateExpr struct {
	channel   string
	rel       Relation
	threshold float64
	ref       string
}

// NotExpr is logical negation.
type NotExpr struct{ arg Formula }

// AndExpr is the n-ary conjunction.
type AndExpr struct{ args []Formula }

// OrExpr is the n-ary disjunction.
type OrExpr struct{ args []Formula }

// AlwaysExpr is G_I φ.
type AlwaysExpr struct {
	interval Interval
	arg      Formula
}

// EventuallyExpr is F_I φ.
type EventuallyExpr struct {
	interval Interval
	arg      Formula
}

// UntilExpr is φ U_I ψ.
type UntilExpr struct {
	interval    Interval
	left, right Formula
}

func (*ConstExpr) isFormula()      {}
func (*PredicateExpr) isFormula()  {}
func (*NotExpr) isFormula()        {}
func (*AndExpr) isFormula()        {}
func (*OrExpr) isFormula()         {}
func (*AlwaysExpr) isFormula()     {}
func (*EventuallyExpr) isFormula() {}
func (*UntilExpr) isFormula()      {}

func (*ConstExpr) Kind() Kind      { return KindConst }
func (*PredicateExpr) Kind() Kind  { return KindPredicate }
func (*NotExpr) Kind() Kind        { return KindNot }
func (*AndExpr) Kind() Kind        { return KindAnd }
func (*OrExpr) Kind() Kind         { return KindOr }
func (*AlwaysExpr) Kind() Kind     { return KindAlways }
func (*EventuallyExpr) Kind() Kind { return KindEventually }
func (*UntilExpr) Kind() Kind      { return KindUntil }

// Value returns the constant.
func (c *ConstExpr) Value() bool { return c.value }

// Channel returns the left-hand channel name.
func (p *PredicateExpr) Channel() string { return p.channel }

// Relation returns the comparison operator.
func (p *PredicateExpr) Relation() Relation { return p.rel }

// Threshold returns the constant right-hand side (meaningless when Ref is set).
func (p *PredicateExpr) Threshold() float64 { return p.threshold }

// Ref returns the right-hand channel name, or "" for a constant threshold.
func (p *PredicateExpr) Ref() string { return p.ref }

// Arg returns the negated operand.
func (n *NotExpr) Arg() Formula { return n.arg }

// Args returns a copy of the operands.
func (a *AndExpr) Args() []Formula { return cloneArgs(a.args) }

// Args returns a copy of the operands.
func (o *OrExpr) Args() []Formula { return cloneArgs(o.args) }

// Interval returns the time window.
func (a *AlwaysExpr) Interval() Interval { return a.interval }

// Arg returns the operand.
func (a *AlwaysExpr) Arg() Formula { return a.arg }

// Interval returns the time window.
func (e *EventuallyExpr) Interval() Interval { return e.interval }

// Arg returns the operand.
func (e *EventuallyExpr) Arg() Formula { return e.arg }

// Interval returns the time window.
func (u *UntilExpr) Interval() Interval { return u.interval }

// Left returns φ of φ U ψ.
func (u *UntilExpr) Left() Formula { return u.left }

// Right returns ψ of φ U ψ.
func (u *UntilExpr) Right() Formula { return u.right }

// ---------------------------------------------------------------------------
// Plain constructors
// ---------------------------------------------------------------------------

// Const returns the Boolean constant b.
func Const(b bool) Formula { return &ConstExpr{value: b} }

// Predicate returns "channel rel threshold".
func Predicate(channel string, rel Relation, threshold float64) Formula {
	return &PredicateExpr{channel: channel, rel: rel, threshold: threshold}
}

// Compare returns "channel rel ref" where ref is another channel.
func Compare(channel string, rel Relation, ref string) Formula {
	return &PredicateExpr{channel: channel, rel: rel, ref: ref}
}

// Not returns ¬φ.
func Not(arg Formula) Formula { return &NotExpr{arg: arg} }

// And returns the conjunction of args. No operands yield Const(true); a
// single operand is returned as is.
func And(args ...Formula) Formula {
	switch len(args) {
	case 0:
		return Const(true)
	case 1:
		return args[0]
	}

	return &AndExpr{args: cloneArgs(args)}
}

// Or returns the disjunction of args. No operands yield Const(false); a
// single operand is returned as is.
func Or(args ...Formula) Formula {
	switch len(args) {
	case 0:
		return Const(false)
	case 1:
		return args[0]
	}

	return &OrExpr{args: cloneArgs(args)}
}

// Always returns G_iv φ.
func Always(iv Interval, arg Formula) Formula { return &AlwaysExpr{interval: iv, arg: arg} }

// Eventually returns F_iv φ.
func Eventually(iv Interval, arg Formula) Formula { return &EventuallyExpr{interval: iv, arg: arg} }

// Until returns left U_iv right.
func Until(iv Interval, left, right Formula) Formula {
	return &UntilExpr{interval: iv, left: left, right: right}
}

// Var names a channel for fluent predicate construction:
//
//	formula.Var("x").LE(2) // x <= 2
type Var string

// LT returns "v < c".
func (v Var) LT(c float64) Formula { return Predicate(string(v), LT, c) }

// LE returns "v <= c".
func (v Var) LE(c float64) Formula { return Predicate(string(v), LE, c) }

// GT returns "v > c".
func (v Var) GT(c float64) Formula { return Predicate(string(v), GT, c) }

// GE returns "v >= c".
func (v Var) GE(c float64) Formula { return Predicate(string(v), GE, c) }

// EQ returns "v == c".
func (v Var) EQ(c float64) Formula { return Predicate(string(v), EQ, c) }

// ---------------------------------------------------------------------------
// Rendering
// ---------------------------------------------------------------------------

func (c *ConstExpr) String() string { return strconv.FormatBool(c.value) }

func (p *PredicateExpr) String() string {
	rhs := p.ref
	if rhs == "" {
		rhs = strconv.FormatFloat(p.threshold, 'g', -1, 64)
	}

	return p.channel + " " + p.rel.String() + " " + rhs
}

func (n *NotExpr) String() string { return "!(" + render(n.arg) + ")" }

func (a *AndExpr) String() string { return joinArgs(a.args, " & ") }

func (o *OrExpr) String() string { return joinArgs(o.args, " | ") }

func (a *AlwaysExpr) String() string {
	return "G" + a.interval.String() + "(" + render(a.arg) + ")"
}

func (e *EventuallyExpr) String() string {
	return "F" + e.interval.String() + "(" + render(e.arg) + ")"
}

func (u *UntilExpr) String() string {
	return "(" + render(u.left) + " U" + u.interval.String() + " " + render(u.right) + ")"
}

// render tolerates nil children so a malformed tree can still be printed in
// error messages.
func render(f Formula) string {
	if f == nil {
		return "<nil>"
	}

	return f.String()
}

func joinArgs(args []Formula, sep string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = render(a)
	}

	return "(" + strings.Join(parts, sep) + ")"
}

func cloneArgs(args []Formula) []Formula {
	out := make([]Formula, len(args))
	copy(out, args)

	return out
}
