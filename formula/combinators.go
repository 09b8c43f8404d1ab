// SPDX-License-Identifier: MIT
// Package: signaltl/formula
//
// combinators.go — simplifying combinators and derived connectives.
//
// Conjoin/Disjoin/Negate behave like infix &, |, ~ on formulas:
//   • constants fold (true ∧ φ = φ, false ∧ φ = false, ...);
//   • nested And/Or operands are flattened into one n-ary node;
//   • Negate removes double negation and flips constants.
// None of these change robustness: min/max are associative and Const maps to
// the neutral ±Inf (or the configured bound) of min/max.

package formula

// Conjoin returns l ∧ r with constant folding and And-flattening.
func Conjoin(l, r Formula) Formula {
	if c, ok := l.(*ConstExpr); ok {
		if c.value {
			return r
		}

		return l
	}
	if c, ok := r.(*ConstExpr); ok {
		if c.value {
			return l
		}

		return r
	}
	args := make([]Formula, 0, 4)
	args = appendFlat(args, l, KindAnd)
	args = appendFlat(args, r, KindAnd)

	return &AndExpr{args: args}
}

// Disjoin returns l ∨ r with constant folding and Or-flattening.
func Disjoin(l, r Formula) Formula {
	if c, ok := l.(*ConstExpr); ok {
		if c.value {
			return l
		}

		return r
	}
	if c, ok := r.(*ConstExpr); ok {
		if c.value {
			return r
		}

		return l
	}
	args := make([]Formula, 0, 4)
	args = appendFlat(args, l, KindOr)
	args = appendFlat(args, r, KindOr)

	return &OrExpr{args: args}
}

// Negate returns ¬f, flipping constants and cancelling a double negation.
func Negate(f Formula) Formula {
	switch n := f.(type) {
	case *ConstExpr:
		return Const(!n.value)
	case *NotExpr:
		return n.arg
	}

	return Not(f)
}

// Implies returns ¬a ∨ b.
func Implies(a, b Formula) Formula { return Disjoin(Negate(a), b) }

// Iff returns (a → b) ∧ (b → a). a and b appear twice in the result; the
// engine evaluates each shared subtree once.
func Iff(a, b Formula) Formula { return Conjoin(Implies(a, b), Implies(b, a)) }

// Xor returns (a ∧ ¬b) ∨ (¬a ∧ b).
func Xor(a, b Formula) Formula {
	return Disjoin(Conjoin(a, Negate(b)), Conjoin(Negate(a), b))
}

// appendFlat appends f, or f's operands when f is a node of kind k.
func appendFlat(dst []Formula, f Formula, k Kind) []Formula {
	switch n := f.(type) {
	case *AndExpr:
		if k == KindAnd {
			return append(dst, n.args...)
		}
	case *OrExpr:
		if k == KindOr {
			return append(dst, n.args...)
		}
	}

	return append(dst, f)
}
