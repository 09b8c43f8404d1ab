// Package formula defines the fixed Signal Temporal Logic operator algebra
// as an immutable expression tree.
//
// 🚀 What is a Formula?
//
//	A Formula is one of eight closed variants:
//	  • Const(b)                 — always true / always false
//	  • Predicate(x ~ c)         — channel x compared to a constant or channel
//	  • Not(φ), And(φ…), Or(φ…)  — Boolean connectives (And/Or variadic)
//	  • Always(I, φ)             — φ holds everywhere in t+I        (G)
//	  • Eventually(I, φ)         — φ holds somewhere in t+I         (F)
//	  • Until(I, φ, ψ)           — ψ holds somewhere in t+I and φ holds until then
//
//	I is an Interval [a,b] with 0 ≤ a ≤ b, b may be +Inf.
//
// ✨ Key properties:
//   - sealed sum type: only this package can add variants, so every type
//     switch over *ConstExpr … *UntilExpr is exhaustive
//   - immutable nodes: fields are unexported, accessors return copies;
//     a node may be reused in several places and across goroutines
//   - builder-style construction, no text syntax
//   - Validate walks the tree once and reports the offending node
//
// ⚙️ Usage:
//
//	speed := formula.Var("speed")
//	phi := formula.Always(formula.MustInterval(0, 10),
//	  formula.Implies(speed.GT(120), formula.Eventually(formula.MustInterval(0, 2), speed.LE(100))))
//	fmt.Println(phi) // G[0,10]((!(speed > 120) | F[0,2](speed <= 100)))
//
// Smart combinators Conjoin, Disjoin and Negate fold constants and flatten
// nested And/Or the way infix operators would; the plain constructors build
// exactly the node asked for.
package formula
