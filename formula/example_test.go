package formula_test

import (
	"fmt"

	"github.com/katalvlaran/signaltl/formula"
)

// ExampleImplies builds "whenever speed exceeds 120, it drops to 100 within
// two seconds" over the first ten seconds.
func ExampleImplies() {
	speed := formula.Var("speed")
	phi := formula.Always(formula.MustInterval(0, 10),
		formula.Implies(speed.GT(120), formula.Eventually(formula.MustInterval(0, 2), speed.LE(100))))

	fmt.Println(phi)
	fmt.Println(formula.Channels(phi), formula.Depth(phi))
	// Output:
	// G[0,10]((!(speed > 120) | F[0,2](speed <= 100)))
	// [speed] 4
}

// ExampleConjoin shows constant folding and flattening.
func ExampleConjoin() {
	a, b := formula.Var("a").GT(0), formula.Var("b").GT(0)

	fmt.Println(formula.Conjoin(formula.Const(true), a))
	fmt.Println(formula.Conjoin(formula.Conjoin(a, b), formula.Var("c").LE(1)))
	fmt.Println(formula.Conjoin(a, formula.Const(false)))
	// Output:
	// a > 0
	// (a > 0 & b > 0 & c <= 1)
	// false
}

// ExampleValidate reports the offending node.
func ExampleValidate() {
	bad := formula.And(formula.Var("x").LE(1), formula.Not(nil))
	fmt.Println(formula.Validate(bad))
	// Output:
	// formula: malformed formula: nil node at <nil>
}
