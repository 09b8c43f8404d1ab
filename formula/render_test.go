package formula_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/katalvlaran/signaltl/formula"
)

// TestRender_Golden pins the infix rendering of composite formulas.
// Regenerate with: go test ./formula -run TestRender_Golden -update
func TestRender_Golden(t *testing.T) {
	cases := map[string]formula.Formula{
		"overspeed": formula.Always(formula.MustInterval(0, 10),
			formula.Implies(
				formula.Var("speed").GT(120),
				formula.Eventually(formula.MustInterval(0, 2), formula.Var("speed").LE(100)),
			)),
		"until_nested": formula.Until(formula.Unbounded(1),
			formula.Conjoin(formula.Var("a").GE(0), formula.Var("b").LT(5)),
			formula.Eventually(formula.Forever(), formula.Compare("a", formula.EQ, "b")),
		),
		"xor": formula.Xor(formula.Var("p").GT(0.5), formula.Not(formula.Var("q").LE(-1))),
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for name, f := range cases {
		t.Run(name, func(t *testing.T) {
			g.Assert(t, name, []byte(f.String()+"\n"))
		})
	}
}
