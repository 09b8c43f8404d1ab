package robustness_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/signaltl/formula"
	"github.com/katalvlaran/signaltl/robustness"
	"github.com/katalvlaran/signaltl/signal"
)

type scenarioFile struct {
	Scenarios []scenario `yaml:"scenarios"`
}

type scenario struct {
	Name          string                  `yaml:"name"`
	Interpolation string                  `yaml:"interpolation"`
	Channels      map[string][][2]float64 `yaml:"channels"`
	Formula       nodeSpec                `yaml:"formula"`
	Expect        []struct {
		T   float64 `yaml:"t"`
		Rho float64 `yaml:"rho"`
	} `yaml:"expect"`
	Error string `yaml:"error"`
}

// nodeSpec is the fixture encoding of a formula tree.
type nodeSpec struct {
	Op       string     `yaml:"op"`
	Channel  string     `yaml:"channel"`
	Ref      string     `yaml:"ref"`
	Value    float64    `yaml:"value"`
	Interval []float64  `yaml:"interval"`
	Args     []nodeSpec `yaml:"args"`
}

var fixtureRelations = map[string]formula.Relation{
	"lt": formula.LT, "le": formula.LE, "gt": formula.GT, "ge": formula.GE, "eq": formula.EQ,
}

var fixtureErrors = map[string]error{
	"domain_mismatch":    robustness.ErrDomainMismatch,
	"empty_intersection": signal.ErrEmptyIntersection,
}

func (n nodeSpec) build() (formula.Formula, error) {
	args := make([]formula.Formula, len(n.Args))
	for i, a := range n.Args {
		f, err := a.build()
		if err != nil {
			return nil, err
		}
		args[i] = f
	}
	var iv formula.Interval
	if len(n.Interval) == 2 {
		var err error
		if iv, err = formula.NewInterval(n.Interval[0], n.Interval[1]); err != nil {
			return nil, err
		}
	}

	if rel, ok := fixtureRelations[n.Op]; ok {
		if n.Ref != "" {
			return formula.Compare(n.Channel, rel, n.Ref), nil
		}

		return formula.Predicate(n.Channel, rel, n.Value), nil
	}
	switch n.Op {
	case "true", "false":
		return formula.Const(n.Op == "true"), nil
	case "not":
		return formula.Not(args[0]), nil
	case "and":
		return formula.And(args...), nil
	case "or":
		return formula.Or(args...), nil
	case "always":
		return formula.Always(iv, args[0]), nil
	case "eventually":
		return formula.Eventually(iv, args[0]), nil
	case "until":
		return formula.Until(iv, args[0], args[1]), nil
	}

	return nil, fmt.Errorf("unknown op %q", n.Op)
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	raw, err := os.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)
	var file scenarioFile
	require.NoError(t, yaml.Unmarshal(raw, &file))
	require.NotEmpty(t, file.Scenarios)

	return file.Scenarios
}

func TestScenarios(t *testing.T) {
	for _, sc := range loadScenarios(t) {
		t.Run(sc.Name, func(t *testing.T) {
			interp := signal.Linear
			if sc.Interpolation == "hold" {
				interp = signal.Hold
			}
			channels := make(map[string]*signal.Signal, len(sc.Channels))
			for name, pairs := range sc.Channels {
				channels[name] = sig(t, interp, pairs...)
			}
			f, err := sc.Formula.build()
			require.NoError(t, err)

			rho, err := robustness.Compute(f, channels)
			if sc.Error != "" {
				target, ok := fixtureErrors[sc.Error]
				require.True(t, ok, "unknown error %q", sc.Error)
				assert.ErrorIs(t, err, target)

				return
			}
			require.NoError(t, err)
			for _, e := range sc.Expect {
				v, err := rho.ValueAt(e.T)
				require.NoError(t, err, "t=%v", e.T)
				assert.InDelta(t, e.Rho, v, 1e-9, "t=%v", e.T)
			}
		})
	}
}
