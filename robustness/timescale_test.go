package robustness_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/signaltl/builder"
	"github.com/katalvlaran/signaltl/formula"
	"github.com/katalvlaran/signaltl/robustness"
	"github.com/katalvlaran/signaltl/signal"
	"github.com/katalvlaran/signaltl/trace"
)

const epoch = 1.7e9 // seconds, mid-2023

// timeAxisTrace builds x (sine) and y (triangular pulse) with 40 samples at
// base + i·step. Frequencies are given per sample, so the values do not
// depend on base or step.
func timeAxisTrace(t *testing.T, base, step float64, interp signal.Interpolation) *trace.Trace {
	t.Helper()
	axis := []builder.BuilderOption{
		builder.WithStart(base), builder.WithStep(step), builder.WithInterpolation(interp),
	}
	x, err := builder.Sine(40, append(axis, builder.WithAmplitude(2), builder.WithFrequency(0.07/step))...)
	require.NoError(t, err)
	y, err := builder.Pulse(40, 1, append(axis, builder.WithTriangular(), builder.WithFrequency(0.1/step))...)
	require.NoError(t, err)

	return traceOf(t, map[string]*signal.Signal{"x": x, "y": y})
}

// timeAxisFormulas returns formulas whose intervals are measured in samples
// and scaled by step.
func timeAxisFormulas(step float64) map[string]formula.Formula {
	iv := func(a, b float64) formula.Interval { return formula.MustInterval(a*step, b*step) }
	from := func(a float64) formula.Interval { return formula.Unbounded(a * step) }
	x, y := formula.Var("x"), formula.Var("y")

	return map[string]formula.Formula{
		"and":        formula.And(x.GT(0.3), y.LT(0.6)),
		"or":         formula.Or(x.LE(-0.5), y.GE(0.2)),
		"eq":         x.EQ(0.3),
		"always":     formula.Always(iv(0, 2.5), x.GT(0)),
		"eventually": formula.Eventually(iv(1, 3.5), y.GT(0.4)),
		"always_inf": formula.Always(from(0.5), x.GE(-1.5)),
		"until":      formula.Until(iv(0.5, 4), x.GT(-0.5), y.GT(0.7)),
		"until_inf":  formula.Until(from(0), y.GT(0.1), x.GT(1)),
		"nested": formula.Always(iv(0, 3),
			formula.Implies(x.GT(1), formula.Eventually(iv(0, 2), y.LT(0.3)))),
	}
}

// TestTimeAxis_OffsetAndSpacing evaluates each formula on the same values
// placed at t = i, at t = epoch + i and at t = i·1e-10, and checks that the
// results agree once mapped back to sample units.
func TestTimeAxis_OffsetAndSpacing(t *testing.T) {
	axes := []struct {
		name       string
		base, step float64
	}{
		{"epoch", epoch, 1},
		{"sub-nanosecond", 0, 1e-10},
	}
	for _, interp := range []signal.Interpolation{signal.Hold, signal.Linear} {
		refTrace := timeAxisTrace(t, 0, 1, interp)
		refFormulas := timeAxisFormulas(1)

		for _, axis := range axes {
			tr := timeAxisTrace(t, axis.base, axis.step, interp)
			toUnits := func(u float64) float64 { return (u - axis.base) / axis.step }
			fromUnits := func(u float64) float64 { return axis.base + u*axis.step }

			for name, f := range timeAxisFormulas(axis.step) {
				t.Run(interp.String()+"/"+axis.name+"/"+name, func(t *testing.T) {
					want, err := robustness.Evaluate(refFormulas[name], refTrace)
					require.NoError(t, err)
					got, err := robustness.Evaluate(f, tr)
					require.NoError(t, err)

					assert.InDelta(t, want.Begin(), toUnits(got.Begin()), 1e-6)
					assert.InDelta(t, want.End(), toUnits(got.End()), 1e-6)

					if interp == signal.Hold {
						// Hold breakpoints lie on a half-sample lattice: same count, same places.
						require.Equal(t, want.Len(), got.Len())
						for i := 0; i < want.Len(); i++ {
							assert.InDelta(t, want.At(i).Time, toUnits(got.At(i).Time), 1e-6, "sample %d", i)
							assert.InDelta(t, want.At(i).Value, got.At(i).Value, 1e-9, "sample %d", i)
						}
					}

					// Compare values away from breakpoints (hold) and at them (linear).
					wt := want.Times()
					for i := 0; i+1 < len(wt); i++ {
						mid := (wt[i] + wt[i+1]) / 2
						assert.InDelta(t, want.Eval(mid), got.Eval(fromUnits(mid)), 1e-5, "t=%v", mid)
						if interp == signal.Linear {
							assert.InDelta(t, want.Eval(wt[i]), got.Eval(fromUnits(wt[i])), 1e-5, "t=%v", wt[i])
						}
					}
					if interp == signal.Linear {
						for _, u := range got.Times() {
							assert.InDelta(t, want.Eval(toUnits(u)), got.Eval(u), 1e-5, "t=%v", toUnits(u))
						}
					}
				})
			}
		}
	}
}

// TestTimeAxis_EpochSeconds pins two small cases at epoch timestamps.
func TestTimeAxis_EpochSeconds(t *testing.T) {
	t.Run("hold window", func(t *testing.T) {
		times := make([]float64, 10)
		values := make([]float64, 10)
		for i := range times {
			times[i] = epoch + float64(i)
			values[i] = 1
			if i%2 == 1 {
				values[i] = -1
			}
		}
		x, err := signal.FromSlices(times, values, signal.Hold)
		require.NoError(t, err)
		tr := traceOf(t, map[string]*signal.Signal{"x": x})

		rho, err := robustness.Evaluate(formula.Always(formula.MustInterval(0, 0.5), formula.Var("x").GT(0)), tr)
		require.NoError(t, err)
		assert.Equal(t, 19, rho.Len(), "every sample time and its half-step shift")
		assert.Equal(t, 1.0, at(t, formula.Always(formula.MustInterval(0, 0.5), formula.Var("x").GT(0)), tr, epoch+2))
		assert.Equal(t, -1.0, rho.Eval(epoch+1.5))
	})

	t.Run("linear crossing", func(t *testing.T) {
		x := sig(t, signal.Linear, [2]float64{epoch, 0}, [2]float64{epoch + 1, 2})
		y := sig(t, signal.Linear, [2]float64{epoch, 2}, [2]float64{epoch + 1, 0})
		tr := traceOf(t, map[string]*signal.Signal{"x": x, "y": y})

		rho, err := robustness.Evaluate(formula.And(formula.Var("x").GT(0), formula.Var("y").GT(0)), tr)
		require.NoError(t, err)
		assert.Equal(t, []float64{epoch, epoch + 0.5, epoch + 1}, rho.Times())
		assert.Equal(t, []float64{0, 1, 0}, rho.Values())
	})
}
