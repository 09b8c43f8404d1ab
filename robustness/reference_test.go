package robustness_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/signaltl/formula"
	"github.com/katalvlaran/signaltl/robustness"
	"github.com/katalvlaran/signaltl/signal"
	"github.com/katalvlaran/signaltl/trace"
)

// randomSignal returns n samples with values in [-5, 5). With integer times
// every window bound below is exact in float64.
func randomSignal(rng *rand.Rand, n int, interp signal.Interpolation, integerTimes bool) *signal.Signal {
	samples := make([]signal.Sample, n)
	t := 0.0
	for i := range samples {
		samples[i] = signal.Sample{Time: t, Value: math.Round((rng.Float64()*10-5)*8) / 8}
		if integerTimes {
			t += float64(1 + rng.Intn(3))
		} else {
			t += 0.5 + rng.Float64()*1.5
		}
	}
	s, err := signal.New(samples, interp)
	if err != nil {
		panic(err)
	}

	return s
}

// windowRef is min (or max) of s over [t+a, min(t+b, end)], computed from
// the definition: the extremum of a piecewise signal over a closed range is
// attained at an end or at an interior sample.
func windowRef(s *signal.Signal, t, a, b float64, pick func(x, y float64) float64) float64 {
	lo, hi := t+a, math.Min(t+b, s.End())
	v := pick(s.Eval(lo), s.Eval(hi))
	for _, smp := range s.Samples() {
		if smp.Time > lo && smp.Time < hi {
			v = pick(v, smp.Value)
		}
	}

	return v
}

func TestWindow_AgainstDefinition(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	windows := [][2]float64{{0, 0.5}, {0.7, 2.3}, {0, 4}, {1.5, 1.5}, {0.25, math.Inf(1)}}

	for _, interp := range []signal.Interpolation{signal.Linear, signal.Hold} {
		for trial := 0; trial < 6; trial++ {
			x := randomSignal(rng, 12, interp, false)
			tr, err := trace.New(map[string]*signal.Signal{"x": x})
			require.NoError(t, err)
			// x > 0 has robustness x itself.
			pred := formula.Var("x").GT(0)

			for _, w := range windows {
				iv := formula.MustInterval(w[0], w[1])
				g, err := robustness.Evaluate(formula.Always(iv, pred), tr)
				require.NoError(t, err)
				f, err := robustness.Evaluate(formula.Eventually(iv, pred), tr)
				require.NoError(t, err)

				begin, end := g.Domain()
				assert.Equal(t, x.Begin(), begin)
				assert.Equal(t, x.End()-w[0], end)

				for k := 0; k < 40; k++ {
					when := begin + rng.Float64()*(end-begin)
					assert.InDelta(t, windowRef(x, when, w[0], w[1], math.Min), g.Eval(when), 1e-9,
						"%v G%v t=%v", interp, iv, when)
					assert.InDelta(t, windowRef(x, when, w[0], w[1], math.Max), f.Eval(when), 1e-9,
						"%v F%v t=%v", interp, iv, when)
				}
			}
		}
	}
}

// untilHoldRef evaluates φ U[a,b] ψ for hold signals on a shared basis from
// the definition: on each constant piece the running inf of φ only
// decreases, so the sup over t' is attained at t+a or at a sample time.
func untilHoldRef(phi, psi *signal.Signal, t, a, b float64) float64 {
	lo, hi := t+a, math.Min(t+b, phi.End())
	runInf := func(upTo float64) float64 {
		m := phi.Eval(t)
		for _, smp := range phi.Samples() {
			if smp.Time > t && smp.Time <= upTo {
				m = math.Min(m, smp.Value)
			}
		}

		return m
	}
	best := math.Min(psi.Eval(lo), runInf(lo))
	for _, smp := range psi.Samples() {
		if smp.Time > lo && smp.Time <= hi {
			best = math.Max(best, math.Min(smp.Value, runInf(smp.Time)))
		}
	}

	return best
}

// untilGridRef approximates φ U[a,b] ψ for linear signals on a dyadic grid
// that contains every integer sample time.
func untilGridRef(phi, psi *signal.Signal, t, a, b, h float64) float64 {
	hi := math.Min(t+b, phi.End())
	best := math.Inf(-1)
	inf := phi.Eval(t)
	for u := t; u <= hi+h/2; u += h {
		if u > hi {
			u = hi
		}
		inf = math.Min(inf, phi.Eval(u))
		if u >= t+a {
			best = math.Max(best, math.Min(psi.Eval(u), inf))
		}
	}

	return best
}

func TestUntil_AgainstDefinition(t *testing.T) {
	rng := rand.New(rand.NewSource(1234))
	windows := [][2]float64{{0, 0}, {0, 3}, {1, 4}, {2, 2}, {0, math.Inf(1)}, {2, math.Inf(1)}}
	p, q := formula.Var("p").GT(0), formula.Var("q").GT(0)

	t.Run("hold exact", func(t *testing.T) {
		for trial := 0; trial < 8; trial++ {
			phi := randomSignal(rng, 10, signal.Hold, true)
			psi, err := randomSignal(rng, 40, signal.Hold, true).Resample(phi.Times())
			require.NoError(t, err)
			tr, err := trace.New(map[string]*signal.Signal{"p": phi, "q": psi})
			require.NoError(t, err)

			for _, w := range windows {
				u, err := robustness.Evaluate(formula.Until(formula.MustInterval(w[0], w[1]), p, q), tr)
				require.NoError(t, err)
				_, end := u.Domain()
				for when := phi.Begin(); when <= end; when += 0.5 {
					assert.Equal(t, untilHoldRef(phi, psi, when, w[0], w[1]), u.Eval(when),
						"U[%v,%v] t=%v", w[0], w[1], when)
				}
			}
		}
	})

	t.Run("linear grid", func(t *testing.T) {
		const h = 1.0 / 512
		for trial := 0; trial < 4; trial++ {
			phi := randomSignal(rng, 8, signal.Linear, true)
			psi, err := randomSignal(rng, 30, signal.Linear, true).Resample(phi.Times())
			require.NoError(t, err)
			tr, err := trace.New(map[string]*signal.Signal{"p": phi, "q": psi})
			require.NoError(t, err)

			for _, w := range windows {
				u, err := robustness.Evaluate(formula.Until(formula.MustInterval(w[0], w[1]), p, q), tr)
				require.NoError(t, err)
				_, end := u.Domain()
				for when := phi.Begin(); when <= end; when += 0.75 {
					// Slopes are at most 10 per time unit.
					assert.InDelta(t, untilGridRef(phi, psi, when, w[0], w[1], h), u.Eval(when), 10*h+1e-9,
						"U[%v,%v] t=%v", w[0], w[1], when)
				}
			}
		}
	})
}
