// SPDX-License-Identifier: MIT
// Package: signaltl
//
// signaltl.go — short names over the formula and robustness packages.
//
// Everything here is a thin function or value layered on the core API; the
// package holds no state.

package signaltl

import (
	"fmt"
	"math"

	"github.com/katalvlaran/signaltl/formula"
	"github.com/katalvlaran/signaltl/robustness"
	"github.com/katalvlaran/signaltl/signal"
)

// Top and Bot are the Boolean constants.
var (
	Top = formula.Const(true)
	Bot = formula.Const(false)
)

// G returns G[a,b] φ.
func G(a, b float64, phi formula.Formula) formula.Formula {
	return formula.Always(formula.MustInterval(a, b), phi)
}

// F returns F[a,b] φ.
func F(a, b float64, phi formula.Formula) formula.Formula {
	return formula.Eventually(formula.MustInterval(a, b), phi)
}

// U returns φ U[a,b] ψ.
func U(a, b float64, phi, psi formula.Formula) formula.Formula {
	return formula.Until(formula.MustInterval(a, b), phi, psi)
}

// Inf is the unbounded upper bound, e.g. G(0, Inf, φ).
var Inf = math.Inf(1)

// ComputeRobustness evaluates f over the named channels. With evalTimes the
// result is sampled exactly at those times, which must be finite and
// strictly increasing.
//
// Errors are those of robustness.Compute; malformed evalTimes are reported
// as signal.ErrInvalidSignal.
func ComputeRobustness(f formula.Formula, channels map[string]*signal.Signal, evalTimes ...float64) (*signal.Signal, error) {
	if len(evalTimes) == 0 {
		return robustness.Compute(f, channels)
	}
	for i, t := range evalTimes {
		if math.IsNaN(t) || math.IsInf(t, 0) || (i > 0 && t <= evalTimes[i-1]) {
			return nil, fmt.Errorf("%w: evaluation time #%d (%v) is not finite and strictly increasing",
				signal.ErrInvalidSignal, i, t)
		}
	}

	return robustness.Compute(f, channels, robustness.WithEvalTimes(evalTimes...))
}
