// SPDX-License-Identifier: MIT
// Package: signaltl/robustness
//
// until.go — timed and untimed Until.
//
//	(φ U[a,b] ψ)(t) = sup_{t' ∈ [t+a, t+b]} min(ψ(t'), inf_{[t, t']} φ)
//
// The timed operator is reduced to windows and the untimed operator:
//
//	φ U[a,b] ψ = G[0,a]φ ∧ shift_a( F[0,b-a]ψ ∧ φ U[0,∞) ψ )
//
// where shift_a(s)(t) = s(t+a). G[0,0]φ and F[0,∞) are dropped since they
// are implied by the remaining terms.
//
// The untimed operator U(t) is swept backwards over the aligned operands:
//
//	Hold, on [τ_i, τ_{i+1}):   U_i = min(φ_i, max(ψ_i, U_{i+1})),  U_{N+1} = -∞
//	Linear, for u ∈ [p, q]:    U(u) = min(φ(u), max(ψ(u), U(q)))
//
// The linear form holds on segments where φ and ψ do not cross, so their
// crossings are inserted first; the crossings of φ, ψ and the constant U(q)
// are the remaining breakpoints.

package robustness

import (
	"fmt"
	"math"

	"github.com/katalvlaran/signaltl/signal"
)

// until evaluates φ U[a,b] ψ from the operand robustness signals.
//
// Errors:
//   - ErrDomainMismatch — the operands do not overlap, or a exceeds their
//     common length.
func until(phi, psi *signal.Signal, a, b float64) (*signal.Signal, error) {
	aligned, _, err := align(phi, psi)
	if err != nil {
		return nil, err
	}
	phi, psi = aligned[0], aligned[1]
	t0, tN := phi.Domain()
	if tN-a < t0 {
		return nil, fmt.Errorf("%w: until lower bound %v exceeds signal length %v", ErrDomainMismatch, a, tN-t0)
	}

	inner, err := untilUnbounded(phi, psi)
	if err != nil {
		return nil, err
	}
	if !math.IsInf(b, 1) {
		reach, err := windowMax(psi, 0, b-a)
		if err != nil {
			return nil, err
		}
		if inner, err = pointwiseMin(reach, inner); err != nil {
			return nil, err
		}
	}
	if a == 0 {
		return inner, nil
	}

	hold, err := windowMin(phi, 0, a)
	if err != nil {
		return nil, err
	}
	shifted, err := inner.Shift(-a)
	if err != nil {
		return nil, err
	}
	shifted, err = shifted.Restrict(t0, tN-a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDomainMismatch, err)
	}

	return pointwiseMin(hold, shifted)
}

// untilUnbounded computes φ U[0,∞) ψ, clipped at the common end, for two
// signals already aligned on one basis.
func untilUnbounded(phi, psi *signal.Signal) (*signal.Signal, error) {
	if phi.Interpolation() == signal.Hold {
		return untilHold(phi, psi)
	}

	return untilLinear(phi, psi)
}

func untilHold(phi, psi *signal.Signal) (*signal.Signal, error) {
	n := phi.Len()
	out := make([]signal.Sample, n)
	next := math.Inf(-1)
	for i := n - 1; i >= 0; i-- {
		g, f := phi.At(i), psi.At(i)
		next = math.Min(g.Value, math.Max(f.Value, next))
		out[i] = signal.Sample{Time: g.Time, Value: next}
	}

	return signal.New(out, signal.Hold)
}

func untilLinear(phi, psi *signal.Signal) (*signal.Signal, error) {
	times := withCrossings([]*signal.Signal{phi, psi}, phi.Times())
	n := len(times)

	// Samples are produced back to front, breakpoints included, then reversed.
	rev := make([]signal.Sample, 0, 2*n)
	last := times[n-1]
	uq := math.Min(phi.Eval(last), psi.Eval(last))
	rev = append(rev, signal.Sample{Time: last, Value: uq})
	for k := n - 2; k >= 0; k-- {
		p, q := times[k], times[k+1]
		gp, gq := phi.Eval(p), phi.Eval(q)
		fp, fq := psi.Eval(p), psi.Eval(q)
		at := func(u float64) float64 {
			return math.Min(phi.Eval(u), math.Max(psi.Eval(u), uq))
		}
		inner := crossings(p, q, piece{vp: gp, vq: gq}, piece{vp: fp, vq: fq}, flat(uq))
		if len(inner) > 0 {
			inner = normalizeTimes(inner, p, q)
			for i := len(inner) - 2; i >= 1; i-- {
				rev = append(rev, signal.Sample{Time: inner[i], Value: at(inner[i])})
			}
		}
		up := math.Min(gp, math.Max(fp, uq))
		rev = append(rev, signal.Sample{Time: p, Value: up})
		uq = up
	}

	out := make([]signal.Sample, len(rev))
	for i, s := range rev {
		out[len(rev)-1-i] = s
	}

	return signal.New(out, signal.Linear)
}
