// Copyright 2016 The VLE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vle

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

const (
	// maxResets caps the number of consecutive out-of-range recoveries of
	// the Newton step on the vapor fraction before the iteration is
	// declared oscillating
	maxResets = 5

	// tinyV avoids dividing by a vanishing vapor fraction
	tinyV = 1e-15
)

// Flash splits a feed of global composition z at T [K] and P [bar] into
// equilibrium liquid and vapor fractions. The pressure must lie strictly
// between the dew and bubble pressures at T; the vapor fraction comes from
// a Rachford-Rice Newton iteration on
//   F(V) = Σ z_i (K_i - 1) / (1 + V (K_i - 1)),  K_i = γ_i Psat_i φsat_i / (φ_i P)
// with out-of-[0,1] steps reset to 0.5.
func (o *Solver) Flash(z []float64, T, P float64) (*Condition, error) {

	zz := clone(z)
	normalize(zz)

	// feasibility: P inside the two-phase region at T
	bub, err := o.BubbleP(zz, T)
	if err != nil {
		return nil, err
	}
	dew, err := o.DewP(zz, T)
	if err != nil {
		return nil, err
	}
	if P >= bub.P || P <= dew.P {
		cond := &Condition{P: P, T: T, Status: NotFeasible}
		return cond, chk.Err("vle: flash at P=%g is not feasible: P must lie strictly between the dew pressure %g and the bubble pressure %g", P, dew.P, bub.P)
	}

	// initial coefficients: interpolation between the dew and bubble states
	interp := (P - dew.P) / (bub.P - dew.P)
	γ := make([]float64, o.nc)
	φ := make([]float64, o.nc)
	for i := 0; i < o.nc; i++ {
		γ[i] = dew.Liquid.CoefAct[i] + (bub.Liquid.CoefAct[i]-dew.Liquid.CoefAct[i])*interp
		φ[i] = dew.Vapor.CoefFug[i] + (bub.Vapor.CoefFug[i]-dew.Vapor.CoefFug[i])*interp
	}

	φsat, Psat, err := o.PhiSat(T)
	if err != nil {
		return nil, err
	}

	V := o.EstBeta
	K := make([]float64, o.nc)
	x := make([]float64, o.nc)
	y := make([]float64, o.nc)
	xold := make([]float64, o.nc)
	yold := make([]float64, o.nc)
	resets := 0
	status := MaxIterReached
	for it := 0; it < o.MaxIt; it++ {

		for i := 0; i < o.nc; i++ {
			K[i] = γ[i] * Psat[i] * φsat[i] / (φ[i] * P)
		}

		// Newton step on the vapor fraction
		var F, dF float64
		for i := 0; i < o.nc; i++ {
			d := 1.0 + V*(K[i]-1.0)
			F += zz[i] * (K[i] - 1.0) / d
			dF -= zz[i] * (K[i] - 1.0) * (K[i] - 1.0) / (d * d)
		}
		Vnew := V - F/dF
		reset := false
		if Vnew < 0.0 || Vnew > 1.0 {
			Vnew = 0.5
			reset = true
			resets++
			if resets > maxResets {
				V = Vnew
				status = Oscillating
				break
			}
		} else {
			resets = 0
		}

		// compositions from the new split
		for i := 0; i < o.nc; i++ {
			x[i] = zz[i] / (1.0 + Vnew*(K[i]-1.0))
		}
		normalize(x)
		for i := 0; i < o.nc; i++ {
			y[i] = K[i] * x[i]
		}
		normalize(y)

		if γ, err = o.Liq.Gamma(x, T); err != nil {
			return nil, err
		}
		if φ, err = o.Vap.Phi(y, P, T); err != nil {
			return nil, err
		}

		// a reset step carries no convergence information: ΔV vanishes
		// whenever the previous step was also reset
		ΔV := math.Abs(Vnew-V) / math.Max(Vnew, tinyV)
		V = Vnew
		if !reset && it > 0 && ΔV <= o.TolAlg && maxRelDiff(x, xold) <= o.TolEq && maxRelDiff(y, yold) <= o.TolEq {
			status = Converged
			break
		}
		copy(xold, x)
		copy(yold, y)
	}

	return &Condition{
		P:      P,
		T:      T,
		Liquid: &Phase{Comp: x, CoefAct: γ},
		Vapor:  &Phase{Comp: y, CoefFug: φ},
		Beta:   V,
		Status: status,
	}, nil
}
