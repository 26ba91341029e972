// Copyright 2016 The VLE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vle

import (
	"math"
)

// DewP computes the dew point for a known vapor composition y and
// temperature T [K]: the unknowns are the pressure and the liquid
// composition. Mirror of BubbleP with the phases swapped:
//   P = 1 / Σ y_i φ_i / (γ_i Psat_i φsat_i)
func (o *Solver) DewP(y []float64, T float64) (*Condition, error) {

	yy := clone(y)
	normalize(yy)

	φsat, Psat, err := o.PhiSat(T)
	if err != nil {
		return nil, err
	}

	φ := clone(o.EstPhi)
	γ := clone(o.EstGamma)
	x := make([]float64, o.nc)
	var P, Pold float64
	status := MaxIterReached
	for it := 0; it < o.MaxIt; it++ {

		var s float64
		for i := 0; i < o.nc; i++ {
			s += yy[i] * φ[i] / (γ[i] * Psat[i] * φsat[i])
		}
		P = 1.0 / s
		for i := 0; i < o.nc; i++ {
			x[i] = yy[i] * φ[i] * P / (γ[i] * Psat[i] * φsat[i])
		}
		normalize(x)

		if φ, err = o.Vap.Phi(yy, P, T); err != nil {
			return nil, err
		}
		if γ, err = o.Liq.Gamma(x, T); err != nil {
			return nil, err
		}

		if it > 0 && math.Abs(P-Pold) <= o.TolAlg {
			status = Converged
			break
		}
		Pold = P
	}

	return &Condition{
		P:      P,
		T:      T,
		Liquid: &Phase{Comp: x, CoefAct: γ},
		Vapor:  &Phase{Comp: yy, CoefFug: φ},
		Beta:   1.0,
		Status: status,
	}, nil
}

// DewT computes the dew point for a known vapor composition y and pressure
// P [bar]: the unknowns are the temperature and the liquid composition.
// Mirror of BubbleT, with an inner convergence loop on γ since the liquid
// composition and the activity coefficients depend on each other (binary
// systems only).
func (o *Solver) DewT(y []float64, P float64) (*Condition, error) {

	if err := o.checkBinary("DewT"); err != nil {
		return nil, err
	}
	yy := clone(y)
	normalize(yy)

	// initial temperature estimate
	var T float64
	for i := 0; i < o.nc; i++ {
		Ti, err := o.Comps[i].Tsat(P)
		if err != nil {
			return nil, err
		}
		T += yy[i] * Ti
	}

	γ := clone(o.EstGamma)
	x := make([]float64, o.nc)
	var φ, φsat, Psat []float64
	var err error
	status := MaxIterReached
	for it := 0; it < o.MaxIt; it++ {

		if φsat, Psat, err = o.PhiSat(T); err != nil {
			return nil, err
		}
		if φ, err = o.Vap.Phi(yy, P, T); err != nil {
			return nil, err
		}

		// inner loop: x depends on γ and γ depends on x
		for inner := 0; inner < o.MaxIt; inner++ {
			for i := 0; i < o.nc; i++ {
				x[i] = yy[i] * φ[i] * P / (γ[i] * Psat[i] * φsat[i])
			}
			normalize(x)
			γnew, e := o.Liq.Gamma(x, T)
			if e != nil {
				return nil, e
			}
			Δγ := math.Abs(γnew[0]-γ[0]) / γ[0]
			γ = γnew
			if Δγ <= o.TolAlg {
				break
			}
		}

		// implied saturation pressure of the reference component
		var s float64
		for i := 0; i < o.nc; i++ {
			s += yy[i] * (φ[i] / φsat[i]) / γ[i] * (Psat[refComp] / Psat[i])
		}
		PsatRef := P * s
		Tnew, e := o.Comps[refComp].Tsat(PsatRef)
		if e != nil {
			return nil, e
		}
		ΔT := math.Abs(Tnew-T) / T
		T = Tnew
		if ΔT <= o.TolAlg {
			status = Converged
			break
		}
	}

	// consistent coefficients at the converged temperature
	if γ, err = o.Liq.Gamma(x, T); err != nil {
		return nil, err
	}
	if φ, err = o.Vap.Phi(yy, P, T); err != nil {
		return nil, err
	}

	return &Condition{
		P:      P,
		T:      T,
		Liquid: &Phase{Comp: x, CoefAct: γ},
		Vapor:  &Phase{Comp: yy, CoefFug: φ},
		Beta:   1.0,
		Status: status,
	}, nil
}
