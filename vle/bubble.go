// Copyright 2016 The VLE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vle

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// refComp is the component used to back-substitute the implied saturation
// pressure in the temperature iterations. Fixed to the second component:
// valid for binary systems only.
const refComp = 1

// BubbleP computes the bubble point for a known liquid composition x and
// temperature T [K]: the unknowns are the pressure and the vapor
// composition. Fixed-point scheme from [1]:
//   P = Σ x_i γ_i Psat_i φsat_i / φ_i
// alternating with the vapor-model update of φ(y, P, T).
func (o *Solver) BubbleP(x []float64, T float64) (*Condition, error) {

	xx := clone(x)
	normalize(xx)

	γ, err := o.Liq.Gamma(xx, T)
	if err != nil {
		return nil, err
	}
	φsat, Psat, err := o.PhiSat(T)
	if err != nil {
		return nil, err
	}

	φ := clone(o.EstPhi)
	y := make([]float64, o.nc)
	var P, Pold float64
	status := MaxIterReached
	for it := 0; it < o.MaxIt; it++ {

		P = 0
		for i := 0; i < o.nc; i++ {
			P += xx[i] * γ[i] * Psat[i] * φsat[i] / φ[i]
		}
		for i := 0; i < o.nc; i++ {
			y[i] = xx[i] * γ[i] * Psat[i] * φsat[i] / (φ[i] * P)
		}
		normalize(y)

		if φ, err = o.Vap.Phi(y, P, T); err != nil {
			return nil, err
		}

		// the first pass has no previous pressure to compare against
		if it > 0 && math.Abs(P-Pold) <= o.TolAlg {
			status = Converged
			break
		}
		Pold = P
	}

	return &Condition{
		P:      P,
		T:      T,
		Liquid: &Phase{Comp: xx, CoefAct: γ},
		Vapor:  &Phase{Comp: y, CoefFug: φ},
		Beta:   0.0,
		Status: status,
	}, nil
}

// BubbleT computes the bubble point for a known liquid composition x and
// pressure P [bar]: the unknowns are the temperature and the vapor
// composition. The initial temperature is the mole-weighted average of the
// pure saturation temperatures at P; each pass back-solves the implied
// saturation pressure of the reference component and re-inverts it into an
// updated temperature ([2], binary systems only).
func (o *Solver) BubbleT(x []float64, P float64) (*Condition, error) {

	if err := o.checkBinary("BubbleT"); err != nil {
		return nil, err
	}
	xx := clone(x)
	normalize(xx)

	// initial temperature estimate
	var T float64
	for i := 0; i < o.nc; i++ {
		Ti, err := o.Comps[i].Tsat(P)
		if err != nil {
			return nil, err
		}
		T += xx[i] * Ti
	}

	φ := clone(o.EstPhi)
	γ := clone(o.EstGamma)
	y := make([]float64, o.nc)
	var φsat, Psat []float64
	var err error
	status := MaxIterReached
	for it := 0; it < o.MaxIt; it++ {

		if γ, err = o.Liq.Gamma(xx, T); err != nil {
			return nil, err
		}
		if φsat, Psat, err = o.PhiSat(T); err != nil {
			return nil, err
		}

		for i := 0; i < o.nc; i++ {
			y[i] = xx[i] * γ[i] * Psat[i] * φsat[i] / (φ[i] * P)
		}
		normalize(y)
		if φ, err = o.Vap.Phi(y, P, T); err != nil {
			return nil, err
		}

		// implied saturation pressure of the reference component
		var s float64
		for i := 0; i < o.nc; i++ {
			s += xx[i] * γ[i] * (φsat[i] / φ[i]) * (Psat[i] / Psat[refComp])
		}
		PsatRef := P / s
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
	if γ, err = o.Liq.Gamma(xx, T); err != nil {
		return nil, err
	}
	if φ, err = o.Vap.Phi(y, P, T); err != nil {
		return nil, err
	}

	return &Condition{
		P:      P,
		T:      T,
		Liquid: &Phase{Comp: xx, CoefAct: γ},
		Vapor:  &Phase{Comp: y, CoefFug: φ},
		Beta:   0.0,
		Status: status,
	}, nil
}

// clone returns a copy of v
func clone(v []float64) []float64 {
	w := make([]float64, len(v))
	copy(w, v)
	return w
}

// maxRelDiff returns the largest relative difference between a and b
func maxRelDiff(a, b []float64) float64 {
	var m float64
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if b[i] != 0 {
			d /= math.Abs(b[i])
		}
		m = math.Max(m, d)
	}
	return m
}

// checkBinary returns an error when the temperature iterations are asked to
// run with more than two components
func (o *Solver) checkBinary(op string) error {
	if o.nc != 2 {
		return chk.Err("vle: %s is restricted to binary systems. nc=%d", op, o.nc)
	}
	return nil
}
