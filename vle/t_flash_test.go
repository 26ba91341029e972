// Copyright 2016 The VLE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vle

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/ddss/VLE/species"
)

// constCoef returns fixed coefficients for both phases; it pins the K-values
// of an iteration to a chosen spread regardless of composition
type constCoef struct {
	γ []float64
	φ []float64
}

func (o *constCoef) Init() error { return nil }

func (o *constCoef) Name() string { return "const" }

func (o *constCoef) Gamma(x []float64, T float64) ([]float64, error) { return o.γ, nil }

func (o *constCoef) Phi(y []float64, P, T float64) ([]float64, error) { return o.φ, nil }

func Test_flash01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flash01. two-phase split inside the envelope")

	z := []float64{0.5, 0.5}
	T := 330.0
	o := acetoneMethanol(tst, "Flash", z, T, 0)
	bub, err := o.BubbleP(z, T)
	if err != nil {
		tst.Errorf("BubbleP failed: %v\n", err)
		return
	}
	dew, err := o.DewP(z, T)
	if err != nil {
		tst.Errorf("DewP failed: %v\n", err)
		return
	}
	P := 0.5 * (bub.P + dew.P)
	io.Pforan("dew P = %v  flash P = %v  bubble P = %v\n", dew.P, P, bub.P)

	s, err := o.Flash(z, T, P)
	if err != nil {
		tst.Errorf("Flash failed: %v\n", err)
		return
	}
	io.Pforan("β = %v\n", s.Beta)
	io.Pforan("x = %v\n", s.Liquid.Comp)
	io.Pforan("y = %v\n", s.Vapor.Comp)
	if s.Status != Converged {
		tst.Errorf("status is %v, want %v\n", s.Status, Converged)
		return
	}
	if s.Beta <= 0 || s.Beta >= 1 {
		tst.Errorf("vapor fraction %g must lie inside (0,1)\n", s.Beta)
		return
	}

	// component balance and phase enrichment
	for i := 0; i < 2; i++ {
		mix := (1.0-s.Beta)*s.Liquid.Comp[i] + s.Beta*s.Vapor.Comp[i]
		chk.Scalar(tst, io.Sf("balance %d", i), 1e-4, mix, z[i])
	}
	if s.Vapor.Comp[0] <= s.Liquid.Comp[0] {
		tst.Errorf("the vapor must be richer in acetone: y1=%g x1=%g\n", s.Vapor.Comp[0], s.Liquid.Comp[0])
		return
	}
}

func Test_flash02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flash02. infeasible pressures are rejected")

	z := []float64{0.5, 0.5}
	o := acetoneMethanol(tst, "Flash", z, 330.0, 0)

	// well above the bubble pressure: the feed stays liquid
	s, err := o.Flash(z, 330.0, 3.0)
	if err == nil {
		tst.Errorf("Flash should have failed above the bubble pressure\n")
		return
	}
	io.Pforan("error: %v\n", err)
	if s == nil || s.Status != NotFeasible {
		tst.Errorf("status must report the infeasible condition\n")
		return
	}

	// far below the dew pressure: the feed stays vapor
	s, err = o.Flash(z, 330.0, 0.01)
	if err == nil {
		tst.Errorf("Flash should have failed below the dew pressure\n")
		return
	}
	if s == nil || s.Status != NotFeasible {
		tst.Errorf("status must report the infeasible condition\n")
		return
	}
}

func Test_flash03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flash03. cycling vapor-fraction steps are reported")

	comps := []*species.Species{species.Acetone(), species.Methanol()}
	T, P := 330.0, 1.0
	Pa, err := comps[0].Psat(T)
	if err != nil {
		tst.Errorf("Psat failed: %v\n", err)
		return
	}
	Pb, err := comps[1].Psat(T)
	if err != nil {
		tst.Errorf("Psat failed: %v\n", err)
		return
	}

	// K = [200, 0.5] with a dilute light component: the Newton step from
	// β = 0.5 always lands outside [0,1], so every pass is a reset
	mdl := &constCoef{
		γ: []float64{200.0 * P / Pa, 0.5 * P / Pb},
		φ: []float64{1.0, 1.0},
	}
	o := &Solver{
		Algorithm: "Flash",
		Comps:     comps,
		Liq:       mdl,
		Vap:       mdl,
		Z:         []float64{0.02, 0.98},
		T:         T,
		P:         P,
	}
	if err := o.Init(); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	s, err := o.Flash(o.Z, T, P)
	if err != nil {
		tst.Errorf("Flash failed: %v\n", err)
		return
	}
	io.Pforan("status = %v\n", s.Status)
	if s.Status != Oscillating {
		tst.Errorf("status is %v, want %v\n", s.Status, Oscillating)
		return
	}
}
