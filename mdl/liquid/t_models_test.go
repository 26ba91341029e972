// Copyright 2016 The VLE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package liquid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/ddss/VLE/species"
)

func verbose() {
	chk.Verbose = true
}

// unitComp returns a fictitious component with unit UNIQUAC sizes
func unitComp(name string) *species.Species {
	return &species.Species{Name: name, Tc: 500, Pc: 50, R: 1, Q: 1, Ql: 1, Form: species.FormWagner}
}

func Test_uniquac01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("uniquac01. ideal-solution boundary case")

	// equal interaction parameters and unit sizes must reduce to γ = 1
	mdl := Uniquac{
		Comps: []*species.Species{unitComp("A"), unitComp("B")},
		Form:  Delta,
		A:     [][]float64{{0, 0}, {0, 0}},
	}
	if err := mdl.Init(); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	γ, err := mdl.Gamma([]float64{0.3, 0.7}, 300.0)
	if err != nil {
		tst.Errorf("Gamma failed: %v\n", err)
		return
	}
	io.Pforan("γ = %v\n", γ)
	chk.Vector(tst, "γ", 1e-12, γ, []float64{1, 1})
}

func Test_uniquac02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("uniquac02. acetone-methanol. pure function and dilution limit")

	mdl := Uniquac{
		Comps: []*species.Species{species.Acetone(), species.Methanol()},
		Form:  Delta,
		A:     [][]float64{{0, -50.93}, {201.54, 0}},
	}
	if err := mdl.Init(); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "default z", 1e-15, mdl.Z, 10.0)

	// idempotence
	x := []float64{0.95, 0.05}
	γ1, err := mdl.Gamma(x, 330.0)
	if err != nil {
		tst.Errorf("Gamma failed: %v\n", err)
		return
	}
	γ2, _ := mdl.Gamma(x, 330.0)
	io.Pforan("γ = %v\n", γ1)
	chk.Vector(tst, "idempotence", 1e-17, γ1, γ2)

	// γ of the dominant component tends to 1
	γ, _ := mdl.Gamma([]float64{1.0 - 1e-9, 1e-9}, 330.0)
	chk.Scalar(tst, "γ1 → 1 as x1 → 1", 1e-6, γ[0], 1.0)
	γ, _ = mdl.Gamma([]float64{1e-9, 1.0 - 1e-9}, 330.0)
	chk.Scalar(tst, "γ2 → 1 as x2 → 1", 1e-6, γ[1], 1.0)

	// zero mole fraction is rejected
	if _, err := mdl.Gamma([]float64{1.0, 0.0}, 330.0); err == nil {
		tst.Errorf("Gamma must fail for a zero mole fraction\n")
	}
}

func Test_nrtl01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nrtl01. ideal limit and dilution limit")

	// zero interaction energies reduce to γ = 1
	mdl := Nrtl{
		NC:    2,
		Form:  Delta,
		A:     [][]float64{{0, 0}, {0, 0}},
		Alpha: [][]float64{{0, 0.3}, {0.3, 0}},
	}
	if err := mdl.Init(); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	γ, err := mdl.Gamma([]float64{0.4, 0.6}, 320.0)
	if err != nil {
		tst.Errorf("Gamma failed: %v\n", err)
		return
	}
	chk.Vector(tst, "γ ideal", 1e-12, γ, []float64{1, 1})

	// nonideal system: dilution limit
	mdl.A = [][]float64{{0, 4000.0}, {5500.0, 0}}
	γ, _ = mdl.Gamma([]float64{1.0 - 1e-9, 1e-9}, 320.0)
	io.Pforan("γ = %v\n", γ)
	chk.Scalar(tst, "γ1 → 1 as x1 → 1", 1e-6, γ[0], 1.0)
	if γ[1] <= 1.0 {
		tst.Errorf("positive-deviation system must have γ∞ > 1. γ=%v\n", γ)
	}
}

func Test_wilson01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("wilson01. ideal limit and dilution limit")

	// Λ = 1 reduces to γ = 1
	mdl := Wilson{NC: 2, Form: Tau, A: [][]float64{{1, 1}, {1, 1}}}
	if err := mdl.Init(); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	γ, err := mdl.Gamma([]float64{0.25, 0.75}, 350.0)
	if err != nil {
		tst.Errorf("Gamma failed: %v\n", err)
		return
	}
	chk.Vector(tst, "γ ideal", 1e-12, γ, []float64{1, 1})

	// nonpositive Λ is a configuration error
	bad := Wilson{NC: 2, Form: Tau, A: [][]float64{{1, -0.2}, {0.3, 1}}}
	if err := bad.Init(); err == nil {
		tst.Errorf("Init must reject nonpositive Λ\n")
	}

	// dilution limit with a nonideal Λ
	mdl = Wilson{NC: 2, Form: Tau, A: [][]float64{{1, 0.35}, {0.55, 1}}}
	if err := mdl.Init(); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	γ, _ = mdl.Gamma([]float64{1.0 - 1e-9, 1e-9}, 350.0)
	io.Pforan("γ = %v\n", γ)
	chk.Scalar(tst, "γ1 → 1 as x1 → 1", 1e-6, γ[0], 1.0)
}

func Test_vanlaar01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vanlaar01. binary-only closed form")

	mdl := VanLaar{A12: 3500.0, A21: 2900.0}
	if err := mdl.Init(); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	γ, err := mdl.Gamma([]float64{0.5, 0.5}, 330.0)
	if err != nil {
		tst.Errorf("Gamma failed: %v\n", err)
		return
	}
	io.Pforan("γ = %v\n", γ)
	if γ[0] <= 1.0 || γ[1] <= 1.0 {
		tst.Errorf("positive parameters must give γ > 1. γ=%v\n", γ)
	}

	// dilution limit
	γ, _ = mdl.Gamma([]float64{1.0 - 1e-9, 1e-9}, 330.0)
	chk.Scalar(tst, "γ1 → 1 as x1 → 1", 1e-6, γ[0], 1.0)

	// ternary composition is rejected
	if _, err := mdl.Gamma([]float64{0.3, 0.3, 0.4}, 330.0); err == nil {
		tst.Errorf("Gamma must fail for more than two components\n")
	}
}

func Test_vanlaar02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vanlaar02. parameters from name/value table")

	mdl := new(VanLaar)
	if err := mdl.SetPrms(mdl.GetPrms(true)); err != nil {
		tst.Errorf("SetPrms failed: %v\n", err)
		return
	}
	if err := mdl.Init(); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "A12", 1e-15, mdl.A12, 50000)
	chk.Scalar(tst, "A21", 1e-15, mdl.A21, 42000)
	if err := mdl.SetPrms(dbf.Params{&dbf.P{N: "b12", V: 1}}); err == nil {
		tst.Errorf("SetPrms should have failed with an unknown name\n")
		return
	}

	// coordination number of UNIQUAC through the same table mechanism
	uni := &Uniquac{
		Comps: []*species.Species{species.Acetone(), species.Methanol()},
		Form:  Delta,
		A:     [][]float64{{0, -50.93}, {201.54, 0}},
	}
	if err := uni.SetPrms(dbf.Params{&dbf.P{N: "z", V: 12}}); err != nil {
		tst.Errorf("SetPrms failed: %v\n", err)
		return
	}
	if err := uni.Init(); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "Z", 1e-15, uni.Z, 12)
}

func Test_liquiddb01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("liquiddb01. model database")

	for _, name := range []string{"uniquac", "nrtl", "wilson", "vanlaar"} {
		mdl, err := New(name)
		if err != nil {
			tst.Errorf("New(%q) failed: %v\n", name, err)
			return
		}
		io.Pf("%q => %s\n", name, mdl.Name())
	}
	if _, err := New("margules"); err == nil {
		tst.Errorf("New must fail for an unknown model\n")
	}
}
