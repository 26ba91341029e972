// Copyright 2016 The VLE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/ddss/VLE/mdl/liquid"
	"github.com/ddss/VLE/mdl/vapor"
	"github.com/ddss/VLE/out"
	"github.com/ddss/VLE/species"
	"github.com/ddss/VLE/vle"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	algorithm := io.ArgToString(0, "BubbleP")
	T := io.ArgToFloat(1, 330.0)
	P := io.ArgToFloat(2, 1.01325)
	z1 := io.ArgToFloat(3, 0.5)
	doplot := io.ArgToBool(4, false)
	dirout := io.ArgToString(5, "/tmp/vle")
	verbose := io.ArgToBool(6, true)

	// message
	if verbose {
		io.PfWhite("\nVLE -- gamma-phi vapor-liquid equilibrium\n")
		io.Pf("Copyright 2016 The VLE Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"equilibrium algorithm", "algorithm", algorithm,
			"temperature [K]", "T", T,
			"pressure [bar]", "P", P,
			"acetone mole fraction", "z1", z1,
			"plot the Pxy diagram", "doplot", doplot,
			"directory for output", "dirout", dirout,
			"show messages", "verbose", verbose,
		))
	}

	// acetone(1)-methanol(2) system
	comps := []*species.Species{species.Acetone(), species.Methanol()}
	liq := &liquid.Uniquac{
		Comps: comps,
		Form:  liquid.Delta,
		A:     [][]float64{{0, -50.93}, {201.54, 0}},
	}
	if err := liq.Init(); err != nil {
		chk.Panic("cannot initialise the liquid model:\n%v", err)
	}
	vap := &vapor.Virial{
		Comps: comps,
		Rule:  vapor.HaydenOConnell,
		Eta:   [][]float64{{0.90, 1.00}, {1.00, 1.63}},
	}
	if err := vap.Init(); err != nil {
		chk.Panic("cannot initialise the vapor model:\n%v", err)
	}
	sol := &vle.Solver{
		Algorithm: algorithm,
		Comps:     comps,
		Liq:       liq,
		Vap:       vap,
		Z:         []float64{z1, 1.0 - z1},
		T:         T,
		P:         P,
	}
	if err := sol.Init(); err != nil {
		chk.Panic("cannot initialise the solver:\n%v", err)
	}

	// run selected algorithm
	if err := sol.Run(); err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
	report(sol)

	// Pxy diagram
	if doplot {
		res, err := sol.Predict("temperature")
		if err != nil {
			chk.Panic("prediction sweep failed:\n%v", err)
		}
		out.Draw(out.Pxy(res, T), dirout, io.Sf("pxy_T%g", T), false)
		if verbose {
			io.Pf("figure saved in %s\n", dirout)
		}
	}
}

// report prints the results of one run
func report(o *vle.Solver) {
	show := func(name string, c *vle.Condition) {
		io.Pf("\n%s point (%v)\n", name, c.Status)
		io.Pf("  P = %v bar\n", c.P)
		io.Pf("  T = %v K\n", c.T)
		if c.Liquid != nil {
			io.Pf("  x = %v\n", c.Liquid.Comp)
			io.Pf("  γ = %v\n", c.Liquid.CoefAct)
		}
		if c.Vapor != nil {
			io.Pf("  y = %v\n", c.Vapor.Comp)
			io.Pf("  φ = %v\n", c.Vapor.CoefFug)
		}
		io.Pf("  β = %v\n", c.Beta)
	}
	switch {
	case o.Bubble != nil:
		show("bubble", o.Bubble)
	case o.Dew != nil:
		show("dew", o.Dew)
	case o.Split != nil:
		show("flash", o.Split)
	case o.CoefAct != nil:
		io.Pf("\nγ = %v\n", o.CoefAct)
	case o.CoefFug != nil:
		io.Pf("\nφ = %v\n", o.CoefFug)
	}
}
