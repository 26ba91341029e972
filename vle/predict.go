// Copyright 2016 The VLE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vle

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Prediction holds phase-envelope curves computed over a sweep of the
// first-component mole fraction of a binary system. The pressure curves are
// filled when the sweep runs at constant temperature and the temperature
// curves when it runs at constant pressure.
type Prediction struct {
	X1    []float64 // first-component mole fraction sweep
	BubP  []float64 // bubble pressure at each X1 [bar]
	DewP  []float64 // dew pressure at each X1 [bar]
	BubT  []float64 // bubble temperature at each X1 [K]
	DewT  []float64 // dew temperature at each X1 [K]
	BubY1 []float64 // vapor first-component fraction at the bubble points
	DewX1 []float64 // liquid first-component fraction at the dew points
}

// sweepGrid builds the composition sweep. The dilute ends get a finer
// resolution than the middle of the diagram.
func sweepGrid() (grid []float64) {
	lo := utl.LinSpace(1e-6, 0.1, 1000)
	mi := utl.LinSpace(0.1, 0.9, 500)
	hi := utl.LinSpace(0.9, 1.0-1e-6, 1000)
	grid = append(grid, lo...)
	grid = append(grid, mi[1:]...)
	grid = append(grid, hi[1:]...)
	return
}

// Predict computes the bubble and dew curves of a binary system over a
// composition sweep. constant selects the fixed variable:
//   "temperature" -- Pxy diagram at o.T, pressures are computed
//   "pressure"    -- Txy diagram at o.P, temperatures are computed
func (o *Solver) Predict(constant string) (*Prediction, error) {
	if o.nc != 2 {
		return nil, chk.Err("vle: prediction sweeps are available for binary systems only. nc=%d is invalid", o.nc)
	}
	if constant != "temperature" && constant != "pressure" {
		return nil, chk.Err("vle: constant %q is not available in prediction sweeps. options: temperature, pressure", constant)
	}
	grid := sweepGrid()
	n := len(grid)
	res := &Prediction{
		X1:    grid,
		BubY1: make([]float64, n),
		DewX1: make([]float64, n),
	}
	if constant == "temperature" {
		res.BubP = make([]float64, n)
		res.DewP = make([]float64, n)
	} else {
		res.BubT = make([]float64, n)
		res.DewT = make([]float64, n)
	}
	z := make([]float64, 2)
	for k, x1 := range grid {
		z[0], z[1] = x1, 1.0-x1
		var bub, dew *Condition
		var err error
		if constant == "temperature" {
			bub, err = o.BubbleP(z, o.T)
			if err != nil {
				return nil, chk.Err("vle: prediction failed at x1=%g: %v", x1, err)
			}
			dew, err = o.DewP(z, o.T)
			if err != nil {
				return nil, chk.Err("vle: prediction failed at y1=%g: %v", x1, err)
			}
			res.BubP[k] = bub.P
			res.DewP[k] = dew.P
		} else {
			bub, err = o.BubbleT(z, o.P)
			if err != nil {
				return nil, chk.Err("vle: prediction failed at x1=%g: %v", x1, err)
			}
			dew, err = o.DewT(z, o.P)
			if err != nil {
				return nil, chk.Err("vle: prediction failed at y1=%g: %v", x1, err)
			}
			res.BubT[k] = bub.T
			res.DewT[k] = dew.T
		}
		res.BubY1[k] = bub.Vapor.Comp[0]
		res.DewX1[k] = dew.Liquid.Comp[0]
	}
	return res, nil
}
