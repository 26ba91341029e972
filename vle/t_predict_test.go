// Copyright 2016 The VLE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vle

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_predict01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("predict01. Pxy sweep at constant temperature")

	o := acetoneMethanol(tst, "BubbleP", []float64{0.5, 0.5}, 330.0, 0)
	res, err := o.Predict("temperature")
	if err != nil {
		tst.Errorf("Predict failed: %v\n", err)
		return
	}
	n := len(res.X1)
	io.Pforan("points = %v\n", n)
	if n < 2000 {
		tst.Errorf("the sweep is too coarse: %d points\n", n)
		return
	}
	if len(res.BubP) != n || len(res.DewP) != n || len(res.BubY1) != n || len(res.DewX1) != n {
		tst.Errorf("curve lengths do not match the sweep\n")
		return
	}
	for k := 0; k < n; k++ {
		if res.BubP[k] <= 0 || res.DewP[k] <= 0 {
			tst.Errorf("pressures must be positive at x1=%g\n", res.X1[k])
			return
		}
		if res.DewP[k] > res.BubP[k]+1e-8 {
			tst.Errorf("dew pressure exceeds bubble pressure at x1=%g\n", res.X1[k])
			return
		}
	}

	// the dilute ends collapse onto the pure saturation pressures
	Pace, err := o.Comps[0].Psat(330.0)
	if err != nil {
		tst.Errorf("Psat failed: %v\n", err)
		return
	}
	Pmet, err := o.Comps[1].Psat(330.0)
	if err != nil {
		tst.Errorf("Psat failed: %v\n", err)
		return
	}
	io.Pforan("P(x1→0) = %v  Psat methanol = %v\n", res.BubP[0], Pmet)
	io.Pforan("P(x1→1) = %v  Psat acetone  = %v\n", res.BubP[n-1], Pace)
	chk.Scalar(tst, "pure methanol end", 1e-2, res.BubP[0], Pmet)
	chk.Scalar(tst, "pure acetone end", 1e-2, res.BubP[n-1], Pace)
}

func Test_predict02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("predict02. invalid sweeps are rejected")

	o := acetoneMethanol(tst, "BubbleP", []float64{0.5, 0.5}, 330.0, 1.0)
	if _, err := o.Predict("volume"); err == nil {
		tst.Errorf("Predict should have failed with an unknown constant\n")
		return
	}
}
