// Copyright 2016 The VLE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/ddss/VLE/vle"
)

func verbose() {
	chk.Verbose = true
}

func Test_plot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot01. Pxy and Txy diagrams")

	res := &vle.Prediction{
		X1:   utl.LinSpace(0.01, 0.99, 11),
		BubP: utl.LinSpace(0.8, 1.1, 11),
		DewP: utl.LinSpace(0.7, 1.0, 11),
		BubT: utl.LinSpace(337.0, 330.0, 11),
		DewT: utl.LinSpace(339.0, 331.0, 11),
	}

	pxy := Pxy(res, 330.0)
	if len(pxy.Data) != 2 {
		tst.Errorf("Pxy must carry the bubble and dew curves\n")
		return
	}
	chk.Vector(tst, "bubble curve", 1e-15, pxy.Data[0].Y, res.BubP)
	chk.Vector(tst, "dew curve", 1e-15, pxy.Data[1].Y, res.DewP)

	txy := Txy(res, 1.01325)
	if len(txy.Data) != 2 {
		tst.Errorf("Txy must carry the bubble and dew curves\n")
		return
	}
	if txy.Data[0].Style.L != "bubble" || txy.Data[1].Style.L != "dew" {
		tst.Errorf("curve labels are wrong\n")
		return
	}

	if chk.Verbose {
		Draw(pxy, "/tmp/vle", "test_plot01", false)
	}
}
