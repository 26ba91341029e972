// Copyright 2016 The VLE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package out builds phase diagrams from equilibrium predictions
package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/ddss/VLE/vle"
)

// PltEntity stores one curve of a phase diagram (X vs Y)
type PltEntity struct {
	Label string    // legend label
	X     []float64 // x-values
	Y     []float64 // y-values
	Style *plt.A    // style
}

// Diagram stores all curves and labels of one phase diagram
type Diagram struct {
	Title  string       // title
	Xlbl   string       // x-axis label (formatted; e.g. "$x_1,\\;y_1$")
	Ylbl   string       // y-axis label (formatted; e.g. "$P$ [bar]")
	Xrange []float64    // x range; nil means auto
	Data   []*PltEntity // curves
}

// Add appends one curve to the diagram
func (o *Diagram) Add(label string, x, y []float64, style *plt.A) {
	if style == nil {
		style = &plt.A{L: label}
	} else if style.L == "" {
		style.L = label
	}
	o.Data = append(o.Data, &PltEntity{Label: label, X: x, Y: y, Style: style})
}

// Pxy builds a pressure-composition diagram from a constant-temperature sweep
func Pxy(res *vle.Prediction, T float64) *Diagram {
	o := &Diagram{
		Title:  io.Sf("T = %g K", T),
		Xlbl:   "$x_1,\\;y_1$",
		Ylbl:   "$P$ [bar]",
		Xrange: []float64{0, 1},
	}
	o.Add("bubble", res.X1, res.BubP, &plt.A{C: "b", Ls: "-"})
	o.Add("dew", res.X1, res.DewP, &plt.A{C: "r", Ls: "-"})
	return o
}

// Txy builds a temperature-composition diagram from a constant-pressure sweep
func Txy(res *vle.Prediction, P float64) *Diagram {
	o := &Diagram{
		Title:  io.Sf("P = %g bar", P),
		Xlbl:   "$x_1,\\;y_1$",
		Ylbl:   "$T$ [K]",
		Xrange: []float64{0, 1},
	}
	o.Add("bubble", res.X1, res.BubT, &plt.A{C: "b", Ls: "-"})
	o.Add("dew", res.X1, res.DewT, &plt.A{C: "r", Ls: "-"})
	return o
}
