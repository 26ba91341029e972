// Copyright 2016 The VLE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package species

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// constants for the Newton iterations on the vapor-pressure correlations
const (
	pvpGuess  = 1.01325 // initial estimate for the implicit Psat form [bar]
	tsatGuess = 500.0   // initial estimate for saturation-temperature inversion [K]
	tolNewton = 1e-10   // residual tolerance
	maxitNwt  = 100     // iteration cap
)

// Psat computes the saturation pressure [bar] at T [K] using the correlation
// form stored in the record. See [1].
func (o *Species) Psat(T float64) (float64, error) {
	o.checkRange(T)
	switch o.Form {

	// Wagner equation
	case FormWagner:
		if T >= o.Tc {
			return 0, chk.Err("species: %s: Psat form %d requires T < Tc. T=%g, Tc=%g", o.Name, o.Form, T, o.Tc)
		}
		x := 1.0 - T/o.Tc
		return o.Pc * math.Exp((o.VPA*x+o.VPB*math.Pow(x, 1.5)+o.VPC*math.Pow(x, 3.0)+o.VPD*math.Pow(x, 6.0))/(1.0-x)), nil

	// implicit equation; the residual mirrors the forward evaluation in [1]
	case FormImplicit:
		res := func(Pvp float64) float64 {
			return o.VPA - o.VPB/T + o.VPC*math.Log(T) + o.VPD*Pvp/(T*T) - math.Log(Pvp)
		}
		Pvp, err := newton(res, pvpGuess, tolNewton, maxitNwt)
		if err != nil {
			return 0, chk.Err("species: %s: implicit Psat iteration failed: %v", o.Name, err)
		}
		return Pvp, nil

	// Antoine equation
	case FormAntoine:
		return math.Exp(o.VPA - o.VPB/(T+o.VPC)), nil
	}
	return 0, chk.Err("species: %s: Psat equation form %d is invalid", o.Name, o.Form)
}
