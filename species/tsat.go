// Copyright 2016 The VLE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package species

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
)

// Tsat computes the saturation temperature [K] corresponding to P [bar] by
// inverting the vapor-pressure correlation with a Newton iteration. For each
// correlation form the residual mirrors the forward evaluation in Psat.
func (o *Species) Tsat(P float64) (float64, error) {
	if P <= 0 {
		return 0, chk.Err("species: %s: Tsat requires positive pressure. P=%g", o.Name, P)
	}
	var res func(T float64) float64
	switch o.Form {
	case FormWagner:
		res = func(T float64) float64 {
			x := 1.0 - T/o.Tc
			return (o.VPA*x+o.VPB*math.Pow(x, 1.5)+o.VPC*math.Pow(x, 3.0)+o.VPD*math.Pow(x, 6.0))/(1.0-x) - math.Log(P/o.Pc)
		}
	case FormImplicit:
		res = func(T float64) float64 {
			return o.VPA - o.VPB/T + o.VPC*math.Log(T) + o.VPD*P/(T*T) - math.Log(P)
		}
	case FormAntoine:
		res = func(T float64) float64 {
			return o.VPA - o.VPB/(T+o.VPC) - math.Log(P)
		}
	default:
		return 0, chk.Err("species: %s: Psat equation form %d is invalid", o.Name, o.Form)
	}

	// the Wagner form is only defined below Tc; pull the initial estimate
	// inside the domain before iterating
	T0 := tsatGuess
	if o.Form == FormWagner && T0 >= o.Tc {
		T0 = 0.7 * o.Tc
	}
	T, err := newton(res, T0, tolNewton, maxitNwt)
	if err != nil {
		return 0, chk.Err("species: %s: Tsat iteration at P=%g failed: %v", o.Name, P, err)
	}
	return T, nil
}

// newton finds a root of f using Newton's method with a numerically
// estimated derivative
func newton(f func(x float64) float64, x0, tol float64, maxit int) (float64, error) {
	x := x0
	for it := 0; it < maxit; it++ {
		fx := f(x)
		if math.Abs(fx) < tol {
			return x, nil
		}
		h := 1e-6 * math.Max(math.Abs(x), 1.0)
		dfdx, err := num.DerivCen5(x, h, func(y float64) (float64, error) {
			return f(y), nil
		})
		if err != nil {
			return 0, err
		}
		if dfdx == 0 {
			return 0, chk.Err("newton: vanishing derivative at x=%g after %d iterations", x, it)
		}
		x -= fx / dfdx
	}
	return 0, chk.Err("newton: max number of iterations (%d) reached. residual=%g", maxit, math.Abs(f(x)))
}
