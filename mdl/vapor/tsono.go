// Copyright 2016 The VLE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vapor

import (
	"math"

	"github.com/cpmech/gosl/utl"

	"github.com/ddss/VLE/species"
)

// tsonopoulos computes the second virial coefficient matrix following [2]:
//   B_ij = (R Tc_ij / Pc_ij) (f0 + ω_ij f1 + f2)
// with the reduced-temperature correlation functions f0, f1, f2, critical
// constants of the pairs from the combining rules with k_ij, and the
// association contribution f2 = a/Tr⁶ - b/Tr⁸ from per-functional-group
// parameters.
func (o *Virial) tsonopoulos(T float64) [][]float64 {
	nc := o.nc
	B := utl.Alloc(nc, nc)
	for i := 0; i < nc; i++ {
		for j := 0; j < nc; j++ {
			ci, cj := o.Comps[i], o.Comps[j]

			var Tcij, Pcij, wij, a, b float64
			if i == j {
				Tcij, Pcij, wij = ci.Tc, ci.Pc, ci.W
				a, b = assocTsono(ci)
			} else {
				Tcij = math.Sqrt(ci.Tc*cj.Tc) * (1.0 - o.Kij[i][j])
				v13 := (math.Cbrt(ci.Vc) + math.Cbrt(cj.Vc)) / 2.0
				Vcij := v13 * v13 * v13
				Zcij := (ci.Zc + cj.Zc) / 2.0
				Pcij = Zcij * species.Rgas * Tcij / Vcij
				wij = (ci.W + cj.W) / 2.0

				// pair class from the polarity tags; association only
				// survives in Polar-Polar pairs
				if ci.Polarity+"-"+cj.Polarity == "Polar-Polar" {
					ai, bi := assocTsono(ci)
					aj, bj := assocTsono(cj)
					a, b = (ai+aj)/2.0, (bi+bj)/2.0
				}
			}

			Tr := T / Tcij
			f0 := 0.1445 - 0.330/Tr - 0.1385/math.Pow(Tr, 2.0) - 0.0121/math.Pow(Tr, 3.0) - 0.000607/math.Pow(Tr, 8.0)
			f1 := 0.0637 + 0.331/math.Pow(Tr, 2.0) - 0.423/math.Pow(Tr, 3.0) - 0.008/math.Pow(Tr, 8.0)
			f2 := a/math.Pow(Tr, 6.0) - b/math.Pow(Tr, 8.0)

			B[i][j] = (species.Rgas * Tcij / Pcij) * (f0 + wij*f1 + f2)
		}
	}
	return B
}

// assocTsono returns the association parameters a, b of [2] for one
// component, looked up by its functional-group tag
func assocTsono(c *species.Species) (a, b float64) {
	μr := 1e5 * c.Dipole * c.Dipole * c.Pc / (c.Tc * c.Tc) // reduced dipole moment
	switch c.Group {
	case "Alcohol":
		return 0.0878, 0.00908 + 0.0006957*μr
	case "Methanol":
		return 0.0878, 0.0525
	case "Water":
		return -0.0109, 0.0
	}
	if c.Polarity == "Polar" {
		// polar, non-hydrogen-bonding
		return -2.14e-4*μr - 4.308e-21*math.Pow(μr, 8.0), 0.0
	}
	return 0.0, 0.0
}
