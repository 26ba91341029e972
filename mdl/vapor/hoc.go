// Copyright 2016 The VLE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vapor

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// polarLimit is the dipole moment [D] above which the Hayden-O'Connell
// polarity correction applies
const polarLimit = 1.45

// haydenOConnell computes the second virial coefficient matrix following [1].
// The pure and cross energy (ε/k) and size (σ) parameters come from the
// radius of gyration, critical constants and acentric factor; the η matrix
// carries self-association (i=j) and solvation (i≠j); B sums a free-molecule
// term (nonpolar + polar), a metastable/bound term and a chemical
// (dimerization) term gated by η.
func (o *Virial) haydenOConnell(T float64) [][]float64 {
	nc := o.nc
	ek := utl.Alloc(nc, nc)
	σ := utl.Alloc(nc, nc)
	w := utl.Alloc(nc, nc)
	ekl := utl.Alloc(nc, nc)
	σl := utl.Alloc(nc, nc)

	// pure parameters
	for i := 0; i < nc; i++ {
		c := o.Comps[i]
		rg := c.RadGyr
		w[i][i] = 0.006026*rg + 0.02096*rg*rg - 0.001366*rg*rg*rg
		σl[i][i] = (2.4507 - w[i][i]) * math.Pow(1.0133*c.Tc/c.Pc, 1.0/3.0)
		ekl[i][i] = c.Tc * (0.748 + 0.91*w[i][i] - 0.4*o.Eta[i][i]/(2.0+20.0*w[i][i]))

		var ξ float64
		if c.Dipole >= polarLimit {
			den1 := 2.882 - 1.882*w[i][i]/(0.03+w[i][i])
			den2 := c.Tc * math.Pow(σl[i][i], 6.0) * ekl[i][i]
			ξ = 1.7941e7 * math.Pow(c.Dipole, 4.0) / (den1 * den2)
		}
		c1 := (16.0 + 400.0*w[i][i]) / (10.0 + 400.0*w[i][i])
		c2 := 3.0 / (10.0 + 400.0*w[i][i])
		ek[i][i] = ekl[i][i] * (1.0 - ξ*c1*(1.0-ξ*(1.0+c1)/2.0))
		σ[i][i] = σl[i][i] * math.Pow(1.0+ξ*c2, 1.0/3.0)
	}

	// cross parameters
	for i := 0; i < nc; i++ {
		for j := 0; j < nc; j++ {
			if i == j {
				continue
			}
			ci, cj := o.Comps[i], o.Comps[j]
			w[i][j] = 0.5 * (w[i][i] + w[j][j])
			σl[i][j] = math.Sqrt(σ[i][i] * σ[j][j])
			ekl[i][j] = 0.7*math.Sqrt(ek[i][i]*ek[j][j]) + 0.6/(1.0/ek[i][i]+1.0/ek[j][j])

			var ξ float64
			switch {
			case ci.Dipole >= 2.0 && cj.Dipole == 0.0:
				ξ = ci.Dipole * ci.Dipole * math.Pow(ek[j][j], 2.0/3.0) * math.Pow(σ[j][j], 4.0) / (ekl[i][j] * math.Pow(σl[i][j], 6.0))
			case cj.Dipole >= 2.0 && ci.Dipole == 0.0:
				ξ = cj.Dipole * cj.Dipole * math.Pow(ek[i][i], 2.0/3.0) * math.Pow(σ[i][i], 4.0) / (ekl[i][j] * math.Pow(σl[i][j], 6.0))
			}
			c1 := (16.0 + 400.0*w[i][j]) / (10.0 + 400.0*w[i][j])
			c2 := 3.0 / (10.0 + 400.0*w[i][j])
			ek[i][j] = ekl[i][j] * (1.0 + ξ*c1)
			σ[i][j] = σl[i][j] * math.Pow(1.0-ξ*c2, 1.0/3.0)
		}
	}

	// temperature-independent terms
	B := utl.Alloc(nc, nc)
	for i := 0; i < nc; i++ {
		for j := 0; j < nc; j++ {

			// reduced dipole moment, capped per [1]
			μast := 7243.8 * o.Comps[i].Dipole * o.Comps[j].Dipole / (ek[i][j] * math.Pow(σ[i][j], 3.0))
			μastl := μast
			switch {
			case μast >= 0.25:
				μastl = μast - 0.25
			case μast >= 0.04:
				μastl = 0.0
			}
			b0 := 1.26184 * math.Pow(σ[i][j], 3.0)
			A := -0.3 - 0.05*μast
			Δh := 1.99 + 0.20*μast*μast

			var E float64
			if o.Eta[i][j] < 4.5 {
				E = math.Exp(o.Eta[i][j] * (650.0/(ek[i][j]+300.0) - 4.27))
			} else {
				E = math.Exp(o.Eta[i][j] * (42800.0/(ek[i][j]+22400.0) - 4.27))
			}

			// temperature-dependent terms
			Tast := T / ek[i][j]
			Tastll := 1.0/Tast - 1.6*w[i][j]

			BFnonpolar := b0 * (0.94 - 1.47*Tastll - 0.85*Tastll*Tastll + 1.015*Tastll*Tastll*Tastll)
			BFpolar := -b0 * μastl * (0.74 - 3.0*Tastll + 2.1*Tastll*Tastll + 2.1*Tastll*Tastll*Tastll)
			Bbound := b0 * A * math.Exp(Δh/Tast)
			Bchem := b0 * E * (1.0 - math.Exp(1500.0*o.Eta[i][j]/T))

			B[i][j] = BFnonpolar + BFpolar + Bbound + Bchem
		}
	}
	return B
}
