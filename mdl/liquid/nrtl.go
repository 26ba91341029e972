// Copyright 2016 The VLE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package liquid

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/ddss/VLE/species"
)

// Nrtl implements the NRTL model [2] with the symmetric non-randomness
// matrix α and the interaction energies g.
type Nrtl struct {

	// input
	NC    int         // number of components
	Form  ParamsForm  // encoding of the interaction parameters
	A     [][]float64 // interaction-parameter matrix
	Alpha [][]float64 // non-randomness parameters

	// derived
	nc int
}

// add model to database
func init() {
	allocators["nrtl"] = func() Model { return new(Nrtl) }
}

// Init validates the parameters
func (o *Nrtl) Init() error {
	o.nc = o.NC
	if o.nc < 2 {
		return chk.Err("nrtl: at least two components are required")
	}
	if len(o.A) != o.nc || len(o.Alpha) != o.nc {
		return chk.Err("nrtl: parameter matrices must be %d x %d", o.nc, o.nc)
	}
	for i := 0; i < o.nc; i++ {
		if len(o.A[i]) != o.nc || len(o.Alpha[i]) != o.nc {
			return chk.Err("nrtl: parameter matrices must be %d x %d", o.nc, o.nc)
		}
	}
	switch o.Form {
	case Delta, Tau, Absolute:
	default:
		return chk.Err("nrtl: parameters form %d is invalid", o.Form)
	}
	return nil
}

// Name returns the model name
func (o *Nrtl) Name() string { return "NRTL" }

// tau computes the τ matrix according to the parameters encoding. In the
// Delta form the parameters are the interaction energies g [cm³·bar/mol].
func (o *Nrtl) tau(T float64) [][]float64 {
	τ := make([][]float64, o.nc)
	for i := 0; i < o.nc; i++ {
		τ[i] = make([]float64, o.nc)
		for j := 0; j < o.nc; j++ {
			switch o.Form {
			case Delta:
				τ[i][j] = o.A[i][j] / (species.Rgas * T)
			case Tau:
				τ[i][j] = o.A[i][j]
			case Absolute:
				τ[i][j] = (o.A[i][j] - o.A[j][j]) / (species.Rgas * T)
			}
		}
	}
	return τ
}

// Gamma computes the activity coefficients at x and T [K]
func (o *Nrtl) Gamma(x []float64, T float64) ([]float64, error) {
	if err := checkComposition("nrtl", x, o.nc); err != nil {
		return nil, err
	}
	τ := o.tau(T)
	G := make([][]float64, o.nc)
	for i := 0; i < o.nc; i++ {
		G[i] = make([]float64, o.nc)
		for j := 0; j < o.nc; j++ {
			G[i][j] = math.Exp(-o.Alpha[i][j] * τ[i][j])
		}
	}

	γ := make([]float64, o.nc)
	for i := 0; i < o.nc; i++ {

		// first term: Σ_j τ_ji G_ji x_j / Σ_k G_ki x_k
		var num, den float64
		for j := 0; j < o.nc; j++ {
			num += τ[j][i] * G[j][i] * x[j]
			den += G[j][i] * x[j]
		}
		lnγ := num / den

		// second term over j
		for j := 0; j < o.nc; j++ {
			var sG, sτG float64
			for k := 0; k < o.nc; k++ {
				sG += G[k][j] * x[k]
				sτG += x[k] * τ[k][j] * G[k][j]
			}
			lnγ += (x[j] * G[i][j] / sG) * (τ[i][j] - sτG/sG)
		}
		γ[i] = math.Exp(lnγ)
	}
	return γ, nil
}
