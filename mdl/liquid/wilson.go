// Copyright 2016 The VLE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package liquid

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Wilson implements the Wilson model [3]. The Λ parameters are strictly
// positive; in the Tau form they are stored directly, in the Delta form
// they follow from the energy differences: Λ_ij = exp(-a_ij/T), a in K.
type Wilson struct {

	// input
	NC   int         // number of components
	Form ParamsForm  // encoding of the interaction parameters
	A    [][]float64 // interaction-parameter matrix

	// derived
	nc int
}

// add model to database
func init() {
	allocators["wilson"] = func() Model { return new(Wilson) }
}

// Init validates the parameters
func (o *Wilson) Init() error {
	o.nc = o.NC
	if o.nc < 2 {
		return chk.Err("wilson: at least two components are required")
	}
	if len(o.A) != o.nc {
		return chk.Err("wilson: parameter matrix must be %d x %d", o.nc, o.nc)
	}
	for i := 0; i < o.nc; i++ {
		if len(o.A[i]) != o.nc {
			return chk.Err("wilson: parameter matrix must be %d x %d", o.nc, o.nc)
		}
	}
	switch o.Form {
	case Delta:
	case Tau:
		for i := 0; i < o.nc; i++ {
			for j := 0; j < o.nc; j++ {
				if o.A[i][j] <= 0 {
					return chk.Err("wilson: Λ[%d][%d]=%g must be strictly positive", i, j, o.A[i][j])
				}
			}
		}
	default:
		return chk.Err("wilson: parameters form %d is invalid", o.Form)
	}
	return nil
}

// Name returns the model name
func (o *Wilson) Name() string { return "Wilson" }

// lam computes the Λ matrix according to the parameters encoding
func (o *Wilson) lam(T float64) [][]float64 {
	Λ := make([][]float64, o.nc)
	for i := 0; i < o.nc; i++ {
		Λ[i] = make([]float64, o.nc)
		for j := 0; j < o.nc; j++ {
			switch o.Form {
			case Delta:
				Λ[i][j] = math.Exp(-o.A[i][j] / T)
			case Tau:
				Λ[i][j] = o.A[i][j]
			}
		}
	}
	return Λ
}

// Gamma computes the activity coefficients at x and T [K]
func (o *Wilson) Gamma(x []float64, T float64) ([]float64, error) {
	if err := checkComposition("wilson", x, o.nc); err != nil {
		return nil, err
	}
	Λ := o.lam(T)
	γ := make([]float64, o.nc)
	for k := 0; k < o.nc; k++ {
		var s1 float64
		for j := 0; j < o.nc; j++ {
			s1 += Λ[k][j] * x[j]
		}
		var s2 float64
		for i := 0; i < o.nc; i++ {
			var s3 float64
			for j := 0; j < o.nc; j++ {
				s3 += Λ[i][j] * x[j]
			}
			s2 += x[i] * Λ[i][k] / s3
		}
		γ[k] = math.Exp(-math.Log(s1) + 1.0 - s2)
	}
	return γ, nil
}
