// Copyright 2016 The VLE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package liquid

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/ddss/VLE/species"
)

// Uniquac implements the UNIQUAC model [1]: a combinatorial (entropic)
// contribution from the component size parameters r, q, q′ plus a residual
// (enthalpic) contribution from the binary interaction parameters.
type Uniquac struct {

	// input
	Comps []*species.Species // component records (read-only)
	Form  ParamsForm         // encoding of the interaction parameters
	A     [][]float64        // interaction-parameter matrix
	Z     float64            // lattice coordination number

	// derived
	nc int // number of components
}

// add model to database
func init() {
	allocators["uniquac"] = func() Model { return new(Uniquac) }
}

// Init validates the parameters. The coordination number defaults to 10.
func (o *Uniquac) Init() error {
	o.nc = len(o.Comps)
	if o.nc < 2 {
		return chk.Err("uniquac: at least two components are required")
	}
	if o.Z == 0 {
		o.Z = 10.0
	}
	if len(o.A) != o.nc {
		return chk.Err("uniquac: interaction-parameter matrix must be %d x %d", o.nc, o.nc)
	}
	for i := 0; i < o.nc; i++ {
		if len(o.A[i]) != o.nc {
			return chk.Err("uniquac: interaction-parameter matrix must be %d x %d", o.nc, o.nc)
		}
	}
	switch o.Form {
	case Delta, Tau, Absolute:
	default:
		return chk.Err("uniquac: parameters form %d is invalid", o.Form)
	}
	return nil
}

// SetPrms sets scalar parameters from a name/value table. Matrices stay as
// explicit fields.
func (o *Uniquac) SetPrms(prms dbf.Params) error {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "z":
			o.Z = p.V
		default:
			return chk.Err("uniquac: parameter named %q is incorrect", p.N)
		}
	}
	return nil
}

// Name returns the model name
func (o *Uniquac) Name() string { return "UNIQUAC" }

// tau computes the τ matrix according to the parameters encoding
func (o *Uniquac) tau(T float64) [][]float64 {
	τ := make([][]float64, o.nc)
	for i := 0; i < o.nc; i++ {
		τ[i] = make([]float64, o.nc)
		for j := 0; j < o.nc; j++ {
			switch o.Form {
			case Delta:
				τ[i][j] = math.Exp(-o.A[i][j] / T)
			case Tau:
				τ[i][j] = o.A[i][j]
			case Absolute:
				τ[i][j] = math.Exp(-(o.A[i][j] - o.A[j][j]) / T)
			}
		}
	}
	return τ
}

// Gamma computes the activity coefficients at x and T [K]
func (o *Uniquac) Gamma(x []float64, T float64) ([]float64, error) {
	if err := checkComposition("uniquac", x, o.nc); err != nil {
		return nil, err
	}
	τ := o.tau(T)

	// size and area fractions
	var sr, sq, sql, sxl float64
	for j := 0; j < o.nc; j++ {
		sr += o.Comps[j].R * x[j]
		sq += o.Comps[j].Q * x[j]
		sql += o.Comps[j].Ql * x[j]
	}
	φ := make([]float64, o.nc)
	θ := make([]float64, o.nc)
	θl := make([]float64, o.nc)
	l := make([]float64, o.nc)
	for i := 0; i < o.nc; i++ {
		φ[i] = o.Comps[i].R * x[i] / sr
		θ[i] = o.Comps[i].Q * x[i] / sq
		θl[i] = o.Comps[i].Ql * x[i] / sql
		l[i] = (o.Z/2.0)*(o.Comps[i].R-o.Comps[i].Q) - (o.Comps[i].R - 1.0)
		sxl += x[i] * l[i]
	}

	// residual auxiliary term
	A := make([]float64, o.nc)
	for i := 0; i < o.nc; i++ {
		for j := 0; j < o.nc; j++ {
			var den float64
			for k := 0; k < o.nc; k++ {
				den += θl[k] * τ[k][j]
			}
			A[i] += θl[j] * τ[i][j] / den
		}
		A[i] *= o.Comps[i].Ql
	}

	// combinatorial + residual contributions
	γ := make([]float64, o.nc)
	for i := 0; i < o.nc; i++ {
		comb := math.Log(φ[i]/x[i]) + (o.Z/2.0)*o.Comps[i].Q*math.Log(θ[i]/φ[i]) + l[i] - (φ[i]/x[i])*sxl
		var sum float64
		for j := 0; j < o.nc; j++ {
			sum += θl[j] * τ[j][i]
		}
		resid := -o.Comps[i].Ql*math.Log(sum) + o.Comps[i].Ql - A[i]
		γ[i] = math.Exp(comb + resid)
	}
	return γ, nil
}
