// Copyright 2016 The VLE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vapor

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/ddss/VLE/species"
)

// MixRule identifies the correlation used for the second virial coefficient
type MixRule int

const (
	HaydenOConnell MixRule = 1 // Hayden-O'Connell [1]
	Tsonopoulos    MixRule = 2 // Tsonopoulos [2]
)

// Virial implements the pressure-truncated virial equation of state. The
// second coefficient matrix B comes from one of two correlations selected
// by the mixing-rule tag. The equation is only locally valid at moderate
// pressures; Phi emits an advisory above a coarse limit.
type Virial struct {

	// input
	Comps []*species.Species // component records (read-only)
	Rule  MixRule            // mixing rule
	Eta   [][]float64        // Hayden-O'Connell association (i=j) / solvation (i≠j) parameters
	Kij   [][]float64        // Tsonopoulos binary interaction coefficients

	// derived
	nc int
}

// add model to database
func init() {
	allocators["virial"] = func() Model { return new(Virial) }
}

// Init validates the parameters
func (o *Virial) Init() error {
	o.nc = len(o.Comps)
	if o.nc < 1 {
		return chk.Err("virial: at least one component is required")
	}
	switch o.Rule {
	case HaydenOConnell:
		if err := o.checkMatrix("Eta", o.Eta); err != nil {
			return err
		}
	case Tsonopoulos:
		if err := o.checkMatrix("Kij", o.Kij); err != nil {
			return err
		}
	default:
		return chk.Err("virial: mixing rule %d is not available. rules: %d (Hayden-O'Connell), %d (Tsonopoulos)", o.Rule, HaydenOConnell, Tsonopoulos)
	}
	return nil
}

func (o *Virial) checkMatrix(name string, m [][]float64) error {
	if len(m) != o.nc {
		return chk.Err("virial: %s matrix must be %d x %d", name, o.nc, o.nc)
	}
	for i := 0; i < o.nc; i++ {
		if len(m[i]) != o.nc {
			return chk.Err("virial: %s matrix must be %d x %d", name, o.nc, o.nc)
		}
	}
	return nil
}

// Name returns the model name
func (o *Virial) Name() string { return "Virial" }

// SecondVirial computes the second virial coefficient matrix B [cm³/mol]
// at T [K] using the selected mixing rule
func (o *Virial) SecondVirial(T float64) ([][]float64, error) {
	switch o.Rule {
	case HaydenOConnell:
		return o.haydenOConnell(T), nil
	case Tsonopoulos:
		return o.tsonopoulos(T), nil
	}
	return nil, chk.Err("virial: mixing rule %d is invalid", o.Rule)
}

// Phi computes the vapor-phase fugacity coefficients at y, P [bar], T [K]
func (o *Virial) Phi(y []float64, P, T float64) ([]float64, error) {
	if len(y) != o.nc {
		return nil, chk.Err("virial: composition size %d differs from number of components %d", len(y), o.nc)
	}
	B, err := o.SecondVirial(T)
	if err != nil {
		return nil, err
	}

	// Bmix = ΣΣ y_i y_j B_ij
	var Bmix float64
	for i := 0; i < o.nc; i++ {
		for j := 0; j < o.nc; j++ {
			Bmix += y[i] * y[j] * B[i][j]
		}
	}

	// φ_i = exp[(2 Σ_j y_j B_ij - Bmix) P / (R T)]
	φ := make([]float64, o.nc)
	for i := 0; i < o.nc; i++ {
		var s float64
		for j := 0; j < o.nc; j++ {
			s += y[j] * B[i][j]
		}
		φ[i] = math.Exp((2.0*s - Bmix) * P / (species.Rgas * T))
	}

	// coarse validity check of the pressure condition
	var sPc, sTc float64
	for i := 0; i < o.nc; i++ {
		sPc += y[i] * o.Comps[i].Pc
		sTc += y[i] * o.Comps[i].Tc
	}
	if Plim := (T / 2.0) * sPc / sTc; P > Plim {
		if chk.Verbose {
			io.Pfyel("virial: P=%g is above the coarse validity limit %g; check the use of the virial equation\n", P, Plim)
		}
	}
	return φ, nil
}
