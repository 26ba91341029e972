// Copyright 2016 The VLE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package species holds pure-component property records and the
// vapor-pressure correlations used by the VLE routines
//  References:
//   [1] Reid RC, Prausnitz JM and Poling BE (1987) The Properties of Gases
//       and Liquids, 4th edition, McGraw-Hill
//   [2] Prausnitz JM et al (1980) Computer Calculations for Multicomponent
//       Vapor-Liquid and Liquid-Liquid Equilibria, Prentice-Hall
package species

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Rgas is the universal gas constant [cm³·bar/(K·mol)]
const Rgas = 83.144621

// PsatForm identifies the vapor-pressure correlation form from [1]
type PsatForm int

const (
	FormWagner   PsatForm = 1 // Wagner equation; requires T < Tc
	FormImplicit PsatForm = 2 // implicit equation in Pvp; solved by Newton iteration
	FormAntoine  PsatForm = 3 // Antoine equation
)

// Species holds the properties of one pure component. Instances are built
// once by the property layer and read-only afterwards.
type Species struct {

	// identity
	Name string // component name

	// critical and physical constants
	Tc     float64 // critical temperature [K]
	Pc     float64 // critical pressure [bar]
	W      float64 // acentric factor
	MM     float64 // molar mass [g/mol]
	RadGyr float64 // mean radius of gyration
	Zc     float64 // critical compressibility factor
	Vc     float64 // critical molar volume [cm³/mol]
	Dipole float64 // dipole moment [D]

	// UNIQUAC size parameters
	R  float64 // volume parameter r
	Q  float64 // area parameter q
	Ql float64 // modified area parameter q′ (alcohol correction)

	// liquid density
	Ro float64 // liquid density [g/cm³]
	Td float64 // temperature of the liquid density [K]

	// classification
	Polarity string // polarity class; e.g. "Polar"
	Group    string // functional group; e.g. "Alcohol"

	// vapor-pressure correlation [1]
	Form               PsatForm // equation form
	VPA, VPB, VPC, VPD float64  // correlation coefficients
	TminPsat           float64  // lower bound of the correlation validity [K]
	TmaxPsat           float64  // upper bound of the correlation validity [K]
}

// Init validates the record
func (o *Species) Init() error {
	if o.Name == "" {
		return chk.Err("species: component must have a name")
	}
	if o.Tc <= 0 || o.Pc <= 0 {
		return chk.Err("species: %q must have positive critical constants. Tc=%g, Pc=%g", o.Name, o.Tc, o.Pc)
	}
	switch o.Form {
	case FormWagner, FormImplicit, FormAntoine:
	default:
		return chk.Err("species: %q: Psat equation form %d is not available. forms: %d, %d, %d", o.Name, o.Form, FormWagner, FormImplicit, FormAntoine)
	}
	if o.TmaxPsat > 0 && o.TminPsat > o.TmaxPsat {
		return chk.Err("species: %q: invalid Psat temperature range (%g, %g)", o.Name, o.TminPsat, o.TmaxPsat)
	}
	return nil
}

// checkRange emits an advisory when T is outside the correlation validity
// range. Execution continues with the out-of-range value.
func (o *Species) checkRange(T float64) {
	if o.TminPsat == 0 && o.TmaxPsat == 0 {
		return
	}
	if T < o.TminPsat || T > o.TmaxPsat {
		if chk.Verbose {
			io.Pfyel("species: %s: T=%g is outside the Psat applicability range (%g, %g)\n", o.Name, T, o.TminPsat, o.TmaxPsat)
		}
	}
}
