// Copyright 2016 The VLE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package vle computes vapor-liquid equilibrium states of binary mixtures
// with the gamma-phi formulation: activity coefficients for the liquid
// phase, fugacity coefficients for the vapor phase, and nested fixed-point
// and Newton iterations for bubble points, dew points and flash splits
//  References:
//   [1] Prausnitz JM et al (1980) Computer Calculations for Multicomponent
//       Vapor-Liquid and Liquid-Liquid Equilibria, Prentice-Hall
//   [2] Smith JM, Van Ness HC and Abbott MM, Introduction to Chemical
//       Engineering Thermodynamics, 7th edition, McGraw-Hill
package vle

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/ddss/VLE/mdl/liquid"
	"github.com/ddss/VLE/mdl/vapor"
	"github.com/ddss/VLE/species"
)

// algorithm tag
type algorithm int

const (
	algBubbleP algorithm = iota + 1
	algBubbleT
	algDewP
	algDewT
	algFlash
	algActivityCoef
	algFugacityCoef
)

// algorithms maps the selection name to its tag
var algorithms = map[string]algorithm{
	"BubbleP":      algBubbleP,
	"BubbleT":      algBubbleT,
	"DewP":         algDewP,
	"DewT":         algDewT,
	"Flash":        algFlash,
	"ActivityCoef": algActivityCoef,
	"FugacityCoef": algFugacityCoef,
}

// Solver computes vapor-liquid equilibrium states. One instance serves one
// mixture and one run-condition set; concurrent calls on a shared instance
// are not safe, but independent instances may run in parallel.
type Solver struct {

	// input
	Algorithm string             // one of BubbleP, BubbleT, DewP, DewT, Flash, ActivityCoef, FugacityCoef
	Comps     []*species.Species // component records (read-only)
	Liq       liquid.Model       // activity-coefficient model
	Vap       vapor.Model        // equation-of-state model
	Z         []float64          // global composition
	T         float64            // temperature [K]
	P         float64            // pressure [bar]
	EstGamma  []float64          // initial estimate for γ; nil means 1.0 each
	EstPhi    []float64          // initial estimate for φ; nil means 1.0 each
	EstBeta   float64            // initial estimate for the vapor fraction
	TolAlg    float64            // tolerance of the fixed-point/Newton loops
	TolEq     float64            // tolerance of the equilibrium validation
	MaxIt     int                // iteration cap

	// results (filled by Run according to Algorithm)
	Bubble  *Condition // bubble-point condition
	Dew     *Condition // dew-point condition
	Split   *Condition // flash condition
	CoefAct []float64  // activity coefficients (ActivityCoef)
	CoefFug []float64  // fugacity coefficients (FugacityCoef)

	// derived
	alg algorithm
	nc  int
}

// Init validates the input and applies the default estimates and tolerances
func (o *Solver) Init() error {
	o.nc = len(o.Comps)
	if o.nc < 2 {
		return chk.Err("vle: at least two components are required")
	}
	if o.Liq == nil || o.Vap == nil {
		return chk.Err("vle: both phase models must be set")
	}
	var ok bool
	if o.alg, ok = algorithms[o.Algorithm]; !ok {
		return chk.Err("vle: algorithm %q is not available. options: BubbleP, BubbleT, DewP, DewT, Flash, ActivityCoef, FugacityCoef", o.Algorithm)
	}
	if len(o.Z) != o.nc {
		return chk.Err("vle: composition size %d differs from number of components %d", len(o.Z), o.nc)
	}
	normalize(o.Z)
	if o.T < 0 || o.P < 0 {
		return chk.Err("vle: temperature and pressure must be nonnegative. T=%g, P=%g", o.T, o.P)
	}
	if o.EstGamma == nil {
		o.EstGamma = ones(o.nc)
	}
	if o.EstPhi == nil {
		o.EstPhi = ones(o.nc)
	}
	if o.EstBeta == 0 {
		o.EstBeta = 0.5
	}
	if o.TolAlg == 0 {
		o.TolAlg = 1e-10
	}
	if o.TolEq == 0 {
		o.TolEq = 1e-4
	}
	if o.MaxIt == 0 {
		o.MaxIt = 100
	}
	return nil
}

// SetPrms sets iteration parameters from a name/value table; call before Init
func (o *Solver) SetPrms(prms dbf.Params) error {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "tolalg":
			o.TolAlg = p.V
		case "toleq":
			o.TolEq = p.V
		case "maxit":
			o.MaxIt = int(p.V)
		case "estbeta":
			o.EstBeta = p.V
		default:
			return chk.Err("vle: parameter named %q is incorrect", p.N)
		}
	}
	return nil
}

// Run dispatches to the selected algorithm
func (o *Solver) Run() (err error) {
	switch o.alg {
	case algBubbleP:
		o.Bubble, err = o.BubbleP(o.Z, o.T)
	case algBubbleT:
		o.Bubble, err = o.BubbleT(o.Z, o.P)
	case algDewP:
		o.Dew, err = o.DewP(o.Z, o.T)
	case algDewT:
		o.Dew, err = o.DewT(o.Z, o.P)
	case algFlash:
		o.Split, err = o.Flash(o.Z, o.T, o.P)
	case algActivityCoef:
		o.CoefAct, err = o.ActivityCoef(o.Z, o.T)
	case algFugacityCoef:
		o.CoefFug, err = o.FugacityCoef(o.Z, o.P, o.T)
	default:
		return chk.Err("vle: solver is not initialized; call Init first")
	}
	return
}

// ActivityCoef computes the activity coefficients at z and T [K]; a single
// call-through to the liquid model
func (o *Solver) ActivityCoef(z []float64, T float64) ([]float64, error) {
	return o.Liq.Gamma(z, T)
}

// FugacityCoef computes the fugacity coefficients at z, P [bar] and T [K];
// a single call-through to the vapor model
func (o *Solver) FugacityCoef(z []float64, P, T float64) ([]float64, error) {
	return o.Vap.Phi(z, P, T)
}

// ones returns a vector filled with 1.0
func ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1.0
	}
	return v
}
