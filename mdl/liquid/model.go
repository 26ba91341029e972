// Copyright 2016 The VLE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package liquid implements activity-coefficient models for the liquid phase
//  References:
//   [1] Abrams DS and Prausnitz JM (1975) Statistical thermodynamics of
//       liquid mixtures: A new expression for the excess Gibbs energy of
//       partly or completely miscible systems. AIChE Journal, 21(1), 116-128
//   [2] Renon H and Prausnitz JM (1968) Local compositions in thermodynamic
//       excess functions for liquid mixtures. AIChE Journal, 14(1), 135-144
//   [3] Wilson GM (1964) Vapor-Liquid Equilibrium. XI. A New Expression for
//       the Excess Free Energy of Mixing. JACS, 86(2), 127-130
//   [4] Van Laar JJ (1910) The Vapor pressure of binary mixtures.
//       Z. Phys. Chem. 72, 723-751
package liquid

import (
	"github.com/cpmech/gosl/chk"
)

// ParamsForm identifies how the interaction-parameter matrix is encoded
type ParamsForm int

const (
	Delta    ParamsForm = 1 // parameters are energy differences; τ (or Λ) follows from exp(-a/T)
	Tau      ParamsForm = 2 // parameters are the already-computed τ (or Λ)
	Absolute ParamsForm = 3 // parameters are absolute per-component values needing differencing
)

// Model defines the activity-coefficient model interface. Gamma computes
// the activity coefficients of all components for a liquid composition x
// (mole fractions) at temperature T [K]. Implementations are pure functions
// of (x, T) after Init.
type Model interface {
	Init() error                                    // validates parameters
	Name() string                                   // model name
	Gamma(x []float64, T float64) ([]float64, error) // computes γ
}

// New returns a new activity-coefficient model
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'liquid' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// checkComposition returns an error when any mole fraction is nonpositive.
// The models divide by x and by sums weighted by x; a zero entry is a sharp
// edge and callers must seed trace amounts instead (see vle.PhiSat).
func checkComposition(name string, x []float64, nc int) error {
	if len(x) != nc {
		return chk.Err("%s: composition size %d differs from number of components %d", name, len(x), nc)
	}
	for i := 0; i < nc; i++ {
		if x[i] <= 0 {
			return chk.Err("%s: mole fraction x[%d]=%g must be strictly positive", name, i, x[i])
		}
	}
	return nil
}
