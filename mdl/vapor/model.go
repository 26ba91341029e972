// Copyright 2016 The VLE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package vapor implements equations of state for the vapor phase
//  References:
//   [1] Hayden JG and O'Connell JP (1975) A Generalized Method for
//       Predicting Second Virial Coefficients. Ind. Eng. Chem. Process
//       Des. Dev., 14(3), 209-216
//   [2] Tsonopoulos C and Heidman JL (1990) From the Virial to the cubic
//       equation of state. Fluid Phase Equilib. 57, 261-276
//   [3] Soave G (1972) Equilibrium constants from a modified Redlich-Kwong
//       equation of state. Chem. Eng. Sci. 27(6), 1197-1203
package vapor

import (
	"github.com/cpmech/gosl/chk"
)

// Model defines the vapor-phase fugacity-coefficient interface. Phi computes
// the fugacity coefficients of all components for a vapor composition y
// (mole fractions) at pressure P [bar] and temperature T [K].
type Model interface {
	Init() error                                        // validates parameters
	Name() string                                       // model name
	Phi(y []float64, P, T float64) ([]float64, error)   // computes φ
}

// New returns a new equation-of-state model
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'vapor' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
