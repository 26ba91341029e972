// Copyright 2016 The VLE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vle

// Status reports the outcome of an iterative computation. Non-converged
// results still carry the last iterate; callers must check the status
// before trusting the numbers.
type Status int

const (
	Converged      Status = iota + 1 // tolerance satisfied
	MaxIterReached                   // iteration cap hit before the tolerance
	BetaOutOfRange                   // vapor fraction left [0,1]
	Oscillating                      // Newton step on the vapor fraction kept cycling
	NotFeasible                      // pressure outside the two-phase region
)

// String returns a human-readable status
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case MaxIterReached:
		return "max number of iterations reached"
	case BetaOutOfRange:
		return "vapor fraction out of range"
	case Oscillating:
		return "oscillating vapor-fraction iteration"
	case NotFeasible:
		return "not feasible"
	}
	return "unknown"
}

// Phase bundles the composition of one phase with its coefficients. The
// liquid carries activity coefficients and the vapor carries fugacity
// coefficients.
type Phase struct {
	Comp    []float64 // mole fractions; always normalized
	CoefFug []float64 // fugacity coefficients (vapor)
	CoefAct []float64 // activity coefficients (liquid)
}

// Condition is the converged thermodynamic state produced by one solver
// run: read-only afterwards.
type Condition struct {
	P      float64 // pressure [bar]
	T      float64 // temperature [K]
	Liquid *Phase  // liquid phase
	Vapor  *Phase  // vapor phase
	Beta   float64 // vapor fraction: 0 at a bubble point, 1 at a dew point
	Status Status  // convergence outcome
}

// normalize scales x in place so that its entries sum to one
func normalize(x []float64) {
	var sum float64
	for _, v := range x {
		sum += v
	}
	for i := range x {
		x[i] /= sum
	}
}
