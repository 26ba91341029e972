// Copyright 2016 The VLE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vle

// nearlyPure is the mole fraction assigned to the target component when
// approximating its saturation state with the mixture fugacity-coefficient
// function; the remainder is split evenly among the other components to
// keep every entry strictly positive.
const nearlyPure = 0.99999

// PhiSat computes, for each component, the fugacity coefficient at its own
// saturation pressure at T [K], together with the saturation pressures.
// The saturation state is approximated by evaluating the mixture model at a
// near-pure composition (x_i → 1) rather than by a single-component
// evaluation, following [1].
func (o *Solver) PhiSat(T float64) (φsat, Psat []float64, err error) {
	φsat = make([]float64, o.nc)
	Psat = make([]float64, o.nc)
	trace := (1.0 - nearlyPure) / float64(o.nc-1)
	for i := 0; i < o.nc; i++ {
		if Psat[i], err = o.Comps[i].Psat(T); err != nil {
			return nil, nil, err
		}
		comp := make([]float64, o.nc)
		for j := 0; j < o.nc; j++ {
			comp[j] = trace
		}
		comp[i] = nearlyPure
		φ, e := o.Vap.Phi(comp, Psat[i], T)
		if e != nil {
			return nil, nil, e
		}
		φsat[i] = φ[i]
	}
	return
}
