// Copyright 2016 The VLE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vapor

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/ddss/VLE/species"
)

// Srk implements the Soave-Redlich-Kwong cubic equation of state [3] with
// the classical one-fluid mixing rules and binary interaction coefficients.
type Srk struct {

	// input
	Comps []*species.Species // component records (read-only)
	Kij   [][]float64        // binary interaction coefficients; nil means zero

	// derived
	nc int
}

// add model to database
func init() {
	allocators["srk"] = func() Model { return new(Srk) }
}

// Init validates the parameters
func (o *Srk) Init() error {
	o.nc = len(o.Comps)
	if o.nc < 1 {
		return chk.Err("srk: at least one component is required")
	}
	if o.Kij == nil {
		o.Kij = make([][]float64, o.nc)
		for i := 0; i < o.nc; i++ {
			o.Kij[i] = make([]float64, o.nc)
		}
	}
	if len(o.Kij) != o.nc {
		return chk.Err("srk: Kij matrix must be %d x %d", o.nc, o.nc)
	}
	for i := 0; i < o.nc; i++ {
		if len(o.Kij[i]) != o.nc {
			return chk.Err("srk: Kij matrix must be %d x %d", o.nc, o.nc)
		}
	}
	return nil
}

// Name returns the model name
func (o *Srk) Name() string { return "SRK" }

// apure computes the attraction parameter of pure component i at T
func (o *Srk) apure(i int, T float64) float64 {
	c := o.Comps[i]
	m := 0.480 + 1.574*c.W - 0.176*c.W*c.W
	α := 1.0 + m*(1.0-math.Sqrt(T/c.Tc))
	α *= α
	return 0.42748 * species.Rgas * species.Rgas * c.Tc * c.Tc * α / c.Pc
}

// bpure computes the repulsion parameter of pure component i
func (o *Srk) bpure(i int) float64 {
	c := o.Comps[i]
	return 0.08664 * species.Rgas * c.Tc / c.Pc
}

// Phi computes the vapor-phase fugacity coefficients at y, P [bar], T [K].
// The vapor root is the largest real root of the cubic in Z.
func (o *Srk) Phi(y []float64, P, T float64) ([]float64, error) {
	if len(y) != o.nc {
		return nil, chk.Err("srk: composition size %d differs from number of components %d", len(y), o.nc)
	}

	// mixing rules
	a := make([]float64, o.nc)
	b := make([]float64, o.nc)
	for i := 0; i < o.nc; i++ {
		a[i] = o.apure(i, T)
		b[i] = o.bpure(i)
	}
	var am, bm float64
	for i := 0; i < o.nc; i++ {
		for j := 0; j < o.nc; j++ {
			am += y[i] * y[j] * math.Sqrt(a[i]*a[j]) * (1.0 - o.Kij[i][j])
		}
		bm += y[i] * b[i]
	}

	// cubic in the compressibility factor
	A := am * P / (species.Rgas * species.Rgas * T * T)
	Bc := bm * P / (species.Rgas * T)
	Z, err := largestCubicRoot(-1.0, A-Bc-Bc*Bc, -A*Bc)
	if err != nil {
		return nil, chk.Err("srk: cubic solve at P=%g, T=%g failed: %v", P, T, err)
	}
	if Z <= Bc {
		return nil, chk.Err("srk: vapor root Z=%g is below the covolume B=%g at P=%g, T=%g", Z, Bc, P, T)
	}

	// partial-property fugacity coefficients
	φ := make([]float64, o.nc)
	for i := 0; i < o.nc; i++ {
		var sa float64
		for j := 0; j < o.nc; j++ {
			sa += y[j] * math.Sqrt(a[i]*a[j]) * (1.0 - o.Kij[i][j])
		}
		lnφ := (b[i]/bm)*(Z-1.0) - math.Log(Z-Bc) - (A/Bc)*(2.0*sa/am-b[i]/bm)*math.Log(1.0+Bc/Z)
		φ[i] = math.Exp(lnφ)
	}
	return φ, nil
}

// largestCubicRoot returns the largest real root of z³ + c2 z² + c1 z + c0
func largestCubicRoot(c2, c1, c0 float64) (float64, error) {
	q := (c2*c2 - 3.0*c1) / 9.0
	r := (2.0*c2*c2*c2 - 9.0*c2*c1 + 27.0*c0) / 54.0
	if d := r*r - q*q*q; d > 0 {
		// one real root
		s := -sign(r) * math.Cbrt(math.Abs(r)+math.Sqrt(d))
		var t float64
		if s != 0 {
			t = q / s
		}
		z := s + t - c2/3.0
		if z <= 0 {
			return 0, chk.Err("no positive real root")
		}
		return z, nil
	}
	// three real roots
	θ := math.Acos(r / math.Sqrt(q*q*q))
	z1 := -2.0*math.Sqrt(q)*math.Cos(θ/3.0) - c2/3.0
	z2 := -2.0*math.Sqrt(q)*math.Cos((θ+2.0*math.Pi)/3.0) - c2/3.0
	z3 := -2.0*math.Sqrt(q)*math.Cos((θ-2.0*math.Pi)/3.0) - c2/3.0
	z := math.Max(z1, math.Max(z2, z3))
	if z <= 0 {
		return 0, chk.Err("no positive real root")
	}
	return z, nil
}

func sign(x float64) float64 {
	if x < 0 {
		return -1.0
	}
	return 1.0
}
