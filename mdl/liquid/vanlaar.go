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

// VanLaar implements the Van Laar model [4]. The closed-form expression is
// only valid for exactly two components.
type VanLaar struct {
	A12 float64 // parameter A12 [cm³·bar/mol]
	A21 float64 // parameter A21 [cm³·bar/mol]
}

// add model to database
func init() {
	allocators["vanlaar"] = func() Model { return new(VanLaar) }
}

// Init validates the parameters
func (o *VanLaar) Init() error {
	if o.A12 == 0 || o.A21 == 0 {
		return chk.Err("vanlaar: parameters A12 and A21 must be nonzero")
	}
	return nil
}

// SetPrms sets parameters from a name/value table
func (o *VanLaar) SetPrms(prms dbf.Params) error {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "a12":
			o.A12 = p.V
		case "a21":
			o.A21 = p.V
		default:
			return chk.Err("vanlaar: parameter named %q is incorrect", p.N)
		}
	}
	return nil
}

// GetPrms gets (an example) of parameters
func (o *VanLaar) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "a12", V: 50000},
		&dbf.P{N: "a21", V: 42000},
	}
}

// Name returns the model name
func (o *VanLaar) Name() string { return "Van Laar" }

// Gamma computes the activity coefficients at x and T [K]. x must have
// exactly two entries.
func (o *VanLaar) Gamma(x []float64, T float64) ([]float64, error) {
	if len(x) != 2 {
		return nil, chk.Err("vanlaar: model is valid for binary systems only. len(x)=%d", len(x))
	}
	if err := checkComposition("vanlaar", x, 2); err != nil {
		return nil, err
	}
	RT := species.Rgas * T
	d1 := 1.0 + (o.A12/o.A21)*(x[0]/x[1])
	d2 := 1.0 + (o.A21/o.A12)*(x[1]/x[0])
	return []float64{
		math.Exp((o.A12 / RT) / (d1 * d1)),
		math.Exp((o.A21 / RT) / (d2 * d2)),
	}, nil
}
