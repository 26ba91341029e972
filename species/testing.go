// Copyright 2016 The VLE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package species

import "github.com/cpmech/gosl/chk"

// This file provides component records for testing and examples. Property
// values follow [1]; in production the records come from the property layer.

// Acetone returns the record of acetone with the Wagner Psat form
func Acetone() *Species {
	o := &Species{
		Name:     "Acetone",
		Tc:       508.1,
		Pc:       47.01,
		W:        0.304,
		MM:       58.080,
		RadGyr:   2.740,
		Zc:       0.232,
		Vc:       209.0,
		Dipole:   2.88,
		R:        2.5735,
		Q:        2.3360,
		Ql:       2.3360,
		Ro:       0.790,
		Td:       293.15,
		Polarity: "Polar",
		Group:    "Ketone",
		Form:     FormWagner,
		VPA:      -7.45514,
		VPB:      1.20200,
		VPC:      -2.43926,
		VPD:      -3.35590,
		TminPsat: 241.0,
		TmaxPsat: 508.1,
	}
	mustInit(o)
	return o
}

// Methanol returns the record of methanol with the Wagner Psat form
func Methanol() *Species {
	o := &Species{
		Name:     "Methanol",
		Tc:       512.6,
		Pc:       80.96,
		W:        0.556,
		MM:       32.042,
		RadGyr:   1.536,
		Zc:       0.224,
		Vc:       118.0,
		Dipole:   1.70,
		R:        1.4311,
		Q:        1.4320,
		Ql:       0.96,
		Ro:       0.791,
		Td:       293.15,
		Polarity: "Polar",
		Group:    "Methanol",
		Form:     FormWagner,
		VPA:      -8.54796,
		VPB:      0.76982,
		VPC:      -3.10850,
		VPD:      1.54481,
		TminPsat: 257.0,
		TmaxPsat: 512.6,
	}
	mustInit(o)
	return o
}

// Ethanol returns the record of ethanol with the Wagner Psat form
func Ethanol() *Species {
	o := &Species{
		Name:     "Ethanol",
		Tc:       513.9,
		Pc:       61.48,
		W:        0.644,
		MM:       46.069,
		RadGyr:   2.250,
		Zc:       0.240,
		Vc:       167.1,
		Dipole:   1.69,
		R:        2.1055,
		Q:        1.9720,
		Ql:       0.92,
		Ro:       0.789,
		Td:       293.15,
		Polarity: "Polar",
		Group:    "Alcohol",
		Form:     FormWagner,
		VPA:      -8.51838,
		VPB:      0.34163,
		VPC:      -5.73683,
		VPD:      8.32581,
		TminPsat: 293.0,
		TmaxPsat: 513.9,
	}
	mustInit(o)
	return o
}

// Benzene returns the record of benzene with the Wagner Psat form
func Benzene() *Species {
	o := &Species{
		Name:     "Benzene",
		Tc:       562.2,
		Pc:       48.98,
		W:        0.212,
		MM:       78.114,
		RadGyr:   3.004,
		Zc:       0.271,
		Vc:       259.0,
		Dipole:   0.0,
		R:        3.1878,
		Q:        2.4000,
		Ql:       2.4000,
		Ro:       0.885,
		Td:       289.15,
		Polarity: "NonPolar",
		Group:    "Aromatic",
		Form:     FormWagner,
		VPA:      -6.98273,
		VPB:      1.33213,
		VPC:      -2.62863,
		VPD:      -3.33399,
		TminPsat: 288.0,
		TmaxPsat: 562.2,
	}
	mustInit(o)
	return o
}

// Water returns the record of water with the Wagner Psat form
func Water() *Species {
	o := &Species{
		Name:     "Water",
		Tc:       647.3,
		Pc:       221.2,
		W:        0.344,
		MM:       18.015,
		RadGyr:   0.615,
		Zc:       0.229,
		Vc:       57.1,
		Dipole:   1.80,
		R:        0.9200,
		Q:        1.4000,
		Ql:       1.0000,
		Ro:       0.998,
		Td:       293.15,
		Polarity: "Polar",
		Group:    "Water",
		Form:     FormWagner,
		VPA:      -7.76451,
		VPB:      1.45838,
		VPC:      -2.77580,
		VPD:      -1.23303,
		TminPsat: 275.0,
		TmaxPsat: 647.3,
	}
	mustInit(o)
	return o
}

func mustInit(o *Species) {
	if err := o.Init(); err != nil {
		chk.Panic("species: testing record %q is inconsistent: %v", o.Name, err)
	}
}
