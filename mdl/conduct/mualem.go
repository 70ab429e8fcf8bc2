// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/mahg/opm-material/ad"
)

// Mualem implements the van Genuchten-Mualem relative conductivity
//  klr(se) = √se・(1 - (1 - se^(1/m))^m)²
//  kgr(se) = (1-se)^(1/3)・(1 - se^(1/m))^(2m)
// with the effective liquid saturation se = (sl-srl)/(1-srl-srg)
type Mualem[S ad.Num[S]] struct {

	// parameters
	m   float64 // van Genuchten exponent
	srl float64 // residual liquid saturation
	srg float64 // residual gas saturation
}

// Init initialises this structure
func (o *Mualem[S]) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "m":
			o.m = p.V
		case "srl":
			o.srl = p.V
		case "srg":
			o.srg = p.V
		default:
			return chk.Err("mualem: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Mualem[S]) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "m", V: 0.5},
		&dbf.P{N: "srl", V: 0.05},
		&dbf.P{N: "srg", V: 0.0},
	}
}

// se computes the effective liquid saturation
func (o Mualem[S]) se(sl S) S {
	return sl.AddScalar(-o.srl).DivScalar(1.0 - o.srl - o.srg)
}

// Klr returns klr
func (o Mualem[S]) Klr(sl S) S {
	se := o.se(sl)
	if se.Float64() <= 0 {
		return sl.Const(0)
	}
	if se.Float64() >= 1 {
		return sl.Const(1)
	}
	r := se.PowScalar(1.0/o.m).ScalarSub(1).PowScalar(o.m).ScalarSub(1)
	return ad.Sqrt(se).Mul(r).Mul(r)
}

// Kgr returns kgr; the liquid saturation is sl = 1 - sg
func (o Mualem[S]) Kgr(sg S) S {
	se := o.se(sg.ScalarSub(1))
	if se.Float64() >= 1 {
		return sg.Const(0)
	}
	if se.Float64() <= 0 {
		return sg.Const(1)
	}
	return se.ScalarSub(1).PowScalar(1.0/3.0).Mul(se.PowScalar(1.0/o.m).ScalarSub(1).PowScalar(2.0*o.m))
}
