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

// Corey implements simple power-law relative conductivities
//  klr(se) = klmax・se^nl
//  kgr(se) = kgmax・(1-se)^ng
type Corey[S ad.Num[S]] struct {

	// parameters
	nl    float64 // liquid exponent
	ng    float64 // gas exponent
	klmax float64 // maximum klr
	kgmax float64 // maximum kgr
	srl   float64 // residual liquid saturation
	srg   float64 // residual gas saturation
}

// Init initialises this structure
func (o *Corey[S]) Init(prms dbf.Params) (err error) {
	o.klmax, o.kgmax = 1.0, 1.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "nl":
			o.nl = p.V
		case "ng":
			o.ng = p.V
		case "klmax":
			o.klmax = p.V
		case "kgmax":
			o.kgmax = p.V
		case "srl":
			o.srl = p.V
		case "srg":
			o.srg = p.V
		default:
			return chk.Err("corey: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Corey[S]) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "nl", V: 2.0},
		&dbf.P{N: "ng", V: 2.0},
		&dbf.P{N: "klmax", V: 1.0},
		&dbf.P{N: "kgmax", V: 1.0},
		&dbf.P{N: "srl", V: 0.0},
		&dbf.P{N: "srg", V: 0.0},
	}
}

// se computes the effective liquid saturation
func (o Corey[S]) se(sl S) S {
	return sl.AddScalar(-o.srl).DivScalar(1.0 - o.srl - o.srg)
}

// Klr returns klr
func (o Corey[S]) Klr(sl S) S {
	se := o.se(sl)
	if se.Float64() <= 0 {
		return sl.Const(0)
	}
	if se.Float64() >= 1 {
		return sl.Const(o.klmax)
	}
	return se.PowScalar(o.nl).MulScalar(o.klmax)
}

// Kgr returns kgr; the liquid saturation is sl = 1 - sg
func (o Corey[S]) Kgr(sg S) S {
	se := o.se(sg.ScalarSub(1))
	if se.Float64() >= 1 {
		return sg.Const(0)
	}
	if se.Float64() <= 0 {
		return sg.Const(o.kgmax)
	}
	return se.ScalarSub(1).PowScalar(o.ng).MulScalar(o.kgmax)
}
