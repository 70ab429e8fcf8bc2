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

// BrooksCorey implements the Brooks-Corey (Burdine) relative
// conductivity
//  klr(se) = se^((2+3λ)/λ)
//  kgr(se) = (1-se)²・(1 - se^((2+λ)/λ))
type BrooksCorey[S ad.Num[S]] struct {

	// parameters
	λ   float64 // pore-size distribution index
	srl float64 // residual liquid saturation
	srg float64 // residual gas saturation
}

// Init initialises this structure
func (o *BrooksCorey[S]) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "lam":
			o.λ = p.V
		case "srl":
			o.srl = p.V
		case "srg":
			o.srg = p.V
		default:
			return chk.Err("bc: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o BrooksCorey[S]) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "lam", V: 2.0},
		&dbf.P{N: "srl", V: 0.1},
		&dbf.P{N: "srg", V: 0.0},
	}
}

// se computes the effective liquid saturation
func (o BrooksCorey[S]) se(sl S) S {
	return sl.AddScalar(-o.srl).DivScalar(1.0 - o.srl - o.srg)
}

// Klr returns klr
func (o BrooksCorey[S]) Klr(sl S) S {
	se := o.se(sl)
	if se.Float64() <= 0 {
		return sl.Const(0)
	}
	if se.Float64() >= 1 {
		return sl.Const(1)
	}
	return se.PowScalar((2.0 + 3.0*o.λ) / o.λ)
}

// Kgr returns kgr; the liquid saturation is sl = 1 - sg
func (o BrooksCorey[S]) Kgr(sg S) S {
	se := o.se(sg.ScalarSub(1))
	if se.Float64() >= 1 {
		return sg.Const(0)
	}
	if se.Float64() <= 0 {
		return sg.Const(1)
	}
	r := se.ScalarSub(1)
	return r.Mul(r).Mul(se.PowScalar((2.0 + o.λ) / o.λ).ScalarSub(1))
}
