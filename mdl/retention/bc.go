// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/mahg/opm-material/ad"
)

// BrooksCorey implements Brooks and Corey's model
//  sl(pc) = slmin + (slmax - slmin)・(pcae/pc)^λ   for pc > pcae
type BrooksCorey[S ad.Num[S]] struct {

	// parameters
	λ     float64 // slope coefficient
	pcae  float64 // air-entry pressure
	slmin float64 // residual (minimum) saturation
	slmax float64 // maximum saturation
}

// Init initialises model
func (o *BrooksCorey[S]) Init(prms dbf.Params) (err error) {
	o.slmax = 1.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "lam":
			o.λ = p.V
		case "pcae":
			o.pcae = p.V
		case "slmin":
			o.slmin = p.V
		case "slmax":
			o.slmax = p.V
		default:
			return chk.Err("bc: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o BrooksCorey[S]) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "lam", V: 0.5},
		&dbf.P{N: "pcae", V: 0.2},
		&dbf.P{N: "slmin", V: 0.1},
		&dbf.P{N: "slmax", V: 1.0},
	}
}

// SlMin returns sl_min
func (o BrooksCorey[S]) SlMin() float64 {
	return o.slmin
}

// SlMax returns sl_max
func (o BrooksCorey[S]) SlMax() float64 {
	return o.slmax
}

// Sl computes sl from pc; below the air-entry pressure the medium is
// fully saturated and the branch returns a constant
func (o BrooksCorey[S]) Sl(pc S) S {
	if pc.Float64() <= o.pcae {
		return pc.Const(o.slmax)
	}
	return pc.ScalarDiv(o.pcae).PowScalar(o.λ).MulScalar(o.slmax - o.slmin).AddScalar(o.slmin)
}

// Pc computes the capillary pressure from sl (the inverse curve). At
// or below slmin the extreme-value sentinel is returned; at or above
// slmax the air-entry pressure.
func (o BrooksCorey[S]) Pc(sl S) S {
	fac := o.slmax - o.slmin
	se := sl.AddScalar(-o.slmin).DivScalar(fac)
	if se.Float64() <= 0 {
		return sl.Const(sl.MaxValue())
	}
	if se.Float64() >= 1 {
		return sl.Const(o.pcae)
	}
	return se.PowScalar(-1.0 / o.λ).MulScalar(o.pcae)
}
