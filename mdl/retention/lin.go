// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/mahg/opm-material/ad"
)

// Lin implements a linear retention model: sl(pc) := slmax - λ*(pc-pcae)
type Lin[S ad.Num[S]] struct {

	// parameters
	λ     float64 // slope coefficient
	pcae  float64 // air-entry pressure
	slmin float64 // residual (minimum) saturation
	slmax float64 // maximum saturation

	// derived
	pcres float64 // residual pc corresponding to slmin
}

// Init initialises model
func (o *Lin[S]) Init(prms dbf.Params) (err error) {
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
			return chk.Err("lin: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.λ < 1e-13 {
		o.λ = 0
		o.pcres = math.MaxFloat64
	} else {
		o.pcres = o.pcae + (o.slmax-o.slmin)/o.λ
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Lin[S]) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "lam", V: 0.5},
		&dbf.P{N: "pcae", V: 0.2},
		&dbf.P{N: "slmin", V: 0.1},
		&dbf.P{N: "slmax", V: 1.0},
	}
}

// SlMin returns sl_min
func (o Lin[S]) SlMin() float64 {
	return o.slmin
}

// SlMax returns sl_max
func (o Lin[S]) SlMax() float64 {
	return o.slmax
}

// Sl computes sl from pc
func (o Lin[S]) Sl(pc S) S {
	if pc.Float64() <= o.pcae {
		return pc.Const(o.slmax)
	}
	if pc.Float64() >= o.pcres {
		return pc.Const(o.slmin)
	}
	return pc.SubScalar(o.pcae).MulScalar(-o.λ).AddScalar(o.slmax)
}

// Pc computes pc from sl (inverse curve)
func (o Lin[S]) Pc(sl S) S {
	if o.λ == 0 {
		return sl.Const(sl.MaxValue())
	}
	if sl.Float64() <= o.slmin {
		return sl.Const(o.pcres)
	}
	if sl.Float64() >= o.slmax {
		return sl.Const(o.pcae)
	}
	return sl.ScalarSub(o.slmax).DivScalar(o.λ).AddScalar(o.pcae)
}
