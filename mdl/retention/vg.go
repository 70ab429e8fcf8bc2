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

// VanGen implements van Genuchten's model
//  sl(pc) = slmin + (slmax - slmin)・(1 + (α・pc)^n)^(-m)
//  pc(sl) = ((se^(-1/m) - 1)^(1/n)) / α   with   se = (sl-slmin)/(slmax-slmin)
type VanGen[S ad.Num[S]] struct {

	// parameters
	α, m, n float64 // parameters
	slmin   float64 // minimum sl
	slmax   float64 // maximum sl
	pcmin   float64 // pc limit to consider zero slope
	pclim   float64 // pc limit corresponding to slmin
}

// Init initialises model
func (o *VanGen[S]) Init(prms dbf.Params) (err error) {
	o.pcmin, o.slmax = 1e-3, 1.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "alp":
			o.α = p.V
		case "m":
			o.m = p.V
		case "n":
			o.n = p.V
		case "slmin":
			o.slmin = p.V
		case "slmax":
			o.slmax = p.V
		case "pcmin":
			o.pcmin = p.V
		default:
			return chk.Err("vg: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.slmin > 0 {
		k := (o.slmax - o.slmin) / o.slmin
		o.pclim = math.Pow((math.Pow(k, 1.0/o.m)-1.0)/math.Pow(o.α, o.n), 1.0/o.n)
	} else {
		o.pclim = 1e+30
	}
	return
}

// GetPrms gets (an example) of parameters
func (o VanGen[S]) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "alp", V: 0.08},
		&dbf.P{N: "m", V: 4},
		&dbf.P{N: "n", V: 4},
		&dbf.P{N: "slmin", V: 0.01},
		&dbf.P{N: "slmax", V: 1.0},
		&dbf.P{N: "pcmin", V: 1e-3},
	}
}

// SlMin returns sl_min
func (o VanGen[S]) SlMin() float64 {
	return o.slmin
}

// SlMax returns sl_max
func (o VanGen[S]) SlMax() float64 {
	return o.slmax
}

// Sl computes sl from pc. Below pcmin the curve is flat at slmax and
// above pclim flat at slmin, so those branches return constants
// (zero derivatives).
func (o VanGen[S]) Sl(pc S) S {
	if pc.Float64() <= o.pcmin {
		return pc.Const(o.slmax)
	}
	if pc.Float64() >= o.pclim {
		return pc.Const(o.slmin)
	}
	c := pc.MulScalar(o.α).PowScalar(o.n)
	return c.AddScalar(1).PowScalar(-o.m).MulScalar(o.slmax - o.slmin).AddScalar(o.slmin)
}

// Pc computes the capillary pressure from sl (the inverse curve). A
// saturation at or below slmin yields the precision-sized extreme
// value standing in for an unbounded suction; at or above slmax the
// entry branch returns pcmin.
func (o VanGen[S]) Pc(sl S) S {
	fac := o.slmax - o.slmin
	se := sl.AddScalar(-o.slmin).DivScalar(fac)
	if se.Float64() <= 0 {
		return sl.Const(sl.MaxValue())
	}
	if se.Float64() >= 1 {
		return sl.Const(o.pcmin)
	}
	return se.PowScalar(-1.0/o.m).SubScalar(1).PowScalar(1.0/o.n).DivScalar(o.α)
}
