// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package porous

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/mahg/opm-material/ad"
	"github.com/mahg/opm-material/mdl/retention"
	"github.com/mahg/opm-material/mdl/state"
)

// Driver runs simulations along capillary pressure paths
type Driver struct {

	// input
	Mdl *Model[ad.Eval1[float64]] // porous model

	// settings
	Silent bool    // do not show error messages
	TolCc  float64 // tolerance to check Cc against numerical differentiation
	VerD   bool    // verbose check of derivatives

	// check derivatives
	TstD *testing.T // if != nil, check seeded derivatives along the path

	// results
	Res []*state.Fluid[ad.Eval1[float64]] // fluid states along the path
}

// Init initialises driver
func (o *Driver) Init(mdl *Model[ad.Eval1[float64]]) (err error) {
	o.Mdl = mdl
	o.TolCc = 1e-7
	o.VerD = chk.Verbose
	return
}

// Run runs a simulation along a path of capillary pressure values.
// Pressures are chosen so that pg = 0 and pl = -pc; saturations
// follow from the retention model with the capillary pressure seeded.
func (o *Driver) Run(Pc []float64) (err error) {

	// allocate results arrays
	np := len(Pc)
	o.Res = make([]*state.Fluid[ad.Eval1[float64]], np)

	// states along path; the wetting pressure is the seeded variable,
	// so saturations carry ∂sl/∂pl
	for i := 0; i < np; i++ {
		fs := state.NewFluid(ad.NewEval1(0.0))
		fs.SetPressure(state.Wet, ad.NewVar1(-Pc[i]))
		fs.SetPressure(state.Nonwet, ad.NewEval1(0.0))
		o.Mdl.Saturations(fs)
		o.Res[i] = fs
		sl := fs.Saturation(state.Wet).Float64()

		// saturation bounds
		if sl < o.Mdl.Lrm.SlMin()-1e-14 {
			return chk.Err("inconsistent results: sl = %g is smaller than the minimum saturation %g", sl, o.Mdl.Lrm.SlMin())
		}
		if sl > o.Mdl.Lrm.SlMax()+1e-14 {
			return chk.Err("inconsistent results: sl = %g is greater than the maximum saturation %g", sl, o.Mdl.Lrm.SlMax())
		}

		// check seeded Cc = ∂sl/∂pc against numerical differentiation;
		// note ∂sl/∂pl = -Cc since pc = pg - pl
		if o.TstD != nil && Pc[i] > 0 {
			cc := retention.Cc(o.Mdl.Lrm, Pc[i])
			chk.Float64(o.TstD, io.Sf("∂sl/∂pl @ %.3f", Pc[i]), 1e-17, fs.Saturation(state.Wet).Deriv(0), -cc)
			chk.DerivScaSca(o.TstD, io.Sf("Cc @ %.3f,%.4f", Pc[i], sl), o.TolCc, cc, Pc[i], 1e-3, o.VerD, func(x float64) float64 {
				return o.Mdl.Lrm.Sl(ad.NewEval1(x)).Float64()
			})
		}
	}
	return
}
