// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package porous couples the retention, conductivity and fluid models
// of a two-phase porous medium and evaluates them on a fluid state.
// Derivatives such as ∂sl/∂pc or ∂klr/∂sl come from seeding the
// evaluation type; there are no hand-coded consistent moduli here.
package porous

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"

	"github.com/mahg/opm-material/ad"
	"github.com/mahg/opm-material/mdl/conduct"
	"github.com/mahg/opm-material/mdl/fluid"
	"github.com/mahg/opm-material/mdl/retention"
	"github.com/mahg/opm-material/mdl/state"
)

// Model holds material parameters for a two-phase porous medium
type Model[S ad.Num[S]] struct {

	// parameters
	Nf0   float64 // nf0: initial volume fraction of all fluids ~ porosity
	RhoS0 float64 // real (intrinsic) density of solids

	// derived
	Klsat [][]float64 // klsat ÷ Gref
	Kgsat [][]float64 // kgsat ÷ Gref

	// auxiliary models
	Cnd conduct.Model[S]   // liquid-gas conductivity models
	Lrm retention.Model[S] // retention model
	Liq *fluid.Model[S]    // liquid properties
	Gas *fluid.Model[S]    // gas properties
}

// Init initialises this structure
func (o *Model[S]) Init(prms dbf.Params, Cnd conduct.Model[S], Lrm retention.Model[S], Liq, Gas *fluid.Model[S], grav float64) (err error) {

	// liquid conductivity
	var klx, kly, klz float64
	klValues, klFound := prms.GetValues([]string{"klx", "kly", "klz"})
	if !utl.AllTrue(klFound) {
		p := prms.Find("kl")
		if p == nil {
			return chk.Err("porous model: either 'kl' (isotropic) or ['klx', 'kly', 'klz'] must be given in database of material parameters")
		}
		klx, kly, klz = p.V, p.V, p.V
	} else {
		klx, kly, klz = klValues[0], klValues[1], klValues[2]
	}

	// gas conductivity
	var kgx, kgy, kgz float64
	kgValues, kgFound := prms.GetValues([]string{"kgx", "kgy", "kgz"})
	if !utl.AllTrue(kgFound) {
		p := prms.Find("kg")
		if p == nil {
			return chk.Err("porous model: either 'kg' (isotropic) or ['kgx', 'kgy', 'kgz'] must be given in database of material parameters")
		}
		kgx, kgy, kgz = p.V, p.V, p.V
	} else {
		kgx, kgy, kgz = kgValues[0], kgValues[1], kgValues[2]
	}

	// check conductivities
	KMIN := 1e-14
	for _, kv := range []struct {
		name string
		val  float64
	}{{"klx", klx}, {"kly", kly}, {"klz", klz}, {"kgx", kgx}, {"kgy", kgy}, {"kgz", kgz}} {
		if kv.val < KMIN {
			return chk.Err("porous model: %s must be greater than or equal to %g", kv.name, KMIN)
		}
	}

	// read other paramaters
	prms.Connect(&o.Nf0, "nf0", "porous model")
	prms.Connect(&o.RhoS0, "RhoS0", "porous model")

	// check
	if o.Nf0 < 1e-3 {
		return chk.Err("porous model: porosity nf0 = %g is invalid", o.Nf0)
	}
	if o.RhoS0 < 1e-3 {
		return chk.Err("porous model: intrinsic density of solids RhoS0 = %g is invalid", o.RhoS0)
	}
	if grav < 1e-3 {
		return chk.Err("porous model: gravity constant of reference grav = %g is invalid", grav)
	}

	// derived
	o.Klsat = [][]float64{
		{klx / grav, 0, 0},
		{0, kly / grav, 0},
		{0, 0, klz / grav},
	}
	o.Kgsat = [][]float64{
		{kgx / grav, 0, 0},
		{0, kgy / grav, 0},
		{0, 0, kgz / grav},
	}

	// auxiliary models
	if Cnd == nil || Lrm == nil || Liq == nil || Gas == nil {
		return chk.Err("Cnd, Lrm, Liq and Gas models must be all non-nil\n")
	}
	o.Cnd = Cnd
	o.Lrm = Lrm
	o.Liq = Liq
	o.Gas = Gas
	return
}

// GetPrms gets (an example) of parameters
func (o Model[S]) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "nf0", V: 0.3},   // [-]
			&dbf.P{N: "RhoS0", V: 2.7}, // [Mg/m³]
			&dbf.P{N: "kl", V: 1e-3},   // [m/s]
			&dbf.P{N: "kg", V: 1e-2},   // [m/s]
		}
	}
	return dbf.Params{
		&dbf.P{N: "nf0", V: o.Nf0},
		&dbf.P{N: "RhoS0", V: o.RhoS0},
	}
}

// CapillaryPressures fills values with the relative pressure of each
// phase; the wetting phase is the reference phase
func (o Model[S]) CapillaryPressures(values *[state.NumPhases]S, fs *state.Fluid[S]) {
	sw := fs.Saturation(state.Wet)
	values[state.Wet] = sw.Const(0)
	values[state.Nonwet] = o.Lrm.Pc(sw)
}

// RelativePermeabilities fills values with the relative permeability
// of each phase
func (o Model[S]) RelativePermeabilities(values *[state.NumPhases]S, fs *state.Fluid[S]) {
	values[state.Wet] = o.Cnd.Klr(fs.Saturation(state.Wet))
	values[state.Nonwet] = o.Cnd.Kgr(fs.Saturation(state.Nonwet))
}

// Saturations computes the phase saturations for a state whose
// pressures are set, by inverting the retention curve
func (o Model[S]) Saturations(fs *state.Fluid[S]) {
	pc := fs.Pc()
	var sl S
	if pc.Float64() <= 0 {
		sl = pc.Const(o.Lrm.SlMax())
	} else {
		sl = o.Lrm.Sl(pc)
	}
	fs.SetSaturation(state.Wet, sl)
	fs.SetSaturation(state.Nonwet, sl.ScalarSub(1))
}

// Kval returns the saturated liquid conductivity scaled by klr
func (o Model[S]) Kval(klr float64) [][]float64 {
	res := utl.Alloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res[i][j] = o.Klsat[i][j] * klr
		}
	}
	return res
}
