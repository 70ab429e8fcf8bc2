// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package porous

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/mahg/opm-material/ad"
	"github.com/mahg/opm-material/mdl/conduct"
	"github.com/mahg/opm-material/mdl/fluid"
	"github.com/mahg/opm-material/mdl/retention"
	"github.com/mahg/opm-material/mdl/state"
)

// buildModel assembles a porous model with van Genuchten retention and
// Mualem conductivity
func buildModel[S ad.Num[S]](tst *testing.T) *Model[S] {

	example := true

	// conductivity model
	Cnd, err := conduct.New[S]("mualem")
	if err != nil {
		tst.Fatalf("New failed: %v\n", err)
	}
	err = Cnd.Init(Cnd.GetPrms(example))
	if err != nil {
		tst.Fatalf("Init failed: %v\n", err)
	}

	// liquid retention model
	Lrm, err := retention.New[S]("vg")
	if err != nil {
		tst.Fatalf("New failed: %v\n", err)
	}
	prm := Lrm.GetPrms(example)
	slmax := prm.Find("slmax")
	slmax.V = 0.95
	err = Lrm.Init(prm)
	if err != nil {
		tst.Fatalf("Init failed: %v\n", err)
	}

	// constants
	H := 10.0
	grav := 10.0

	// fluids
	Liq := new(fluid.Model[S])
	Liq.Init(Liq.GetPrms(true), H, grav)
	Gas := new(fluid.Model[S])
	Gas.Gas = true
	Gas.Init(Gas.GetPrms(true), H, grav)

	// porous model
	mdl := new(Model[S])
	err = mdl.Init(mdl.GetPrms(example), Cnd, Lrm, Liq, Gas, grav)
	if err != nil {
		tst.Fatalf("Init failed: %v\n", err)
	}
	return mdl
}

func Test_mdl01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mdl01. drying path with coupled models")

	mdl := buildModel[ad.Eval1[float64]](tst)

	// driver along drying path
	Pc := utl.LinSpace(0, 20, 41)
	var drv Driver
	err := drv.Init(mdl)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	err = drv.Run(Pc)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// saturation decreases monotonically along drying
	slPrev := mdl.Lrm.SlMax()
	chk.Float64(tst, "sl @ pc=0", 1e-15, drv.Res[0].Saturation(state.Wet).Float64(), slPrev)
	for i := 1; i < len(Pc); i++ {
		sl := drv.Res[i].Saturation(state.Wet).Float64()
		if sl > slPrev {
			tst.Errorf("saturation must not increase along drying: sl(%g)=%g > %g\n", Pc[i], sl, slPrev)
			return
		}
		sg := drv.Res[i].Saturation(state.Nonwet).Float64()
		chk.Float64(tst, "sl+sg", 1e-15, sl+sg, 1.0)
		slPrev = sl
	}

	// saturated conductivity scaling
	K := mdl.Kval(0.5)
	chk.Float64(tst, "Kval", 1e-15, K[0][0], 0.5*mdl.Klsat[0][0])
	chk.Float64(tst, "Kval off-diagonal", 1e-15, K[0][1], 0)

	if chk.Verbose {
		plt.Reset(false, nil)
		PlotLrm(mdl, "/tmp/gofem", "porous_mdl01", 20, 41, true, true, nil, nil, "")
	}
}

func Test_mdl02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mdl02. parameter validation")

	mdl := new(Model[ad.Eval1[float64]])
	prms := mdl.GetPrms(true)
	prms.Find("kl").V = 0 // too small
	Cnd, _ := conduct.New[ad.Eval1[float64]]("mualem")
	Lrm, _ := retention.New[ad.Eval1[float64]]("vg")
	Liq := new(fluid.Model[ad.Eval1[float64]])
	Gas := new(fluid.Model[ad.Eval1[float64]])
	err := mdl.Init(prms, Cnd, Lrm, Liq, Gas, 10.0)
	if err == nil {
		tst.Errorf("Init must fail when kl is too small\n")
	}
}
