// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package porous

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/mahg/opm-material/ad"
	"github.com/mahg/opm-material/mdl/retention"
	"github.com/mahg/opm-material/mdl/state"
)

func Test_derivs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("derivs01. seeded derivatives along path")

	mdl := buildModel[ad.Eval1[float64]](tst)

	// driver with derivative checks enabled
	Pc := utl.LinSpace(0.5, 15, 8)
	var drv Driver
	drv.TstD = tst
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
}

func Test_derivs02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("derivs02. two seeded directions through the state")

	// direction 0 is the liquid pressure and direction 1 is the gas
	// pressure; all derivatives of the coupled evaluation come from a
	// single pass
	mdl := buildModel[ad.Eval2[float64]](tst)

	for _, pc := range []float64{0.5, 2.0, 8.0} {

		fs := state.NewFluid(ad.NewEval2(0.0))
		fs.SetPressure(state.Wet, ad.NewVar2(0, -pc))
		fs.SetPressure(state.Nonwet, ad.NewVar2(1, 0.0))
		mdl.Saturations(fs)

		// ∂sl/∂pl = -Cc and ∂sl/∂pg = +Cc
		sl := fs.Saturation(state.Wet)
		cc := retention.Cc(retentionEval1(tst), pc)
		chk.Float64(tst, io.Sf("∂sl/∂pl @ %g", pc), 1e-17, sl.Deriv(0), -cc)
		chk.Float64(tst, io.Sf("∂sl/∂pg @ %g", pc), 1e-17, sl.Deriv(1), cc)

		// relative permeabilities carry the chain through sl
		var kr [state.NumPhases]S2
		mdl.RelativePermeabilities(&kr, fs)
		dklr := conductDklr(tst, sl.Float64())
		chk.Float64(tst, io.Sf("∂klr/∂pl @ %g", pc), 1e-12, kr[state.Wet].Deriv(0), dklr*sl.Deriv(0))
		chk.Float64(tst, io.Sf("∂klr/∂pg @ %g", pc), 1e-12, kr[state.Wet].Deriv(1), dklr*sl.Deriv(1))

		// capillary pressure from saturation closes the loop
		var pcs [state.NumPhases]S2
		mdl.CapillaryPressures(&pcs, fs)
		chk.Float64(tst, io.Sf("pc round-trip @ %g", pc), 1e-10, pcs[state.Nonwet].Float64(), pc)
	}
}

type S2 = ad.Eval2[float64]

// retentionEval1 builds the same retention model on one-direction
// evaluations for cross-checking
func retentionEval1(tst *testing.T) retention.Model[ad.Eval1[float64]] {
	Lrm, err := retention.New[ad.Eval1[float64]]("vg")
	if err != nil {
		tst.Fatalf("New failed: %v\n", err)
	}
	prm := Lrm.GetPrms(true)
	prm.Find("slmax").V = 0.95
	err = Lrm.Init(prm)
	if err != nil {
		tst.Fatalf("Init failed: %v\n", err)
	}
	return Lrm
}

// conductDklr computes ∂klr/∂sl with the same conductivity model on
// one-direction evaluations
func conductDklr(tst *testing.T, sl float64) float64 {
	mdl := buildModel[ad.Eval1[float64]](tst)
	return mdl.Cnd.Klr(ad.NewVar1(sl)).Deriv(0)
}
