// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/mahg/opm-material/ad"
)

func Test_fld01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fld01. hydrostatic column: water and dry air")

	H := 10.0
	g := 10.0

	var water Model[ad.Eval1[float64]]
	water.Init(water.GetPrms(true), H, g)

	var dryair Model[ad.Eval1[float64]]
	dryair.Gas = true
	dryair.Init(dryair.GetPrms(true), H, g)

	// top of column: known state
	p, R := water.Calc(ad.NewEval1(H))
	chk.Float64(tst, "p(H)", 1e-15, p.Float64(), water.P0)
	chk.Float64(tst, "R(H)", 1e-15, R.Float64(), water.R0)

	// bottom: compare against the closed-form profile
	p, R = water.Calc(ad.NewEval1(0.0))
	pAna := water.P0 + (water.R0/water.C)*(math.Exp(water.C*g*H)-1.0)
	chk.Float64(tst, "p(0)", 1e-12, p.Float64(), pAna)
	chk.Float64(tst, "R(0)", 1e-15, R.Float64(), water.R0+water.C*(pAna-water.P0))

	if chk.Verbose {
		Plot(water, "/tmp/gofem", "fig_fld01_water", 21)
		Plot(dryair, "/tmp/gofem", "fig_fld01_dryair", 21)
	}
}

func Test_fld02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fld02. seeded derivatives dp/dz and dR/dp")

	H := 10.0
	g := 10.0

	for _, gas := range []bool{false, true} {
		var mdl Model[ad.Eval1[float64]]
		mdl.Gas = gas
		mdl.Init(mdl.GetPrms(true), H, g)

		// dR/dp = C everywhere
		for _, pv := range []float64{0, 25, 100} {
			R := mdl.Density(ad.NewVar1(pv))
			chk.Float64(tst, io.Sf("dR/dp @ %g", pv), 1e-17, R.Deriv(0), mdl.C)
		}

		// momentum balance: dp/dz = -R·g
		for _, z := range utl.LinSpace(0, H, 5) {
			p, R := mdl.Calc(ad.NewVar1(z))
			chk.Float64(tst, io.Sf("dp/dz @ %g", z), 1e-11, p.Deriv(0), -R.Float64()*g)

			chk.DerivScaSca(tst, io.Sf("dp/dz @ %g", z), 1e-6, p.Deriv(0), z, 1e-3, chk.Verbose, func(x float64) float64 {
				pp, _ := mdl.Calc(ad.NewEval1(x))
				return pp.Float64()
			})
		}
	}
}
