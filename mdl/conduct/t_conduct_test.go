// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/mahg/opm-material/ad"
)

// checkDerivs compares the seeded derivatives of a model against
// central differences. Stations stay away from the residual clamps
// where the curves lose smoothness.
func checkDerivs(tst *testing.T, mdl Model[ad.Eval1[float64]], np int, tol float64) {
	S := utl.LinSpace(0.15, 0.85, np)
	for _, s := range S {
		dklr := DklrDsl(mdl, s)
		chk.DerivScaSca(tst, io.Sf("∂klr/∂sl @ %.3f ", s), tol, dklr, s, 1e-4, chk.Verbose, func(x float64) float64 {
			return mdl.Klr(ad.NewEval1(x)).Float64()
		})
		dkgr := DkgrDsg(mdl, s)
		chk.DerivScaSca(tst, io.Sf("∂kgr/∂sg @ %.3f ", s), tol, dkgr, s, 1e-4, chk.Verbose, func(x float64) float64 {
			return mdl.Kgr(ad.NewEval1(x)).Float64()
		})
	}
}

func Test_mualem01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mualem01. van Genuchten-Mualem model")

	mdl, err := New[ad.Eval1[float64]]("mualem")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	prm := mdl.GetPrms(true)
	err = mdl.Init(prm)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}

	// closed-form check at se = sl (srl would shift it; GetPrms has srl=0.05)
	m, srl := 0.5, 0.05
	sl := 0.6
	se := (sl - srl) / (1.0 - srl)
	r := 1.0 - math.Pow(1.0-math.Pow(se, 1.0/m), m)
	klr := math.Sqrt(se) * r * r
	chk.Float64(tst, "klr(0.6)", 1e-15, mdl.Klr(ad.NewEval1(sl)).Float64(), klr)

	// clamping
	chk.Float64(tst, "klr(srl)", 1e-15, mdl.Klr(ad.NewEval1(srl)).Float64(), 0)
	chk.Float64(tst, "klr(1)  ", 1e-15, mdl.Klr(ad.NewEval1(1.0)).Float64(), 1)
	chk.Float64(tst, "kgr(0)  ", 1e-15, mdl.Kgr(ad.NewEval1(0.0)).Float64(), 0)

	checkDerivs(tst, mdl, 11, 1e-5)

	if chk.Verbose {
		plt.Reset(false, nil)
		Plot(mdl, "/tmp/gofem", "cnd_mualem01_liq", 101, false, true, true)
		plt.Reset(false, nil)
		Plot(mdl, "/tmp/gofem", "cnd_mualem01_gas", 101, true, true, true)
	}
}

func Test_bc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bc01. Brooks-Corey (Burdine) model")

	mdl, err := New[ad.Eval1[float64]]("bc")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	prm := mdl.GetPrms(true)
	err = mdl.Init(prm)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}

	lam, srl := 2.0, 0.1
	sl := 0.7
	se := (sl - srl) / (1.0 - srl)
	chk.Float64(tst, "klr(0.7)", 1e-15, mdl.Klr(ad.NewEval1(sl)).Float64(), math.Pow(se, (2.0+3.0*lam)/lam))
	kgr := (1.0 - se) * (1.0 - se) * (1.0 - math.Pow(se, (2.0+lam)/lam))
	chk.Float64(tst, "kgr(0.3)", 1e-15, mdl.Kgr(ad.NewEval1(1.0-sl)).Float64(), kgr)

	checkDerivs(tst, mdl, 11, 1e-5)
}

func Test_corey01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("corey01. power-law model")

	mdl, err := New[ad.Eval1[float64]]("corey")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	prm := mdl.GetPrms(true)
	prm.Find("nl").V = 3.0
	prm.Find("srl").V = 0.05
	err = mdl.Init(prm)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}

	// klr = se³ gives ∂klr/∂sl = 3se²/(1-srl)
	sl := 0.5
	se := (sl - 0.05) / 0.95
	chk.Float64(tst, "klr(0.5) ", 1e-15, mdl.Klr(ad.NewEval1(sl)).Float64(), se*se*se)
	chk.Float64(tst, "dklr(0.5)", 1e-14, DklrDsl(mdl, sl), 3.0*se*se/0.95)

	checkDerivs(tst, mdl, 11, 1e-5)
}

func Test_conduct02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("conduct02. evaluation variants agree")

	mdl1, _ := New[ad.Eval1[float64]]("mualem")
	mdl0, _ := New[ad.Eval0[float64]]("mualem")
	mdlN, _ := New[ad.Eval[float64]]("mualem")
	mdl1.Init(mdl1.GetPrms(true))
	mdl0.Init(mdl0.GetPrms(true))
	mdlN.Init(mdlN.GetPrms(true))

	for _, sl := range []float64{0.1, 0.3, 0.55, 0.8, 0.97} {
		k1 := mdl1.Klr(ad.NewVar1(sl))
		k0 := mdl0.Klr(ad.NewEval0(sl))
		kN := mdlN.Klr(ad.NewVar(4, 0, sl))
		chk.Float64(tst, io.Sf("klr  @ %.2f", sl), 0, k1.Float64(), k0.Float64())
		chk.Float64(tst, io.Sf("klr  @ %.2f", sl), 0, k1.Float64(), kN.Float64())
		chk.Float64(tst, io.Sf("dklr @ %.2f", sl), 0, k1.Deriv(0), kN.Deriv(0))
	}
}
