// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/mahg/opm-material/ad"
)

func Test_update01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("update01. implicit ODE integration of dsl/dpc")

	mdl := new(VanGen[ad.Eval1[float64]])
	prm := mdl.GetPrms(true)
	prm.Find("slmax").V = 0.95
	err := mdl.Init(prm)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// a single large step must land on the direct curve
	pc0 := 0.0
	pcf := 10.0
	sl0 := mdl.SlMax()
	slOne := Update(mdl, pc0, sl0, pcf-pc0)
	slDirect := ad.Decay(mdl.Sl(ad.NewEval1(pcf)))
	chk.Float64(tst, "sl (one step)  ", 1e-7, slOne, slDirect)

	// splitting the path must not change the endpoint
	pcm := 4.0
	slMid := Update(mdl, pc0, sl0, pcm-pc0)
	slTwo := Update(mdl, pcm, slMid, pcf-pcm)
	if chk.Verbose {
		io.Pforan("sl(one)=%g, sl(two)=%g, sl(direct)=%g\n", slOne, slTwo, slDirect)
	}
	chk.Float64(tst, "sl (split path)", 1e-7, slTwo, slDirect)

	// wetting direction: integrating back recovers the start
	slBack := Update(mdl, pcf, slTwo, pc0-pcf)
	chk.Float64(tst, "sl (wetting)   ", 1e-6, slBack, sl0)
}
