// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package porous

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/mahg/opm-material/ad"
	"github.com/mahg/opm-material/mdl/retention"
	"github.com/mahg/opm-material/mdl/state"
)

// PlotLrm plots the retention curve and its slope along a drying
// path. If fnkey!="", figure is saved; otherwise it is not
//  Output:
//   X -- pc values
//   Y -- sl values
func PlotLrm(o *Model[ad.Eval1[float64]], dirout, fnkey string, pcmax float64, np int,
	withText, deriv bool, argsCurve, argsTxt *plt.A, txtFmt string) (X, Y []float64) {

	// generate path and run driver
	X = utl.LinSpace(0, pcmax, np)
	var drv Driver
	err := drv.Init(o)
	if err != nil {
		chk.Panic("cannot initialise driver:\n%v", err)
	}
	err = drv.Run(X)
	if err != nil {
		chk.Panic("cannot run driver:\n%v", err)
	}
	Y = make([]float64, np)
	var Z []float64
	if deriv {
		Z = make([]float64, np) // dsl/dpc
	}
	for i := 0; i < np; i++ {
		Y[i] = drv.Res[i].Saturation(state.Wet).Float64()
		if deriv {
			Z[i] = retention.Cc(o.Lrm, X[i])
		}
	}

	// plot LRM
	if deriv {
		plt.Subplot(2, 1, 1)
	}
	if argsCurve == nil {
		argsCurve = &plt.A{C: "b", L: "drying", NoClip: true}
	}
	plt.Plot(X, Y, argsCurve)

	// add text
	if withText {
		l := np - 1
		if argsTxt == nil {
			argsTxt = &plt.A{C: "red", Ha: "left", Fsz: 8}
		}
		if txtFmt == "" {
			txtFmt = "%g"
		}
		plt.Text(X[0], Y[0], io.Sf("(%g, "+txtFmt+")", X[0], Y[0]), argsTxt)
		plt.Text(X[l], Y[l], io.Sf("(%g, "+txtFmt+")", X[l], Y[l]), argsTxt)
	}
	plt.Gll("$p_c$", "$s_{\\ell}$", nil)

	// plot derivatives
	if deriv {
		plt.Subplot(2, 1, 2)
		plt.Plot(X, Z, &plt.A{C: "b", NoClip: true})
		plt.Gll("$p_c$", "$C_c=\\mathrm{d}s_{\\ell}/\\mathrm{d}p_c$", nil)
	}

	// save figure
	if fnkey != "" {
		plt.Save(dirout, fnkey)
	}
	return
}
