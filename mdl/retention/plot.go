// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"

	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/mahg/opm-material/ad"
)

// Plot plots the retention curve and its AD slope
//  args1 -- arguments for the sl(pc) curve; if nil, plot is skiped
//  args2 -- arguments for the Cc(pc) curve; if nil, plot is skiped
func Plot(mdl Model[ad.Eval1[float64]], pc0, pcf float64, npts int, useLog bool, args1, args2 *plt.A, label string) (Pc, Sl, X []float64) {

	// stations
	Pc = utl.LinSpace(pc0, pcf, npts)
	Sl = make([]float64, npts)
	X = make([]float64, npts)
	Dsl := make([]float64, npts)
	for i, pc := range Pc {
		e := mdl.Sl(ad.NewVar1(pc))
		Sl[i] = e.Value()
		Dsl[i] = e.Deriv(0)
		if useLog {
			X[i] = math.Log(1.0 + pc)
		} else {
			X[i] = pc
		}
	}

	// saturation curve
	if args1 != nil {
		args1.L = label
		args1.NoClip = true
		plt.Plot(X, Sl, args1)
	}

	// slope curve
	if args2 != nil {
		args2.L = label + "_Cc"
		args2.NoClip = true
		plt.Plot(X, Dsl, args2)
	}
	return
}

// PlotEnd ends plot and show figure, if show==true
func PlotEnd(show bool) {
	plt.AxisYrange(0, 1)
	plt.Cross(0, 0, nil)
	plt.Gll("$p_c$", "$s_{\\ell}$", nil)
	if show {
		plt.Show()
	}
}
