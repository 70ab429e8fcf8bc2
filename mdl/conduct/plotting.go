// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/mahg/opm-material/ad"
)

// Plot plots klr(sl) or kgr(sg), together with the corresponding
// derivative obtained by seeding the saturation
func Plot(o Model[ad.Eval1[float64]], dirout, fnkey string, np int, gas, withText, deriv bool) {
	X := utl.LinSpace(0, 1, np)
	Y := make([]float64, np)
	var Z []float64
	if deriv {
		Z = make([]float64, np)
	}
	for i := 0; i < np; i++ {
		if gas {
			Y[i] = o.Kgr(ad.NewEval1(X[i])).Float64()
		} else {
			Y[i] = o.Klr(ad.NewEval1(X[i])).Float64()
		}
		if deriv {
			if gas {
				Z[i] = DkgrDsg(o, X[i])
			} else {
				Z[i] = DklrDsl(o, X[i])
			}
		}
	}
	if deriv {
		plt.Subplot(2, 1, 1)
	}
	plt.Plot(X, Y, &plt.A{C: "b", NoClip: true})
	if withText {
		l := np - 1
		plt.Text(X[0], Y[0], io.Sf("(%g, %g)", X[0], Y[0]), &plt.A{C: "red", Ha: "left", Fsz: 8})
		plt.Text(X[l], Y[l], io.Sf("(%g, %g)", X[l], Y[l]), &plt.A{C: "red", Ha: "right", Fsz: 8})
	}
	key := "\\ell"
	if gas {
		key = "g"
	}
	plt.Gll("$s_{"+key+"}$", "$k_{"+key+"}^r$", nil)
	if deriv {
		plt.Subplot(2, 1, 2)
		plt.Plot(X, Z, &plt.A{C: "b", NoClip: true})
		if withText {
			l := np - 1
			plt.Text(X[0], Z[0], io.Sf("(%g, %g)", X[0], Z[0]), &plt.A{C: "red", Ha: "left", Fsz: 8})
			plt.Text(X[l], Z[l], io.Sf("(%g, %g)", X[l], Z[l]), &plt.A{C: "red", Ha: "right", Fsz: 8})
		}
		plt.Gll("$s_{"+key+"}$", "$\\mathrm{d}{k_{"+key+"}^r}/\\mathrm{d}{s_{"+key+"}}$", nil)
	}
	plt.Save(dirout, fnkey)
}
