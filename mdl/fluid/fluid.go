// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements models for fluid density
package fluid

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/mahg/opm-material/ad"
)

// Model implements a model to compute pressure (p) and intrinsic density (R) of a fluid
// along a column with gravity (g). The model is:
//   R(p) = R0 + C・(p - p0)   thus   dR/dp = C
// Pressure and density are generic in the evaluation type, so dR/dp
// and dp/dz come out of seeding instead of hand-coded formulas.
type Model[S ad.Num[S]] struct {

	// material data
	R0  float64 // intrinsic density corresponding to p0
	P0  float64 // pressure corresponding to R0
	C   float64 // compressibility coefficient; e.g. R0/Kbulk or M/(R・θ)
	Gas bool    // is gas instead of liquid?

	// additional data
	H    float64 // elevation where (R0,p0) is known
	Grav float64 // gravity acceleration (positive constant)
}

// Init initialises this structure
func (o *Model[S]) Init(prms dbf.Params, H, grav float64) {
	for _, p := range prms {
		switch p.N {
		case "R0":
			o.R0 = p.V
		case "P0":
			o.P0 = p.V
		case "C":
			o.C = p.V
		case "gas":
			o.Gas = p.V > 0
		}
	}
	o.H = H
	o.Grav = grav
}

// GetPrms gets (an example of) parameters
//  Input:
//   example -- returns example of parameters; othewise returs current parameters
//  Note:
//   Gas variable is used to return dry air properties instead of water
func (o Model[S]) GetPrms(example bool) dbf.Params {
	if example {
		if o.Gas {
			return dbf.Params{ // dry air
				&dbf.P{N: "R0", V: 0.0012}, // [Mg/m³]
				&dbf.P{N: "P0", V: 0.0},    // [kPa]
				&dbf.P{N: "C", V: 1.17e-5}, // [Mg/(m³・kPa)]
				&dbf.P{N: "Gas", V: 1},     // [-]
			}
		}
		return dbf.Params{ // water
			&dbf.P{N: "R0", V: 1.0},    // [Mg/m³]
			&dbf.P{N: "P0", V: 0.0},    // [kPa]
			&dbf.P{N: "C", V: 4.53e-7}, // [Mg/(m³・kPa)]
			&dbf.P{N: "Gas", V: 0},     // [-]
		}
	}
	var gas float64
	if o.Gas {
		gas = 1
	}
	return dbf.Params{
		&dbf.P{N: "R0", V: o.R0},
		&dbf.P{N: "P0", V: o.P0},
		&dbf.P{N: "C", V: o.C},
		&dbf.P{N: "Gas", V: gas},
	}
}

// Density computes the intrinsic density for a given pressure
func (o Model[S]) Density(p S) S {
	return p.SubScalar(o.P0).MulScalar(o.C).AddScalar(o.R0)
}

// Calc computes pressure and density at elevation z
func (o Model[S]) Calc(z S) (p, R S) {
	p = z.ScalarSub(o.H).MulScalar(o.C * o.Grav).Exp().AddScalar(-1).MulScalar(o.R0 / o.C).AddScalar(o.P0)
	R = o.Density(p)
	return
}

// Plot plots pressure and density along height of column
func Plot(o Model[ad.Eval1[float64]], dirout, fnkey string, np int) {

	Z := utl.LinSpace(0, o.H, np)
	P := make([]float64, np)
	R := make([]float64, np)
	for i, z := range Z {
		p, r := o.Calc(ad.NewEval1(z))
		P[i], R[i] = p.Float64(), r.Float64()
	}

	pMaxLin := o.R0 * o.Grav * o.H
	subscript := "\\ell"
	if o.Gas {
		subscript = "g"
	}

	plt.Subplot(2, 1, 1)
	plt.Plot(P, Z, &plt.A{C: "b", NoClip: true})
	plt.Plot([]float64{o.P0, pMaxLin}, []float64{o.H, 0}, &plt.A{C: "gray", Ls: "--"})
	plt.Gll("$p_{"+subscript+"}$", "$z$", nil)

	plt.Subplot(2, 1, 2)
	plt.Plot(R, Z, &plt.A{C: "r", NoClip: true})
	plt.Plot([]float64{o.R0, o.R0 + o.C*pMaxLin}, []float64{o.H, 0}, &plt.A{C: "gray", Ls: "--"})
	plt.Gll("$\\rho_{"+subscript+"}$", "$z$", nil)
	plt.SetTicksNormal()

	plt.Save(dirout, fnkey)
}
