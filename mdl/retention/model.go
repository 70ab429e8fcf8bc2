// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package retention implements liquid retention curves (capillary
// pressure versus saturation) written once against the forward-mode
// AD capability set, so that ∂sl/∂pc and related sensitivities come
// from seeding instead of hand-coded formulas.
//  References:
//   [1] Pedroso DM, Sheng D and Zhao, J (2009) The concept of reference curves for constitutive
//       modelling in soil mechanics, Computers and Geotechnics, 36(1-2), 149-165,
//       http://dx.doi.org/10.1016/j.compgeo.2008.01.009
//   [2] van Genuchten MT (1980) A closed-form equation for predicting the hydraulic
//       conductivity of unsaturated soils, Soil Science Society of America Journal, 44, 892-898
package retention

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/ode"

	"github.com/mahg/opm-material/ad"
)

// Model implements a liquid retention model (LRM). Relations are
// generic in the numeric kind S: instantiated with ad.Eval0 they
// compute plain values; instantiated with a seeded evaluation they
// carry exact derivatives with respect to the seeded unknowns.
type Model[S ad.Num[S]] interface {
	Init(prms dbf.Params) error      // initialises retention model
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	SlMin() float64                  // returns sl_min
	SlMax() float64                  // returns sl_max
	Sl(pc S) S                       // computes sl from pc
	Pc(sl S) S                       // computes pc from sl (inverse curve)
}

// New returns a new liquid retention model. The factory is a switch
// rather than an allocators map because Go package variables cannot
// be generic.
func New[S ad.Num[S]](name string) (Model[S], error) {
	switch name {
	case "vg":
		return new(VanGen[S]), nil
	case "bc":
		return new(BrooksCorey[S]), nil
	case "lin":
		return new(Lin[S]), nil
	}
	return nil, chk.Err("model %q is not available in 'retention' database", name)
}

// Cc computes Cc(pc) := ∂sl/∂pc by seeding a one-direction evaluation
func Cc[T ad.Float](mdl Model[ad.Eval1[T]], pc T) T {
	return mdl.Sl(ad.NewVar1(pc)).Deriv(0)
}

// Update updates sl for a given Δpc by integrating dsl/dx = Cc·Δpc
// along the path x ∈ [0,1], pc = pc0 + x·Δpc. An implicit ODE solver
// is used; the right-hand side comes from the model by AD seeding.
// The solver panics on failure.
func Update(mdl Model[ad.Eval1[float64]], pc0, sl0, Δpc float64) (slNew float64) {

	// callback functions
	//   y[0]   = sl
	//   f(x,y) = dy/dx = dsl/dpc * dpc/dx = Cc * Δpc
	//   J(x,y) = df/dy = ∂Cc/∂sl * Δpc  (zero: Cc depends on pc only)
	fcn := func(f la.Vector, dx, x float64, y la.Vector) {
		f[0] = Cc(mdl, pc0+x*Δpc) * Δpc
	}
	jac := func(dfdy *la.Triplet, dx, x float64, y la.Vector) {
		if dfdy.Max() == 0 {
			dfdy.Init(1, 1, 1)
		}
		dfdy.Start()
		dfdy.Put(0, 0, 0)
	}

	// ode solver
	conf := ode.NewConfig("radau5", "", nil)
	conf.SetTols(1e-10, 1e-7)
	sol := ode.NewSolver(1, conf, fcn, jac, nil)
	defer sol.Free()

	// solve
	y := la.Vector{sl0}
	sol.Solve(y, 0, 1)
	return y[0]
}
