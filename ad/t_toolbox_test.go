// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ad

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
)

// mualemKr is a relation written once against the capability set: the
// Mualem relative permeability √s·(1-(1-s^(1/m))^m)². It runs
// unchanged on the plain-scalar path and on every differentiated
// variant.
func mualemKr[S Num[S]](s S, m float64) S {
	r := s.PowScalar(1.0/m).ScalarSub(1).PowScalar(m).ScalarSub(1)
	return Sqrt(s).Mul(r).Mul(r)
}

func Test_toolbox01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("toolbox01. one relation, all numeric variants")

	m := 0.8
	S := utl.LinSpace(0.05, 0.95, 7)
	for _, sval := range S {

		// plain-scalar path carries no derivative bookkeeping
		plain := mualemKr(NewEval0(sval), m)

		// differentiated paths agree on the value
		e1 := mualemKr(NewVar1(sval), m)
		e3 := mualemKr(NewVar3(1, sval), m)
		eg := mualemKr(NewVar(5, 2, sval), m)
		chk.Float64(tst, "kr0 == kr1", 1e-17, plain.Value(), e1.Value())
		chk.Float64(tst, "kr0 == kr3", 1e-17, plain.Value(), e3.Value())
		chk.Float64(tst, "kr0 == krN", 1e-17, plain.Value(), eg.Value())

		// and on the derivative, regardless of basis size and seat
		chk.Float64(tst, "dkr1 == dkr3", 1e-17, e1.Deriv(0), e3.Deriv(1))
		chk.Float64(tst, "dkr1 == dkrN", 1e-17, e1.Deriv(0), eg.Deriv(2))

		// unseeded directions stay clean
		chk.Float64(tst, "dkr3 off-seat", 1e-17, e3.Deriv(0), 0)
		chk.Float64(tst, "dkrN off-seat", 1e-17, eg.Deriv(4), 0)

		// independent cross-check with central differences
		dnum := num.DerivCen5(sval, 1e-3, func(x float64) float64 {
			return mualemKr(NewEval0(x), m).Value()
		})
		chk.Float64(tst, "dkr vs num", 1e-8, e1.Deriv(0), dnum)
	}
}

func Test_toolbox02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("toolbox02. free functions mirror the method set")

	a := NewVar2(0, 0.9)
	b := NewVar2(1, 1.7)
	chk.Float64(tst, "Sqrt", 1e-17, Sqrt(a).Value(), a.Sqrt().Value())
	chk.Float64(tst, "Exp", 1e-17, Exp(a).Deriv(0), a.Exp().Deriv(0))
	chk.Float64(tst, "Log", 1e-17, Log(b).Deriv(1), b.Log().Deriv(1))
	chk.Float64(tst, "Pow", 1e-17, Pow(a, b).Deriv(0), a.Pow(b).Deriv(0))
	chk.Float64(tst, "PowScalar", 1e-17, PowScalar(a, 2.2).Deriv(0), a.PowScalar(2.2).Deriv(0))
	chk.Float64(tst, "Min", 1e-17, Min(a, b).Value(), 0.9)
	chk.Float64(tst, "Max", 1e-17, Max(a, b).Deriv(1), 1.0)
	chk.Float64(tst, "Abs", 1e-17, Abs(a.Neg()).Value(), 0.9)
	chk.Float64(tst, "Sin/Cos/Tan", 1e-15, Tan(a).Value(), Sin(a).Div(Cos(a)).Value())
	chk.Float64(tst, "Decay", 1e-17, Decay(b), 1.7)
	if IsNaN(a) || !IsFinite(a) {
		tst.Errorf("classification failed\n")
		return
	}
}
