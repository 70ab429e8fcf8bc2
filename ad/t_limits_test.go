// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ad

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_limits01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("limits01. extreme-value sentinels stay finite")

	// single precision: the sentinel squared must not overflow
	m32 := MaxValue[float32]()
	sq32 := m32 * m32
	if !isFiniteS(m32) || !isFiniteS(sq32) {
		tst.Errorf("float32 sentinel overflows: %v² = %v\n", m32, sq32)
		return
	}

	// double precision likewise
	m64 := MaxValue[float64]()
	sq64 := m64 * m64
	if !isFiniteS(m64) || !isFiniteS(sq64) {
		tst.Errorf("float64 sentinel overflows: %v² = %v\n", m64, sq64)
		return
	}

	// the double-precision sentinel is exactly what overflows single
	// precision arithmetic, hence the per-precision table
	if isFiniteS(float32(m64) * float32(m64)) {
		tst.Errorf("float64 sentinel must not be usable in single precision\n")
		return
	}

	// sentinels flow through evaluations like any other value
	e := NewVar1(m64).MulScalar(2)
	if !e.IsFinite() {
		tst.Errorf("sentinel arithmetic must stay finite\n")
		return
	}
	chk.Float64(tst, "2·max deriv", 1e-17, e.Deriv(0), 2)

	// named single-precision types resolve to the single sentinel;
	// the comparison is against the sentinel after float32 rounding
	type press float32
	chk.Float64(tst, "named float32", 1e-17, float64(MaxValue[press]()), float64(float32(maxValue32)))
}
