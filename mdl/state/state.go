// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package state implements the fluid state handed to property
// relations: per-phase saturations and pressures held as evaluations,
// so that a relation reading the state propagates derivatives with
// respect to whichever quantities the caller seeded.
package state

import (
	"github.com/cpmech/gosl/chk"

	"github.com/mahg/opm-material/ad"
)

// phase indices
const (
	Wet       = 0 // wetting phase (liquid)
	Nonwet    = 1 // non-wetting phase (gas)
	NumPhases = 2
)

// Fluid holds per-phase saturations and pressures. It owns no solver
// state: it is a plain value container filled by the caller before
// each property evaluation.
type Fluid[S ad.Num[S]] struct {
	sat  [NumPhases]S
	pres [NumPhases]S
}

// NewFluid returns a fluid state with all entries set to constants
// derived from template (which only supplies the derivative basis)
func NewFluid[S ad.Num[S]](template S) *Fluid[S] {
	var o Fluid[S]
	zero := template.Const(0)
	for i := 0; i < NumPhases; i++ {
		o.sat[i] = zero
		o.pres[i] = zero
	}
	return &o
}

// SetSaturation sets the saturation of one phase
func (o *Fluid[S]) SetSaturation(phaseIdx int, sat S) {
	o.check(phaseIdx)
	o.sat[phaseIdx] = sat
}

// SetPressure sets the pressure of one phase
func (o *Fluid[S]) SetPressure(phaseIdx int, p S) {
	o.check(phaseIdx)
	o.pres[phaseIdx] = p
}

// Saturation returns the saturation of one phase
func (o *Fluid[S]) Saturation(phaseIdx int) S {
	o.check(phaseIdx)
	return o.sat[phaseIdx]
}

// Pressure returns the pressure of one phase
func (o *Fluid[S]) Pressure(phaseIdx int) S {
	o.check(phaseIdx)
	return o.pres[phaseIdx]
}

// Pc returns the capillary pressure: p_nonwet - p_wet
func (o *Fluid[S]) Pc() S {
	return o.pres[Nonwet].Sub(o.pres[Wet])
}

func (o *Fluid[S]) check(phaseIdx int) {
	if phaseIdx < 0 || phaseIdx >= NumPhases {
		chk.Panic("phase index %d is out of range", phaseIdx)
	}
}
