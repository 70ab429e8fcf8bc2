// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package conduct implements models for liquid and gas relative
// conductivity in porous media, written against the forward-mode AD
// capability set so that ∂klr/∂sl and ∂kgr/∂sg come from seeding.
package conduct

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/mahg/opm-material/ad"
)

// Model defines liquid-gas conductivity models
type Model[S ad.Num[S]] interface {
	Init(prms dbf.Params) error      // Init initialises this structure
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Klr(sl S) S                      // Klr returns klr
	Kgr(sg S) S                      // Kgr returns kgr
}

// New returns a new conductivity model
func New[S ad.Num[S]](name string) (Model[S], error) {
	switch name {
	case "mualem":
		return new(Mualem[S]), nil
	case "bc":
		return new(BrooksCorey[S]), nil
	case "corey":
		return new(Corey[S]), nil
	}
	return nil, chk.Err("model %q is not available in 'conduct' database", name)
}

// DklrDsl computes ∂klr/∂sl by seeding a one-direction evaluation
func DklrDsl[T ad.Float](mdl Model[ad.Eval1[T]], sl T) T {
	return mdl.Klr(ad.NewVar1(sl)).Deriv(0)
}

// DkgrDsg computes ∂kgr/∂sg by seeding a one-direction evaluation
func DkgrDsg[T ad.Float](mdl Model[ad.Eval1[T]], sg T) T {
	return mdl.Kgr(ad.NewVar1(sg)).Deriv(0)
}
