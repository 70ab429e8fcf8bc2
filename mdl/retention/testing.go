// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/mahg/opm-material/ad"
)

// Check tests a retention model along a drying path: the AD
// derivative Cc = ∂sl/∂pc is compared against central differences of
// Sl, the path integration (Update) against the direct curve, and the
// inverse curve Pc against the forward one.
func Check(tst *testing.T, mdl Model[ad.Eval1[float64]], pc0, sl0, pcf float64, npts int, tolCc, tolUp, tolInv float64, verbose bool) {

	// for all pc stations
	Pc := utl.LinSpace(pc0, pcf, npts)
	Sl := make([]float64, npts)
	Sl[0] = sl0
	for i := 1; i < npts; i++ {

		// update along path
		Sl[i] = Update(mdl, Pc[i-1], Sl[i-1], Pc[i]-Pc[i-1])

		// direct curve must match the integrated path
		sl := ad.Decay(mdl.Sl(ad.NewVar1(Pc[i])))
		if verbose {
			io.Pforan("pc=%g, sl(updated)=%g, sl(direct)=%g\n", Pc[i], Sl[i], sl)
		}
		chk.Float64(tst, io.Sf("sl @ pc=%.3f", Pc[i]), tolUp, Sl[i], sl)

		// check Cc = ∂sl/∂pc against numerical differentiation
		ccAna := Cc(mdl, Pc[i])
		chk.DerivScaSca(tst, "Cc = ∂sl/∂pc    ", tolCc, ccAna, Pc[i], 1e-3, verbose, func(x float64) float64 {
			return ad.Decay(mdl.Sl(ad.NewVar1(x)))
		})

		// inverse curve: pc(sl(pc)) == pc inside the open range
		if sl > mdl.SlMin() && sl < mdl.SlMax() {
			pcBack := ad.Decay(mdl.Pc(ad.NewVar1(sl)))
			chk.Float64(tst, io.Sf("pc(sl) @ pc=%.3f", Pc[i]), tolInv, pcBack, Pc[i])

			// chain rule: ∂pc/∂sl · ∂sl/∂pc == 1
			dpcdsl := mdl.Pc(ad.NewVar1(sl)).Deriv(0)
			chk.Float64(tst, "∂pc/∂sl·∂sl/∂pc", tolInv, dpcdsl*ccAna, 1.0)
		}
	}
}
