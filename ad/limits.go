// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ad

import "math"

// extreme-value sentinels: finite constants standing in for
// "numerically unbounded" magnitudes (e.g. an out-of-range capillary
// pressure). Each is sized to its precision so that squaring, or
// multiplication by another sentinel, stays finite:
// 1e18² = 1e36 < maxFloat32 ≈ 3.4e38 and 1e100² = 1e200 <
// maxFloat64 ≈ 1.8e308.
const (
	maxValue32 = 1e18
	maxValue64 = 1e100
)

// MaxValue returns the extreme-value sentinel for T's precision. The
// precision is probed by converting a double-precision magnitude that
// overflows single precision, so named types with a float32 underlying
// type are classified correctly.
func MaxValue[T Float]() T {
	probe := math.MaxFloat64
	if math.IsInf(float64(T(probe)), 0) {
		single := float64(maxValue32)
		return T(single)
	}
	double := float64(maxValue64)
	return T(double)
}
