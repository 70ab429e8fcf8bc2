// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ad

import "math"

// scalar math helpers over the Float contract. Single precision widens
// to float64, calls the standard library and narrows the result.

func sqrtS[T Float](x T) T { return T(math.Sqrt(float64(x))) }

func powS[T Float](x, y T) T { return T(math.Pow(float64(x), float64(y))) }

func expS[T Float](x T) T { return T(math.Exp(float64(x))) }

func logS[T Float](x T) T { return T(math.Log(float64(x))) }

func sinS[T Float](x T) T { return T(math.Sin(float64(x))) }

func cosS[T Float](x T) T { return T(math.Cos(float64(x))) }

func tanS[T Float](x T) T { return T(math.Tan(float64(x))) }

func isNaNS[T Float](x T) bool { return math.IsNaN(float64(x)) }

func isFiniteS[T Float](x T) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// signS returns -1, 0 or +1; zero at exactly x == 0 is the convention
// used for the derivative of Abs
func signS[T Float](x T) T {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
