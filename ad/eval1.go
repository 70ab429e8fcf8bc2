// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ad

// Eval1 is the fixed-size specialization with one derivative
// direction: the common "seed one unknown, get one sensitivity" case
// (e.g. ∂sl/∂pc of a retention curve). Propagation is written without
// loops so the compiler can keep everything in registers. Semantics
// are identical to Eval with n = 1.
type Eval1[T Float] struct {
	v T
	d [1]T
}

// NewEval1 returns a constant: value v, derivative zero
func NewEval1[T Float](v T) Eval1[T] { return Eval1[T]{v: v} }

// NewVar1 returns the seed: value v, derivative one
func NewVar1[T Float](v T) Eval1[T] { return Eval1[T]{v: v, d: [1]T{1}} }

// N returns 1
func (o Eval1[T]) N() int { return 1 }

// Value returns the primal value
func (o Eval1[T]) Value() T { return o.v }

// Deriv returns the i-th derivative
func (o Eval1[T]) Deriv(i int) T { return o.d[i] }

// Float64 returns the primal value widened to float64
func (o Eval1[T]) Float64() float64 { return float64(o.v) }

// Const returns a constant with zero derivative
func (o Eval1[T]) Const(v float64) Eval1[T] { return Eval1[T]{v: T(v)} }

// MaxValue returns the extreme-value sentinel of T's precision
func (o Eval1[T]) MaxValue() float64 { return float64(MaxValue[T]()) }

// Add returns o + b
func (o Eval1[T]) Add(b Eval1[T]) Eval1[T] {
	return Eval1[T]{v: o.v + b.v, d: [1]T{o.d[0] + b.d[0]}}
}

// Sub returns o - b
func (o Eval1[T]) Sub(b Eval1[T]) Eval1[T] {
	return Eval1[T]{v: o.v - b.v, d: [1]T{o.d[0] - b.d[0]}}
}

// Mul returns o * b
func (o Eval1[T]) Mul(b Eval1[T]) Eval1[T] {
	return Eval1[T]{v: o.v * b.v, d: [1]T{o.d[0]*b.v + o.v*b.d[0]}}
}

// Div returns o / b
func (o Eval1[T]) Div(b Eval1[T]) Eval1[T] {
	bb := b.v * b.v
	return Eval1[T]{v: o.v / b.v, d: [1]T{(o.d[0]*b.v - o.v*b.d[0]) / bb}}
}

// Neg returns -o
func (o Eval1[T]) Neg() Eval1[T] { return Eval1[T]{v: -o.v, d: [1]T{-o.d[0]}} }

// AddScalar returns o + v
func (o Eval1[T]) AddScalar(v float64) Eval1[T] { return Eval1[T]{v: o.v + T(v), d: o.d} }

// SubScalar returns o - v
func (o Eval1[T]) SubScalar(v float64) Eval1[T] { return Eval1[T]{v: o.v - T(v), d: o.d} }

// ScalarSub returns v - o
func (o Eval1[T]) ScalarSub(v float64) Eval1[T] {
	return Eval1[T]{v: T(v) - o.v, d: [1]T{-o.d[0]}}
}

// MulScalar returns o * v
func (o Eval1[T]) MulScalar(v float64) Eval1[T] {
	return Eval1[T]{v: o.v * T(v), d: [1]T{o.d[0] * T(v)}}
}

// DivScalar returns o / v
func (o Eval1[T]) DivScalar(v float64) Eval1[T] {
	return Eval1[T]{v: o.v / T(v), d: [1]T{o.d[0] / T(v)}}
}

// ScalarDiv returns v / o
func (o Eval1[T]) ScalarDiv(v float64) Eval1[T] {
	oo := o.v * o.v
	return Eval1[T]{v: T(v) / o.v, d: [1]T{-T(v) * o.d[0] / oo}}
}

// Sqrt returns √o
func (o Eval1[T]) Sqrt() Eval1[T] {
	s := sqrtS(o.v)
	f := T(0.5) / s
	return Eval1[T]{v: s, d: [1]T{f * o.d[0]}}
}

// Exp returns e^o
func (o Eval1[T]) Exp() Eval1[T] {
	e := expS(o.v)
	return Eval1[T]{v: e, d: [1]T{e * o.d[0]}}
}

// Log returns ln(o)
func (o Eval1[T]) Log() Eval1[T] {
	return Eval1[T]{v: logS(o.v), d: [1]T{o.d[0] / o.v}}
}

// Sin returns sin(o)
func (o Eval1[T]) Sin() Eval1[T] {
	return Eval1[T]{v: sinS(o.v), d: [1]T{cosS(o.v) * o.d[0]}}
}

// Cos returns cos(o)
func (o Eval1[T]) Cos() Eval1[T] {
	return Eval1[T]{v: cosS(o.v), d: [1]T{-sinS(o.v) * o.d[0]}}
}

// Tan returns tan(o)
func (o Eval1[T]) Tan() Eval1[T] {
	t := tanS(o.v)
	return Eval1[T]{v: t, d: [1]T{(1 + t*t) * o.d[0]}}
}

// Abs returns |o|; derivative at o == 0 is zero
func (o Eval1[T]) Abs() Eval1[T] {
	s := signS(o.v)
	return Eval1[T]{v: s * o.v, d: [1]T{s * o.d[0]}}
}

// Pow returns o^y; zero base yields an exact zero
func (o Eval1[T]) Pow(y Eval1[T]) Eval1[T] {
	if o.v == 0 {
		return Eval1[T]{}
	}
	v := powS(o.v, y.v)
	fx := y.v * powS(o.v, y.v-1)
	fy := v * logS(o.v)
	return Eval1[T]{v: v, d: [1]T{fx*o.d[0] + fy*y.d[0]}}
}

// PowScalar returns o^y with constant exponent; zero base yields an
// exact zero
func (o Eval1[T]) PowScalar(y float64) Eval1[T] {
	if o.v == 0 {
		return Eval1[T]{}
	}
	yy := T(y)
	v := powS(o.v, yy)
	f := yy * powS(o.v, yy-1)
	return Eval1[T]{v: v, d: [1]T{f * o.d[0]}}
}

// Min returns the smaller operand; ties keep the receiver
func (o Eval1[T]) Min(b Eval1[T]) Eval1[T] {
	if b.v < o.v {
		return b
	}
	return o
}

// Max returns the larger operand; ties keep the receiver
func (o Eval1[T]) Max(b Eval1[T]) Eval1[T] {
	if b.v > o.v {
		return b
	}
	return o
}

// IsNaN tells whether the primal value is NaN
func (o Eval1[T]) IsNaN() bool { return isNaNS(o.v) }

// IsFinite tells whether the primal value is neither NaN nor infinite
func (o Eval1[T]) IsFinite() bool { return isFiniteS(o.v) }
