// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ad

import "github.com/cpmech/gosl/chk"

// Eval3 is the fixed-size specialization with three derivative
// directions, the typical local Jacobian row of a three-phase
// property relation. Unrolled; semantics identical to Eval with
// n = 3.
type Eval3[T Float] struct {
	v T
	d [3]T
}

// NewEval3 returns a constant: value v, all three derivatives zero
func NewEval3[T Float](v T) Eval3[T] { return Eval3[T]{v: v} }

// NewVar3 returns a seed of unknown i (0, 1 or 2)
func NewVar3[T Float](i int, v T) Eval3[T] {
	if i < 0 || i > 2 {
		chk.Panic("cannot seed derivative direction %d of an evaluation with 3 directions", i)
	}
	o := Eval3[T]{v: v}
	o.d[i] = 1
	return o
}

// N returns 3
func (o Eval3[T]) N() int { return 3 }

// Value returns the primal value
func (o Eval3[T]) Value() T { return o.v }

// Deriv returns the i-th derivative
func (o Eval3[T]) Deriv(i int) T { return o.d[i] }

// Float64 returns the primal value widened to float64
func (o Eval3[T]) Float64() float64 { return float64(o.v) }

// Const returns a constant with zero derivatives
func (o Eval3[T]) Const(v float64) Eval3[T] { return Eval3[T]{v: T(v)} }

// MaxValue returns the extreme-value sentinel of T's precision
func (o Eval3[T]) MaxValue() float64 { return float64(MaxValue[T]()) }

// Add returns o + b
func (o Eval3[T]) Add(b Eval3[T]) Eval3[T] {
	return Eval3[T]{v: o.v + b.v, d: [3]T{
		o.d[0] + b.d[0],
		o.d[1] + b.d[1],
		o.d[2] + b.d[2],
	}}
}

// Sub returns o - b
func (o Eval3[T]) Sub(b Eval3[T]) Eval3[T] {
	return Eval3[T]{v: o.v - b.v, d: [3]T{
		o.d[0] - b.d[0],
		o.d[1] - b.d[1],
		o.d[2] - b.d[2],
	}}
}

// Mul returns o * b
func (o Eval3[T]) Mul(b Eval3[T]) Eval3[T] {
	return Eval3[T]{v: o.v * b.v, d: [3]T{
		o.d[0]*b.v + o.v*b.d[0],
		o.d[1]*b.v + o.v*b.d[1],
		o.d[2]*b.v + o.v*b.d[2],
	}}
}

// Div returns o / b
func (o Eval3[T]) Div(b Eval3[T]) Eval3[T] {
	bb := b.v * b.v
	return Eval3[T]{v: o.v / b.v, d: [3]T{
		(o.d[0]*b.v - o.v*b.d[0]) / bb,
		(o.d[1]*b.v - o.v*b.d[1]) / bb,
		(o.d[2]*b.v - o.v*b.d[2]) / bb,
	}}
}

// Neg returns -o
func (o Eval3[T]) Neg() Eval3[T] {
	return Eval3[T]{v: -o.v, d: [3]T{-o.d[0], -o.d[1], -o.d[2]}}
}

// AddScalar returns o + v
func (o Eval3[T]) AddScalar(v float64) Eval3[T] { return Eval3[T]{v: o.v + T(v), d: o.d} }

// SubScalar returns o - v
func (o Eval3[T]) SubScalar(v float64) Eval3[T] { return Eval3[T]{v: o.v - T(v), d: o.d} }

// ScalarSub returns v - o
func (o Eval3[T]) ScalarSub(v float64) Eval3[T] {
	return Eval3[T]{v: T(v) - o.v, d: [3]T{-o.d[0], -o.d[1], -o.d[2]}}
}

// MulScalar returns o * v
func (o Eval3[T]) MulScalar(v float64) Eval3[T] {
	return Eval3[T]{v: o.v * T(v), d: [3]T{o.d[0] * T(v), o.d[1] * T(v), o.d[2] * T(v)}}
}

// DivScalar returns o / v
func (o Eval3[T]) DivScalar(v float64) Eval3[T] {
	return Eval3[T]{v: o.v / T(v), d: [3]T{o.d[0] / T(v), o.d[1] / T(v), o.d[2] / T(v)}}
}

// ScalarDiv returns v / o
func (o Eval3[T]) ScalarDiv(v float64) Eval3[T] {
	oo := o.v * o.v
	return Eval3[T]{v: T(v) / o.v, d: [3]T{
		-T(v) * o.d[0] / oo,
		-T(v) * o.d[1] / oo,
		-T(v) * o.d[2] / oo,
	}}
}

// Sqrt returns √o
func (o Eval3[T]) Sqrt() Eval3[T] {
	s := sqrtS(o.v)
	f := T(0.5) / s
	return Eval3[T]{v: s, d: [3]T{f * o.d[0], f * o.d[1], f * o.d[2]}}
}

// Exp returns e^o
func (o Eval3[T]) Exp() Eval3[T] {
	e := expS(o.v)
	return Eval3[T]{v: e, d: [3]T{e * o.d[0], e * o.d[1], e * o.d[2]}}
}

// Log returns ln(o)
func (o Eval3[T]) Log() Eval3[T] {
	return Eval3[T]{v: logS(o.v), d: [3]T{o.d[0] / o.v, o.d[1] / o.v, o.d[2] / o.v}}
}

// Sin returns sin(o)
func (o Eval3[T]) Sin() Eval3[T] {
	f := cosS(o.v)
	return Eval3[T]{v: sinS(o.v), d: [3]T{f * o.d[0], f * o.d[1], f * o.d[2]}}
}

// Cos returns cos(o)
func (o Eval3[T]) Cos() Eval3[T] {
	f := -sinS(o.v)
	return Eval3[T]{v: cosS(o.v), d: [3]T{f * o.d[0], f * o.d[1], f * o.d[2]}}
}

// Tan returns tan(o)
func (o Eval3[T]) Tan() Eval3[T] {
	t := tanS(o.v)
	f := 1 + t*t
	return Eval3[T]{v: t, d: [3]T{f * o.d[0], f * o.d[1], f * o.d[2]}}
}

// Abs returns |o|; derivative at o == 0 is zero
func (o Eval3[T]) Abs() Eval3[T] {
	s := signS(o.v)
	return Eval3[T]{v: s * o.v, d: [3]T{s * o.d[0], s * o.d[1], s * o.d[2]}}
}

// Pow returns o^y; zero base yields an exact zero
func (o Eval3[T]) Pow(y Eval3[T]) Eval3[T] {
	if o.v == 0 {
		return Eval3[T]{}
	}
	v := powS(o.v, y.v)
	fx := y.v * powS(o.v, y.v-1)
	fy := v * logS(o.v)
	return Eval3[T]{v: v, d: [3]T{
		fx*o.d[0] + fy*y.d[0],
		fx*o.d[1] + fy*y.d[1],
		fx*o.d[2] + fy*y.d[2],
	}}
}

// PowScalar returns o^y with constant exponent; zero base yields an
// exact zero
func (o Eval3[T]) PowScalar(y float64) Eval3[T] {
	if o.v == 0 {
		return Eval3[T]{}
	}
	yy := T(y)
	v := powS(o.v, yy)
	f := yy * powS(o.v, yy-1)
	return Eval3[T]{v: v, d: [3]T{f * o.d[0], f * o.d[1], f * o.d[2]}}
}

// Min returns the smaller operand; ties keep the receiver
func (o Eval3[T]) Min(b Eval3[T]) Eval3[T] {
	if b.v < o.v {
		return b
	}
	return o
}

// Max returns the larger operand; ties keep the receiver
func (o Eval3[T]) Max(b Eval3[T]) Eval3[T] {
	if b.v > o.v {
		return b
	}
	return o
}

// IsNaN tells whether the primal value is NaN
func (o Eval3[T]) IsNaN() bool { return isNaNS(o.v) }

// IsFinite tells whether the primal value is neither NaN nor infinite
func (o Eval3[T]) IsFinite() bool { return isFiniteS(o.v) }
