// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ad

import "github.com/cpmech/gosl/chk"

// Eval2 is the fixed-size specialization with two derivative
// directions, e.g. a relation of capillary pressure and saturation
// differentiated with respect to both. Unrolled; semantics identical
// to Eval with n = 2.
type Eval2[T Float] struct {
	v T
	d [2]T
}

// NewEval2 returns a constant: value v, both derivatives zero
func NewEval2[T Float](v T) Eval2[T] { return Eval2[T]{v: v} }

// NewVar2 returns a seed of unknown i (0 or 1)
func NewVar2[T Float](i int, v T) Eval2[T] {
	if i < 0 || i > 1 {
		chk.Panic("cannot seed derivative direction %d of an evaluation with 2 directions", i)
	}
	o := Eval2[T]{v: v}
	o.d[i] = 1
	return o
}

// N returns 2
func (o Eval2[T]) N() int { return 2 }

// Value returns the primal value
func (o Eval2[T]) Value() T { return o.v }

// Deriv returns the i-th derivative
func (o Eval2[T]) Deriv(i int) T { return o.d[i] }

// Float64 returns the primal value widened to float64
func (o Eval2[T]) Float64() float64 { return float64(o.v) }

// Const returns a constant with zero derivatives
func (o Eval2[T]) Const(v float64) Eval2[T] { return Eval2[T]{v: T(v)} }

// MaxValue returns the extreme-value sentinel of T's precision
func (o Eval2[T]) MaxValue() float64 { return float64(MaxValue[T]()) }

// Add returns o + b
func (o Eval2[T]) Add(b Eval2[T]) Eval2[T] {
	return Eval2[T]{v: o.v + b.v, d: [2]T{o.d[0] + b.d[0], o.d[1] + b.d[1]}}
}

// Sub returns o - b
func (o Eval2[T]) Sub(b Eval2[T]) Eval2[T] {
	return Eval2[T]{v: o.v - b.v, d: [2]T{o.d[0] - b.d[0], o.d[1] - b.d[1]}}
}

// Mul returns o * b
func (o Eval2[T]) Mul(b Eval2[T]) Eval2[T] {
	return Eval2[T]{v: o.v * b.v, d: [2]T{
		o.d[0]*b.v + o.v*b.d[0],
		o.d[1]*b.v + o.v*b.d[1],
	}}
}

// Div returns o / b
func (o Eval2[T]) Div(b Eval2[T]) Eval2[T] {
	bb := b.v * b.v
	return Eval2[T]{v: o.v / b.v, d: [2]T{
		(o.d[0]*b.v - o.v*b.d[0]) / bb,
		(o.d[1]*b.v - o.v*b.d[1]) / bb,
	}}
}

// Neg returns -o
func (o Eval2[T]) Neg() Eval2[T] {
	return Eval2[T]{v: -o.v, d: [2]T{-o.d[0], -o.d[1]}}
}

// AddScalar returns o + v
func (o Eval2[T]) AddScalar(v float64) Eval2[T] { return Eval2[T]{v: o.v + T(v), d: o.d} }

// SubScalar returns o - v
func (o Eval2[T]) SubScalar(v float64) Eval2[T] { return Eval2[T]{v: o.v - T(v), d: o.d} }

// ScalarSub returns v - o
func (o Eval2[T]) ScalarSub(v float64) Eval2[T] {
	return Eval2[T]{v: T(v) - o.v, d: [2]T{-o.d[0], -o.d[1]}}
}

// MulScalar returns o * v
func (o Eval2[T]) MulScalar(v float64) Eval2[T] {
	return Eval2[T]{v: o.v * T(v), d: [2]T{o.d[0] * T(v), o.d[1] * T(v)}}
}

// DivScalar returns o / v
func (o Eval2[T]) DivScalar(v float64) Eval2[T] {
	return Eval2[T]{v: o.v / T(v), d: [2]T{o.d[0] / T(v), o.d[1] / T(v)}}
}

// ScalarDiv returns v / o
func (o Eval2[T]) ScalarDiv(v float64) Eval2[T] {
	oo := o.v * o.v
	return Eval2[T]{v: T(v) / o.v, d: [2]T{-T(v) * o.d[0] / oo, -T(v) * o.d[1] / oo}}
}

// Sqrt returns √o
func (o Eval2[T]) Sqrt() Eval2[T] {
	s := sqrtS(o.v)
	f := T(0.5) / s
	return Eval2[T]{v: s, d: [2]T{f * o.d[0], f * o.d[1]}}
}

// Exp returns e^o
func (o Eval2[T]) Exp() Eval2[T] {
	e := expS(o.v)
	return Eval2[T]{v: e, d: [2]T{e * o.d[0], e * o.d[1]}}
}

// Log returns ln(o)
func (o Eval2[T]) Log() Eval2[T] {
	return Eval2[T]{v: logS(o.v), d: [2]T{o.d[0] / o.v, o.d[1] / o.v}}
}

// Sin returns sin(o)
func (o Eval2[T]) Sin() Eval2[T] {
	f := cosS(o.v)
	return Eval2[T]{v: sinS(o.v), d: [2]T{f * o.d[0], f * o.d[1]}}
}

// Cos returns cos(o)
func (o Eval2[T]) Cos() Eval2[T] {
	f := -sinS(o.v)
	return Eval2[T]{v: cosS(o.v), d: [2]T{f * o.d[0], f * o.d[1]}}
}

// Tan returns tan(o)
func (o Eval2[T]) Tan() Eval2[T] {
	t := tanS(o.v)
	f := 1 + t*t
	return Eval2[T]{v: t, d: [2]T{f * o.d[0], f * o.d[1]}}
}

// Abs returns |o|; derivative at o == 0 is zero
func (o Eval2[T]) Abs() Eval2[T] {
	s := signS(o.v)
	return Eval2[T]{v: s * o.v, d: [2]T{s * o.d[0], s * o.d[1]}}
}

// Pow returns o^y; zero base yields an exact zero
func (o Eval2[T]) Pow(y Eval2[T]) Eval2[T] {
	if o.v == 0 {
		return Eval2[T]{}
	}
	v := powS(o.v, y.v)
	fx := y.v * powS(o.v, y.v-1)
	fy := v * logS(o.v)
	return Eval2[T]{v: v, d: [2]T{
		fx*o.d[0] + fy*y.d[0],
		fx*o.d[1] + fy*y.d[1],
	}}
}

// PowScalar returns o^y with constant exponent; zero base yields an
// exact zero
func (o Eval2[T]) PowScalar(y float64) Eval2[T] {
	if o.v == 0 {
		return Eval2[T]{}
	}
	yy := T(y)
	v := powS(o.v, yy)
	f := yy * powS(o.v, yy-1)
	return Eval2[T]{v: v, d: [2]T{f * o.d[0], f * o.d[1]}}
}

// Min returns the smaller operand; ties keep the receiver
func (o Eval2[T]) Min(b Eval2[T]) Eval2[T] {
	if b.v < o.v {
		return b
	}
	return o
}

// Max returns the larger operand; ties keep the receiver
func (o Eval2[T]) Max(b Eval2[T]) Eval2[T] {
	if b.v > o.v {
		return b
	}
	return o
}

// IsNaN tells whether the primal value is NaN
func (o Eval2[T]) IsNaN() bool { return isNaNS(o.v) }

// IsFinite tells whether the primal value is neither NaN nor infinite
func (o Eval2[T]) IsFinite() bool { return isFiniteS(o.v) }
