// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ad

// Eval0 is the degenerate specialization with zero derivative
// directions: a plain scalar wrapper. It is the "plain Scalar path"
// of the toolbox dispatch; no derivative bookkeeping happens at all.
// The pow zero-base policy of the differentiated variants applies
// here too, so all variants agree on values.
type Eval0[T Float] struct {
	v T
}

// NewEval0 wraps a plain scalar
func NewEval0[T Float](v T) Eval0[T] { return Eval0[T]{v: v} }

// Value returns the wrapped scalar
func (o Eval0[T]) Value() T { return o.v }

// N returns 0
func (o Eval0[T]) N() int { return 0 }

// Float64 returns the wrapped scalar widened to float64
func (o Eval0[T]) Float64() float64 { return float64(o.v) }

// Const returns a plain constant
func (o Eval0[T]) Const(v float64) Eval0[T] { return Eval0[T]{v: T(v)} }

// MaxValue returns the extreme-value sentinel of T's precision
func (o Eval0[T]) MaxValue() float64 { return float64(MaxValue[T]()) }

// Add returns o + b
func (o Eval0[T]) Add(b Eval0[T]) Eval0[T] { return Eval0[T]{v: o.v + b.v} }

// Sub returns o - b
func (o Eval0[T]) Sub(b Eval0[T]) Eval0[T] { return Eval0[T]{v: o.v - b.v} }

// Mul returns o * b
func (o Eval0[T]) Mul(b Eval0[T]) Eval0[T] { return Eval0[T]{v: o.v * b.v} }

// Div returns o / b
func (o Eval0[T]) Div(b Eval0[T]) Eval0[T] { return Eval0[T]{v: o.v / b.v} }

// Neg returns -o
func (o Eval0[T]) Neg() Eval0[T] { return Eval0[T]{v: -o.v} }

// AddScalar returns o + v
func (o Eval0[T]) AddScalar(v float64) Eval0[T] { return Eval0[T]{v: o.v + T(v)} }

// SubScalar returns o - v
func (o Eval0[T]) SubScalar(v float64) Eval0[T] { return Eval0[T]{v: o.v - T(v)} }

// ScalarSub returns v - o
func (o Eval0[T]) ScalarSub(v float64) Eval0[T] { return Eval0[T]{v: T(v) - o.v} }

// MulScalar returns o * v
func (o Eval0[T]) MulScalar(v float64) Eval0[T] { return Eval0[T]{v: o.v * T(v)} }

// DivScalar returns o / v
func (o Eval0[T]) DivScalar(v float64) Eval0[T] { return Eval0[T]{v: o.v / T(v)} }

// ScalarDiv returns v / o
func (o Eval0[T]) ScalarDiv(v float64) Eval0[T] { return Eval0[T]{v: T(v) / o.v} }

// Sqrt returns √o
func (o Eval0[T]) Sqrt() Eval0[T] { return Eval0[T]{v: sqrtS(o.v)} }

// Exp returns e^o
func (o Eval0[T]) Exp() Eval0[T] { return Eval0[T]{v: expS(o.v)} }

// Log returns ln(o)
func (o Eval0[T]) Log() Eval0[T] { return Eval0[T]{v: logS(o.v)} }

// Sin returns sin(o)
func (o Eval0[T]) Sin() Eval0[T] { return Eval0[T]{v: sinS(o.v)} }

// Cos returns cos(o)
func (o Eval0[T]) Cos() Eval0[T] { return Eval0[T]{v: cosS(o.v)} }

// Tan returns tan(o)
func (o Eval0[T]) Tan() Eval0[T] { return Eval0[T]{v: tanS(o.v)} }

// Abs returns |o|
func (o Eval0[T]) Abs() Eval0[T] { return Eval0[T]{v: signS(o.v) * o.v} }

// Pow returns o^y; zero base yields an exact zero
func (o Eval0[T]) Pow(y Eval0[T]) Eval0[T] {
	if o.v == 0 {
		return Eval0[T]{}
	}
	return Eval0[T]{v: powS(o.v, y.v)}
}

// PowScalar returns o^y with constant exponent; zero base yields an
// exact zero
func (o Eval0[T]) PowScalar(y float64) Eval0[T] {
	if o.v == 0 {
		return Eval0[T]{}
	}
	return Eval0[T]{v: powS(o.v, T(y))}
}

// Min returns the smaller operand; ties keep the receiver
func (o Eval0[T]) Min(b Eval0[T]) Eval0[T] {
	if b.v < o.v {
		return b
	}
	return o
}

// Max returns the larger operand; ties keep the receiver
func (o Eval0[T]) Max(b Eval0[T]) Eval0[T] {
	if b.v > o.v {
		return b
	}
	return o
}

// IsNaN tells whether the value is NaN
func (o Eval0[T]) IsNaN() bool { return isNaNS(o.v) }

// IsFinite tells whether the value is neither NaN nor infinite
func (o Eval0[T]) IsFinite() bool { return isFiniteS(o.v) }
