// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ad

import "github.com/cpmech/gosl/chk"

// Eval is the generic dense evaluation: one primal value and n partial
// derivatives, n fixed at construction. It is the semantic reference
// for the fixed-size specializations Eval1, Eval2 and Eval3, which
// must match it bit for bit at the same n. Eval is a pure value type:
// operations never modify their operands and always allocate a fresh
// derivative vector.
type Eval[T Float] struct {
	v T   // primal value
	d []T // d[i] = ∂v/∂(unknown i)
}

// NewEval returns a constant: value v, all n derivatives zero
func NewEval[T Float](n int, v T) Eval[T] {
	return Eval[T]{v: v, d: make([]T, n)}
}

// NewVar returns a seed marking unknown i of n: value v, ∂v/∂(i) = 1,
// all other derivatives zero
func NewVar[T Float](n, i int, v T) Eval[T] {
	if i < 0 || i >= n {
		chk.Panic("cannot seed derivative direction %d of an evaluation with %d directions", i, n)
	}
	o := Eval[T]{v: v, d: make([]T, n)}
	o.d[i] = 1
	return o
}

// N returns the number of derivative directions
func (o Eval[T]) N() int { return len(o.d) }

// Value returns the primal value in the native precision
func (o Eval[T]) Value() T { return o.v }

// Deriv returns ∂value/∂(unknown i)
func (o Eval[T]) Deriv(i int) T { return o.d[i] }

// Float64 returns the primal value widened to float64
func (o Eval[T]) Float64() float64 { return float64(o.v) }

// Const returns a constant sharing the receiver's derivative basis
func (o Eval[T]) Const(v float64) Eval[T] { return NewEval(len(o.d), T(v)) }

// MaxValue returns the extreme-value sentinel of T's precision
func (o Eval[T]) MaxValue() float64 { return float64(MaxValue[T]()) }

// sameBasis panics unless b has the receiver's derivative count.
// Mixing bases is a contract violation, not a recoverable error.
func (o Eval[T]) sameBasis(b Eval[T]) {
	if len(o.d) != len(b.d) {
		chk.Panic("evaluations have incompatible derivative bases: %d != %d", len(o.d), len(b.d))
	}
}

// Add returns o + b
func (o Eval[T]) Add(b Eval[T]) Eval[T] {
	o.sameBasis(b)
	r := Eval[T]{v: o.v + b.v, d: make([]T, len(o.d))}
	for i := range o.d {
		r.d[i] = o.d[i] + b.d[i]
	}
	return r
}

// Sub returns o - b
func (o Eval[T]) Sub(b Eval[T]) Eval[T] {
	o.sameBasis(b)
	r := Eval[T]{v: o.v - b.v, d: make([]T, len(o.d))}
	for i := range o.d {
		r.d[i] = o.d[i] - b.d[i]
	}
	return r
}

// Mul returns o * b (product rule)
func (o Eval[T]) Mul(b Eval[T]) Eval[T] {
	o.sameBasis(b)
	r := Eval[T]{v: o.v * b.v, d: make([]T, len(o.d))}
	for i := range o.d {
		r.d[i] = o.d[i]*b.v + o.v*b.d[i]
	}
	return r
}

// Div returns o / b (quotient rule). A zero denominator propagates
// inf/NaN per IEEE semantics.
func (o Eval[T]) Div(b Eval[T]) Eval[T] {
	o.sameBasis(b)
	r := Eval[T]{v: o.v / b.v, d: make([]T, len(o.d))}
	bb := b.v * b.v
	for i := range o.d {
		r.d[i] = (o.d[i]*b.v - o.v*b.d[i]) / bb
	}
	return r
}

// Neg returns -o
func (o Eval[T]) Neg() Eval[T] {
	r := Eval[T]{v: -o.v, d: make([]T, len(o.d))}
	for i := range o.d {
		r.d[i] = -o.d[i]
	}
	return r
}

// AddScalar returns o + v
func (o Eval[T]) AddScalar(v float64) Eval[T] {
	r := Eval[T]{v: o.v + T(v), d: make([]T, len(o.d))}
	copy(r.d, o.d)
	return r
}

// SubScalar returns o - v
func (o Eval[T]) SubScalar(v float64) Eval[T] {
	r := Eval[T]{v: o.v - T(v), d: make([]T, len(o.d))}
	copy(r.d, o.d)
	return r
}

// ScalarSub returns v - o
func (o Eval[T]) ScalarSub(v float64) Eval[T] {
	r := Eval[T]{v: T(v) - o.v, d: make([]T, len(o.d))}
	for i := range o.d {
		r.d[i] = -o.d[i]
	}
	return r
}

// MulScalar returns o * v
func (o Eval[T]) MulScalar(v float64) Eval[T] {
	r := Eval[T]{v: o.v * T(v), d: make([]T, len(o.d))}
	for i := range o.d {
		r.d[i] = o.d[i] * T(v)
	}
	return r
}

// DivScalar returns o / v
func (o Eval[T]) DivScalar(v float64) Eval[T] {
	r := Eval[T]{v: o.v / T(v), d: make([]T, len(o.d))}
	for i := range o.d {
		r.d[i] = o.d[i] / T(v)
	}
	return r
}

// ScalarDiv returns v / o
func (o Eval[T]) ScalarDiv(v float64) Eval[T] {
	r := Eval[T]{v: T(v) / o.v, d: make([]T, len(o.d))}
	oo := o.v * o.v
	for i := range o.d {
		r.d[i] = -T(v) * o.d[i] / oo
	}
	return r
}

// Sqrt returns √o; at o == 0 the derivative factor is +inf and
// propagates per IEEE semantics
func (o Eval[T]) Sqrt() Eval[T] {
	s := sqrtS(o.v)
	f := T(0.5) / s
	r := Eval[T]{v: s, d: make([]T, len(o.d))}
	for i := range o.d {
		r.d[i] = f * o.d[i]
	}
	return r
}

// Exp returns e^o
func (o Eval[T]) Exp() Eval[T] {
	e := expS(o.v)
	r := Eval[T]{v: e, d: make([]T, len(o.d))}
	for i := range o.d {
		r.d[i] = e * o.d[i]
	}
	return r
}

// Log returns ln(o)
func (o Eval[T]) Log() Eval[T] {
	r := Eval[T]{v: logS(o.v), d: make([]T, len(o.d))}
	for i := range o.d {
		r.d[i] = o.d[i] / o.v
	}
	return r
}

// Sin returns sin(o)
func (o Eval[T]) Sin() Eval[T] {
	f := cosS(o.v)
	r := Eval[T]{v: sinS(o.v), d: make([]T, len(o.d))}
	for i := range o.d {
		r.d[i] = f * o.d[i]
	}
	return r
}

// Cos returns cos(o)
func (o Eval[T]) Cos() Eval[T] {
	f := -sinS(o.v)
	r := Eval[T]{v: cosS(o.v), d: make([]T, len(o.d))}
	for i := range o.d {
		r.d[i] = f * o.d[i]
	}
	return r
}

// Tan returns tan(o)
func (o Eval[T]) Tan() Eval[T] {
	t := tanS(o.v)
	f := 1 + t*t
	r := Eval[T]{v: t, d: make([]T, len(o.d))}
	for i := range o.d {
		r.d[i] = f * o.d[i]
	}
	return r
}

// Abs returns |o|. The derivative at exactly o == 0 is zero.
func (o Eval[T]) Abs() Eval[T] {
	s := signS(o.v)
	r := Eval[T]{v: s * o.v, d: make([]T, len(o.d))}
	for i := range o.d {
		r.d[i] = s * o.d[i]
	}
	return r
}

// Pow returns o^y with differentiated exponent:
//	d(o^y) = y·o^(y-1)·do + o^y·ln(o)·dy
// A zero base yields an exact zero with zero derivatives instead of
// the 0·ln(0) indeterminate form.
func (o Eval[T]) Pow(y Eval[T]) Eval[T] {
	o.sameBasis(y)
	r := Eval[T]{d: make([]T, len(o.d))}
	if o.v == 0 {
		return r
	}
	r.v = powS(o.v, y.v)
	fx := y.v * powS(o.v, y.v-1)
	fy := r.v * logS(o.v)
	for i := range o.d {
		r.d[i] = fx*o.d[i] + fy*y.d[i]
	}
	return r
}

// PowScalar returns o^y with constant exponent. Zero base yields an
// exact zero with zero derivatives.
func (o Eval[T]) PowScalar(y float64) Eval[T] {
	r := Eval[T]{d: make([]T, len(o.d))}
	if o.v == 0 {
		return r
	}
	yy := T(y)
	r.v = powS(o.v, yy)
	f := yy * powS(o.v, yy-1)
	for i := range o.d {
		r.d[i] = f * o.d[i]
	}
	return r
}

// Min returns the operand with the smaller value; no blending of
// derivatives happens: the losing operand is discarded entirely. Ties
// keep the receiver.
func (o Eval[T]) Min(b Eval[T]) Eval[T] {
	o.sameBasis(b)
	if b.v < o.v {
		return b
	}
	return o
}

// Max returns the operand with the larger value. Ties keep the
// receiver.
func (o Eval[T]) Max(b Eval[T]) Eval[T] {
	o.sameBasis(b)
	if b.v > o.v {
		return b
	}
	return o
}

// IsNaN tells whether the primal value is NaN
func (o Eval[T]) IsNaN() bool { return isNaNS(o.v) }

// IsFinite tells whether the primal value is neither NaN nor infinite
func (o Eval[T]) IsFinite() bool { return isFiniteS(o.v) }
