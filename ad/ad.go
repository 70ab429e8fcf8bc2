// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ad implements dense forward-mode automatic differentiation for
// property relations (retention curves, conductivities, fluid densities)
// consumed by Newton-type flow solvers. The unit of computation is an
// evaluation: a dual number pairing a primal value with a fixed-length
// vector of partial derivatives with respect to the solver's primary
// unknowns. Relations written once against the Num capability set work
// unchanged for plain scalars (Eval0) and for differentiated values
// (Eval1, Eval2, Eval3 and the generic Eval), with dispatch resolved at
// compile time by Go generics.
//
//	pc := ad.NewVar1(2.5)        // seed: pc is the independent unknown
//	sl := mdl.Sl(pc)             // any relation written against Num
//	sl.Value()                   // saturation
//	sl.Deriv(0)                  // ∂sl/∂pc, exact, no finite differences
//
// Derivative indices form an implicit basis: position i means the same
// physical unknown throughout one computation. Combining evaluations
// built with different derivative counts is a programming error and
// panics. Numeric degeneracies (division by zero, log of a negative)
// propagate IEEE inf/NaN instead of raising errors, matching the
// underlying float semantics; the single exception is pow with zero
// base, which yields an exact zero rather than a 0·log(0) NaN.
package ad

// Float is the scalar contract: any floating point representation the
// evaluations may be instantiated with.
type Float interface {
	~float32 | ~float64
}

// Num is the capability set generic property relations are written
// against. It is implemented by Eval0 (plain scalar path), by the
// fixed-size specializations Eval1, Eval2 and Eval3, and by the
// generic Eval. Comparisons between evaluations are derivative-blind:
// branch on Float64 of the operands.
//
// Scalar operands of the mixed forms are taken as float64 and treated
// as constants (zero derivatives); the widening is lossless for both
// supported precisions.
type Num[S any] interface {

	// extraction
	Float64() float64 // primal value, derivative content discarded
	Const(v float64) S // constant with the receiver's derivative basis

	// MaxValue returns the extreme-value sentinel of the underlying
	// precision (widened to float64), so generic relations can emit
	// "effectively infinite" magnitudes without overflowing single
	// precision instantiations
	MaxValue() float64

	// arithmetic
	Add(b S) S // o + b
	Sub(b S) S // o - b
	Mul(b S) S // o * b
	Div(b S) S // o / b
	Neg() S    // -o

	// arithmetic with plain scalars
	AddScalar(v float64) S // o + v
	SubScalar(v float64) S // o - v
	ScalarSub(v float64) S // v - o
	MulScalar(v float64) S // o * v
	DivScalar(v float64) S // o / v
	ScalarDiv(v float64) S // v / o

	// math functions
	Sqrt() S              // √o
	Exp() S               // e^o
	Log() S               // ln(o)
	Sin() S               // sin(o)
	Cos() S               // cos(o)
	Tan() S               // tan(o)
	Abs() S               // |o|; derivative at o == 0 is zero
	Pow(y S) S            // o^y with differentiated exponent
	PowScalar(y float64) S // o^y with constant exponent
	Min(b S) S            // operand with smaller value, derivatives included
	Max(b S) S            // operand with larger value, derivatives included

	// classification of the primal value
	IsNaN() bool
	IsFinite() bool
}

// Sqrt returns √x
func Sqrt[S Num[S]](x S) S { return x.Sqrt() }

// Exp returns e^x
func Exp[S Num[S]](x S) S { return x.Exp() }

// Log returns ln(x)
func Log[S Num[S]](x S) S { return x.Log() }

// Sin returns sin(x)
func Sin[S Num[S]](x S) S { return x.Sin() }

// Cos returns cos(x)
func Cos[S Num[S]](x S) S { return x.Cos() }

// Tan returns tan(x)
func Tan[S Num[S]](x S) S { return x.Tan() }

// Abs returns |x|
func Abs[S Num[S]](x S) S { return x.Abs() }

// Pow returns x^y with both base and exponent differentiated
func Pow[S Num[S]](x, y S) S { return x.Pow(y) }

// PowScalar returns x^y with constant exponent
func PowScalar[S Num[S]](x S, y float64) S { return x.PowScalar(y) }

// Min returns the operand with the smaller value; its derivatives are
// taken whole, the other operand's are discarded
func Min[S Num[S]](a, b S) S { return a.Min(b) }

// Max returns the operand with the larger value
func Max[S Num[S]](a, b S) S { return a.Max(b) }

// Decay extracts the primal value, discarding derivative information.
// Applying Decay to an already decayed (plain float64) quantity is the
// identity, so decay is idempotent.
func Decay[S Num[S]](x S) float64 { return x.Float64() }

// IsNaN tells whether the primal value is NaN
func IsNaN[S Num[S]](x S) bool { return x.IsNaN() }

// IsFinite tells whether the primal value is neither NaN nor infinite
func IsFinite[S Num[S]](x S) bool { return x.IsFinite() }

// interface compliance
var (
	_ Num[Eval0[float64]] = Eval0[float64]{}
	_ Num[Eval1[float64]] = Eval1[float64]{}
	_ Num[Eval2[float64]] = Eval2[float64]{}
	_ Num[Eval3[float64]] = Eval3[float64]{}
	_ Num[Eval[float64]]  = Eval[float64]{}
	_ Num[Eval0[float32]] = Eval0[float32]{}
	_ Num[Eval1[float32]] = Eval1[float32]{}
	_ Num[Eval2[float32]] = Eval2[float32]{}
	_ Num[Eval3[float32]] = Eval3[float32]{}
	_ Num[Eval[float32]]  = Eval[float32]{}
)
