// SPDX-License-Identifier: MIT

// Package fn provides ready-made function objects for the matrix engine:
// unary maps, binary maps/combiners, predicates and small combinators.
//
// Every value returned here is a plain Go func and is pure, so it is safe to
// call from concurrent chunk workers. Combiners intended for Aggregate
// (Plus, Mult, Max, Min) are associative.
package fn

import "math"

// Float is the element set the function objects are defined over.
type Float interface {
	~float32 | ~float64
}

// ---------- unary ----------

// Identity returns its argument.
func Identity[T Float](a T) T { return a }

// Neg returns -a.
func Neg[T Float](a T) T { return -a }

// Abs returns |a|.
func Abs[T Float](a T) T {
	if a < 0 {
		return -a
	}

	return a
}

// Square returns a*a.
func Square[T Float](a T) T { return a * a }

// Sqrt returns the square root of a.
func Sqrt[T Float](a T) T { return T(math.Sqrt(float64(a))) }

// Exp returns e**a.
func Exp[T Float](a T) T { return T(math.Exp(float64(a))) }

// Log returns the natural logarithm of a.
func Log[T Float](a T) T { return T(math.Log(float64(a))) }

// Inv returns 1/a.
func Inv[T Float](a T) T { return 1 / a }

// Constant returns a unary function that ignores its argument.
func Constant[T Float](c T) func(T) T {
	return func(T) T { return c }
}

// Scale returns a -> a*c.
func Scale[T Float](c T) func(T) T {
	return func(a T) T { return a * c }
}

// Shift returns a -> a+c.
func Shift[T Float](c T) func(T) T {
	return func(a T) T { return a + c }
}

// Clamp returns a -> min(max(a, lo), hi).
func Clamp[T Float](lo, hi T) func(T) T {
	return func(a T) T {
		if a < lo {
			return lo
		}
		if a > hi {
			return hi
		}

		return a
	}
}

// ---------- binary ----------

// Plus returns a+b.
func Plus[T Float](a, b T) T { return a + b }

// Minus returns a-b.
func Minus[T Float](a, b T) T { return a - b }

// Mult returns a*b.
func Mult[T Float](a, b T) T { return a * b }

// Div returns a/b.
func Div[T Float](a, b T) T { return a / b }

// Pow returns a**b.
func Pow[T Float](a, b T) T { return T(math.Pow(float64(a), float64(b))) }

// Max returns the larger of a and b.
func Max[T Float](a, b T) T {
	if a >= b {
		return a
	}

	return b
}

// Min returns the smaller of a and b.
func Min[T Float](a, b T) T {
	if a <= b {
		return a
	}

	return b
}

// PlusMult returns (a, b) -> a + c*b, the axpy update.
func PlusMult[T Float](c T) func(a, b T) T {
	return func(a, b T) T { return a + c*b }
}

// MinusMult returns (a, b) -> a - c*b.
func MinusMult[T Float](c T) func(a, b T) T {
	return func(a, b T) T { return a - c*b }
}

// ---------- combinators ----------

// Chain returns a -> g(h(a)).
func Chain[T Float](g, h func(T) T) func(T) T {
	return func(a T) T { return g(h(a)) }
}

// ChainBinary returns (a, b) -> g(h(a, b)).
func ChainBinary[T Float](g func(T) T, h func(a, b T) T) func(a, b T) T {
	return func(a, b T) T { return g(h(a, b)) }
}

// BindFirst fixes the first argument of f: b -> f(c, b).
func BindFirst[T Float](f func(a, b T) T, c T) func(T) T {
	return func(b T) T { return f(c, b) }
}

// BindSecond fixes the second argument of f: a -> f(a, c).
func BindSecond[T Float](f func(a, b T) T, c T) func(T) T {
	return func(a T) T { return f(a, c) }
}

// ---------- predicates ----------

// IsZero reports a == 0.
func IsZero[T Float](a T) bool { return a == 0 }

// NonZero reports a != 0.
func NonZero[T Float](a T) bool { return a != 0 }

// IsNaN reports whether a is not-a-number.
func IsNaN[T Float](a T) bool { return a != a }

// Greater returns a -> a > c.
func Greater[T Float](c T) func(T) bool {
	return func(a T) bool { return a > c }
}

// Less returns a -> a < c.
func Less[T Float](c T) func(T) bool {
	return func(a T) bool { return a < c }
}

// Equals returns a -> a == c.
func Equals[T Float](c T) func(T) bool {
	return func(a T) bool { return a == c }
}

// Between returns a -> lo <= a <= hi.
func Between[T Float](lo, hi T) func(T) bool {
	return func(a T) bool { return a >= lo && a <= hi }
}

// Not negates a predicate.
func Not[T Float](p func(T) bool) func(T) bool {
	return func(a T) bool { return !p(a) }
}
