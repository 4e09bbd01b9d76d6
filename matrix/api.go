// SPDX-License-Identifier: MIT
// Package matrix: high-level facade helpers.
//
// Purpose:
//   - Offer a small surface of convenience constructors and comparisons built
//     on the core Matrix operations.
//   - Keep call sites short in tests and demos without hiding the kernels.
//
// Determinism:
//   - All helpers are deterministic; comparisons early-exit on the first
//     violating cell in row-major order.

package matrix

import "math"

const (
	opAllClose = "AllClose"
	opEqual    = "Equal"
	opIdentity = "NewIdentity"
)

// NewIdentity returns an n×n dense identity matrix.
// Errors: ErrBadShape when n < 0.
func NewIdentity[T Element](n int, opts ...Option) (*Matrix[T], error) {
	m, err := NewDense[T](n, n, opts...)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.SetQuick(i, i, 1)
	}

	return m, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - NaN or Inf tolerances are rejected with ErrNaNInf.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests, e.g.
//     comparing a P=1 result against a P=4 one.
func AllClose[T Element](a, b *Matrix[T], rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var av, bv float64
	var i, j int
	for i = 0; i < a.row.n; i++ {
		for j = 0; j < a.col.n; j++ {
			av, bv = float64(a.AtQuick(i, j)), float64(b.AtQuick(i, j))
			if av == bv {
				continue // covers equal infinities
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) || math.IsNaN(av-bv) {
				return false, nil
			}
		}
	}

	return true, nil
}

// Equal reports whether a and b have the same shape and identical cells.
// NaN is never equal to anything, NaN included.
// Errors: ErrNilMatrix.
func Equal[T Element](a, b *Matrix[T]) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if a.row.n != b.row.n || a.col.n != b.col.n {
		return false, nil
	}
	var i, j int
	for i = 0; i < a.row.n; i++ {
		for j = 0; j < a.col.n; j++ {
			if a.AtQuick(i, j) != b.AtQuick(i, j) {
				return false, nil
			}
		}
	}

	return true, nil
}

