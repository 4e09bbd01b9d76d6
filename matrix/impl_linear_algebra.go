// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra product engine (matrix-vector
// and matrix-matrix products with BLAS-style alpha/beta scaling) and the
// allocating element-wise facades Add, Sub, Hadamard and Scale.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Purpose:
//   - MulVec: z = alpha·op(A)·y + beta·z, row-partitioned.
//   - Mul:    C = alpha·op(A)·op(B) + beta·C, column-partitioned.
//
// Notes:
//   - op(X) is X or its transpose view; transposition never copies.
//   - beta == 0 follows the BLAS convention: the destination is not read, so
//     NaN garbage in z or C does not leak into the result.

package matrix

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmat/fn"
	"github.com/katalvlaran/lvmat/parallel"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opMatMul   = "MatMul"
	opScale    = "Scale"
	opHadamard = "Hadamard"
	opMulVec   = "MulVec"
)

// MulVec computes z[r] = alpha·Σ_c A[r,c]·y[c] + beta·z[r] for every row r
// and returns z.
//
// Implementation:
//   - Stage 1: transpose=true delegates to ViewTranspose().MulVec(..., false).
//   - Stage 2: validate len(y) == Cols() and, when z is supplied, len(z) ≥ Rows().
//   - Stage 3: z == nil allocates Rows() zeros.
//   - Stage 4: row chunks; each row keeps a private scalar accumulator.
//
// Inputs:
//   - y: input vector (length Cols()).
//   - z: output vector, or nil to allocate. Entries past Rows() are untouched.
//
// Errors:
//   - ErrDimensionMismatch, or ErrAliasedOperand when z[:Rows()] overlaps y
//     in memory (both before any write).
//
// Determinism:
//   - Each row's sum runs in ascending column order regardless of P, so the
//     result is bit-identical for every degree of parallelism.
//
// Complexity:
//   - Time O(r*c), extra space O(1) (O(r) when z is allocated).
func (m *Matrix[T]) MulVec(y, z []T, alpha, beta T, transpose bool) ([]T, error) {
	if transpose {
		return m.ViewTranspose().MulVec(y, z, alpha, beta, false)
	}
	rows, cols := m.row.n, m.col.n
	if err := ValidateVecLen(y, cols); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if z == nil {
		z = make([]T, rows)
	} else if len(z) < rows {
		return nil, matrixErrorf(opMulVec, fmt.Errorf("len(z) %d < rows %d: %w", len(z), rows, ErrDimensionMismatch))
	} else if slicesOverlap(y, z[:rows]) {
		return nil, matrixErrorf(opMulVec, fmt.Errorf("z overlaps y: %w", ErrAliasedOperand))
	}

	err := m.forRows(opMulVec, m.Size(), func(lo, hi int) {
		var r, c, rb int
		var s T
		for r = lo; r < hi; r++ {
			rb = m.rowBase(r)
			s = 0
			for c = 0; c < cols; c++ {
				s += m.load(rb+m.col.off(c)) * y[c]
			}
			if beta == 0 {
				z[r] = alpha * s
			} else {
				z[r] = alpha*s + beta*z[r]
			}
		}
	})
	if err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	return z, nil
}

// Mul computes C = alpha·op(A)·op(B) + beta·C where A is the receiver and
// op(X) is X, or X's transpose view when the matching flag is set.
// C == nil allocates op(A).Rows()×op(B).Cols() via Like; the product is
// returned either way.
//
// Implementation:
//   - Stage 1: substitute transpose views (O(1)).
//   - Stage 2: validate inner dimensions, C's shape, and that C shares no
//     cell with A or B.
//   - Stage 3: partition the output columns; each task gathers one column
//     of B into a private scratch vector and walks every row of A with a
//     running scalar over the contraction dimension.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAliasedOperand (before any write).
//   - ErrExecutionFailed if a column task fails.
//
// Determinism:
//   - Each C[i,j] accumulates k ascending, independent of P.
//
// Complexity:
//   - Time O(m*n*k), extra space O(k) per column task.
//
// AI-Hints:
//   - Mul(B, nil, 1, 0, false, false) is the plain product (see MatMul).
//   - To accumulate into an operand, multiply into a fresh C and CopyFrom.
func (m *Matrix[T]) Mul(b, c *Matrix[T], alpha, beta T, transA, transB bool) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	a := m
	if transA {
		a = a.ViewTranspose()
	}
	if transB {
		b = b.ViewTranspose()
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := a.row.n, a.col.n, b.col.n
	if c == nil {
		var err error
		if c, err = a.Like(rows, cols); err != nil {
			return nil, matrixErrorf(opMul, err)
		}
		beta = 0 // fresh zeros
	} else {
		if c.row.n != rows || c.col.n != cols {
			return nil, matrixErrorf(opMul, fmt.Errorf("C is %dx%d, want %dx%d: %w", c.row.n, c.col.n, rows, cols, ErrDimensionMismatch))
		}
		if c.MayShareCells(a) || c.MayShareCells(b) {
			return nil, matrixErrorf(opMul, ErrAliasedOperand)
		}
	}

	s := a.exec.Settings()
	err := a.exec.Run(context.Background(), opMul, s, writeChunks(s, c.col, cols, rows*inner*cols), func(_ context.Context, _ int, rg parallel.Range) error {
		col := make([]T, inner)
		var i, j, k, ab, ci int
		var sum T
		for j = rg.Lo; j < rg.Hi; j++ {
			for k = 0; k < inner; k++ {
				col[k] = b.load(b.Index(k, j))
			}
			for i = 0; i < rows; i++ {
				ab = a.rowBase(i)
				sum = 0
				for k = 0; k < inner; k++ {
					sum += a.load(ab+a.col.off(k)) * col[k]
				}
				ci = c.Index(i, j)
				if beta == 0 {
					c.put(ci, alpha*sum)
				} else {
					c.put(ci, alpha*sum+beta*c.load(ci))
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return c, nil
}

// MatMul returns the plain product a·b in a fresh matrix shaped like a.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func MatMul[T Element](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMatMul, err)
	}

	return a.Mul(b, nil, 1, 0, false, false)
}

// elementwise allocates a copy of a and folds b into it with f.
func elementwise[T Element](a, b *Matrix[T], f BinaryFunc[T], opTag string) (*Matrix[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := a.Copy()
	if err := out.ApplyWith(b, f); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	return out, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh result
// with A's storage kind and executor.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Add[T Element](a, b *Matrix[T]) (*Matrix[T], error) {
	return elementwise(a, b, fn.Plus[T], opAdd)
}

// Sub computes the element-wise difference C = A - B.
func Sub[T Element](a, b *Matrix[T]) (*Matrix[T], error) {
	return elementwise(a, b, fn.Minus[T], opSub)
}

// Hadamard computes the element-wise product C[i,j] = A[i,j]·B[i,j].
func Hadamard[T Element](a, b *Matrix[T]) (*Matrix[T], error) {
	return elementwise(a, b, fn.Mult[T], opHadamard)
}

// Scale returns a fresh copy of m with every element multiplied by alpha.
// Errors: ErrNilMatrix.
func Scale[T Element](m *Matrix[T], alpha T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := m.Copy()
	if err := out.Apply(fn.Scale[T](alpha)); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return out, nil
}
