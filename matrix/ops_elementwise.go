// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise transform engine: assign(unaryFn), assign(other, binaryFn),
//     assign(predicate, unaryFn), assign(predicate, constant), assign(constant)
//     and bulk loads from flat or nested values.
//   - One kernel shape for all forms: whole-row chunks, each chunk walks its
//     rows in order and its columns in order.
//
// Design:
//   - Validation (nil function, shape, length) happens before any cell is
//     written; a validation error therefore means "no partial mutation".
//   - Parallel path: P>1 and Size() ≥ threshold → min(P, rows) row chunks,
//     the last absorbing the remainder (see parallel.Split).
//   - A panicking function object fails its chunk; the caller sees
//     ErrExecutionFailed and the destination is left partially updated.
//
// Determinism & Performance:
//   - Every cell is visited exactly once per call (duplicate-index
//     selections visit their shared cell once per occurrence, in order;
//     such destinations run as a single chunk).
//   - Dense storage is read and written through the flat slice.

package matrix

import "fmt"

const (
	opCopy       = "Copy"
	opApply      = "Apply"
	opApplyWith  = "ApplyWith"
	opApplyWhere = "ApplyWhere"
	opFill       = "Fill"
	opFillWhere  = "FillWhere"
	opSetValues  = "SetValues"
	opSetRows    = "SetRows"
)

// opErrorf wraps a kernel error with its operation tag; nil stays nil.
func opErrorf(op string, err error) error {
	if err == nil {
		return nil
	}

	return matrixErrorf(op, err)
}

// Apply replaces every cell with f(cell).
//
// Errors: ErrNilFunction; ErrExecutionFailed when f panics.
// Complexity: O(r*c) calls of f.
func (m *Matrix[T]) Apply(f UnaryFunc[T]) error {
	if err := validateFuncs(f); err != nil {
		return matrixErrorf(opApply, err)
	}
	cols := m.col.n

	return opErrorf(opApply, m.forRows(opApply, m.Size(), func(lo, hi int) {
		var r, c, rb, i int
		for r = lo; r < hi; r++ {
			rb = m.rowBase(r)
			for c = 0; c < cols; c++ {
				i = rb + m.col.off(c)
				m.put(i, f(m.load(i)))
			}
		}
	}))
}

// ApplyWith replaces every cell with f(cell, other[r,c]).
// When other may share cells with m under a different layout (a flipped or
// transposed view of m, say) it is snapshotted first, so the result is as if
// no aliasing existed.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNilFunction (all before any
// write); ErrExecutionFailed when f panics.
func (m *Matrix[T]) ApplyWith(other *Matrix[T], f BinaryFunc[T]) error {
	if err := ValidateSameShape(m, other); err != nil {
		return matrixErrorf(opApplyWith, err)
	}
	if err := validateFuncs(f); err != nil {
		return matrixErrorf(opApplyWith, err)
	}
	src := m.snapshotIfShared(other)
	cols := m.col.n

	return opErrorf(opApplyWith, m.forRows(opApplyWith, m.Size(), func(lo, hi int) {
		var r, c, db, sb, i int
		for r = lo; r < hi; r++ {
			db, sb = m.rowBase(r), src.rowBase(r)
			for c = 0; c < cols; c++ {
				i = db + m.col.off(c)
				m.put(i, f(m.load(i), src.load(sb+src.col.off(c))))
			}
		}
	}))
}

// ApplyWhere replaces cells for which pred(cell) holds with f(cell); other
// cells are left untouched.
//
// Errors: ErrNilFunction; ErrExecutionFailed when pred or f panics.
func (m *Matrix[T]) ApplyWhere(pred Predicate[T], f UnaryFunc[T]) error {
	if err := validateFuncs(pred, f); err != nil {
		return matrixErrorf(opApplyWhere, err)
	}
	cols := m.col.n

	return opErrorf(opApplyWhere, m.forRows(opApplyWhere, m.Size(), func(lo, hi int) {
		var r, c, rb, i int
		var v T
		for r = lo; r < hi; r++ {
			rb = m.rowBase(r)
			for c = 0; c < cols; c++ {
				i = rb + m.col.off(c)
				if v = m.load(i); pred(v) {
					m.put(i, f(v))
				}
			}
		}
	}))
}

// FillWhere sets cells for which pred(cell) holds to v.
//
// Errors: ErrNilFunction; ErrExecutionFailed when pred panics.
func (m *Matrix[T]) FillWhere(pred Predicate[T], v T) error {
	if err := validateFuncs(pred); err != nil {
		return matrixErrorf(opFillWhere, err)
	}
	cols := m.col.n

	return opErrorf(opFillWhere, m.forRows(opFillWhere, m.Size(), func(lo, hi int) {
		var r, c, rb, i int
		for r = lo; r < hi; r++ {
			rb = m.rowBase(r)
			for c = 0; c < cols; c++ {
				i = rb + m.col.off(c)
				if pred(m.load(i)) {
					m.put(i, v)
				}
			}
		}
	}))
}

// Fill sets every cell to v.
func (m *Matrix[T]) Fill(v T) error {
	cols := m.col.n

	return opErrorf(opFill, m.forRows(opFill, m.Size(), func(lo, hi int) {
		var r, c, rb int
		for r = lo; r < hi; r++ {
			rb = m.rowBase(r)
			for c = 0; c < cols; c++ {
				m.put(rb+m.col.off(c), v)
			}
		}
	}))
}

// SetValues loads row-major values: cell (r,c) = values[r*Cols()+c].
//
// Errors: ErrDimensionMismatch when len(values) != Rows()*Cols().
func (m *Matrix[T]) SetValues(values []T) error {
	if err := ValidateVecLen(values, m.Size()); err != nil {
		return matrixErrorf(opSetValues, err)
	}
	cols := m.col.n

	return opErrorf(opSetValues, m.forRows(opSetValues, m.Size(), func(lo, hi int) {
		var r, c, rb int
		for r = lo; r < hi; r++ {
			rb = m.rowBase(r)
			for c = 0; c < cols; c++ {
				m.put(rb+m.col.off(c), values[r*cols+c])
			}
		}
	}))
}

// SetRows loads nested values: cell (r,c) = values[r][c].
//
// Errors: ErrDimensionMismatch when len(values) != Rows() or any inner
// length differs from Cols(); the message names the offending row.
func (m *Matrix[T]) SetRows(values [][]T) error {
	if len(values) != m.row.n {
		return matrixErrorf(opSetRows, fmt.Errorf("%d rows, want %d: %w", len(values), m.row.n, ErrDimensionMismatch))
	}
	cols := m.col.n
	for r, row := range values {
		if len(row) != cols {
			return matrixErrorf(opSetRows, fmt.Errorf("row %d has %d values, want %d: %w", r, len(row), cols, ErrDimensionMismatch))
		}
	}

	return opErrorf(opSetRows, m.forRows(opSetRows, m.Size(), func(lo, hi int) {
		var r, c, rb int
		for r = lo; r < hi; r++ {
			rb = m.rowBase(r)
			for c = 0; c < cols; c++ {
				m.put(rb+m.col.off(c), values[r][c])
			}
		}
	}))
}
