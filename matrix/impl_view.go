// SPDX-License-Identifier: MIT

// Package matrix - zero-copy views.
//
// Purpose:
//   - Build alternate addressing schemes over the same Storage by rewriting
//     the descriptor only (no element copy).
//   - Composition is associative; flip∘flip and transpose∘transpose are the
//     identity.
//
// Behavior highlights:
//   - Writes through any view are visible through every other matrix that
//     shares the storage.
//   - Views inherit executor and numeric policy.
//
// Complexity:
//   - ViewTranspose/ViewFlip/ViewPart/ViewStrides/ViewRow/ViewColumn: O(1).
//   - ViewSelection: O(len(rowIdx)+len(colIdx)).
//   - ViewRowsWhere: O(rows) predicate calls.
//   - ViewSorted: O(rows log rows).
package matrix

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

const (
	ctxViewPart      = "ViewPart"
	ctxViewStrides   = "ViewStrides"
	ctxViewSelection = "ViewSelection"
	ctxViewSorted    = "ViewSorted"
	ctxViewRow       = "ViewRow"
	ctxViewColumn    = "ViewColumn"
	ctxViewFlip      = "ViewFlip"
)

// derive returns a view sharing m's storage with new axes.
func (m *Matrix[T]) derive(row, col axis) *Matrix[T] {
	v := *m // copies storage, buf, exec, policy
	v.row, v.col = row, col
	v.view = true

	return &v
}

// ViewTranspose returns the transposed view ("dice"): rows and columns swap
// roles, no element moves.
func (m *Matrix[T]) ViewTranspose() *Matrix[T] {
	return m.derive(m.col, m.row)
}

// ViewFlip returns a view whose index 0 along axis addresses the former last
// row (Rows) or column (Columns). Panics on an unknown Axis (programmer error).
func (m *Matrix[T]) ViewFlip(a Axis) *Matrix[T] {
	switch a {
	case Rows:
		return m.derive(m.row.flip(), m.col)
	case Columns:
		return m.derive(m.row, m.col.flip())
	default:
		panic(fmt.Sprintf("matrix: %s: unknown axis %d", ctxViewFlip, int(a)))
	}
}

// ViewPart returns the height×width window whose top-left cell is (row, col).
//
// Errors:
//   - ErrOutOfRange when any argument is negative, row+height > Rows() or
//     col+width > Cols().
func (m *Matrix[T]) ViewPart(row, col, height, width int) (*Matrix[T], error) {
	if row < 0 || col < 0 || height < 0 || width < 0 || row+height > m.row.n || col+width > m.col.n {
		return nil, fmt.Errorf("Matrix.%s(%d,%d,%d,%d): %w", ctxViewPart, row, col, height, width, ErrOutOfRange)
	}

	return m.derive(m.row.part(row, height), m.col.part(col, width)), nil
}

// ViewRow returns row r as a 1×Cols() view.
func (m *Matrix[T]) ViewRow(r int) (*Matrix[T], error) {
	if r < 0 || r >= m.row.n {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxViewRow, r, ErrOutOfRange)
	}

	return m.derive(m.row.part(r, 1), m.col), nil
}

// ViewColumn returns column c as a Rows()×1 view.
func (m *Matrix[T]) ViewColumn(c int) (*Matrix[T], error) {
	if c < 0 || c >= m.col.n {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxViewColumn, c, ErrOutOfRange)
	}

	return m.derive(m.row, m.col.part(c, 1)), nil
}

// ViewStrides keeps every rowStep-th row and colStep-th column.
// The result is ceil(Rows()/rowStep) × ceil(Cols()/colStep).
//
// Errors:
//   - ErrOutOfRange when rowStep <= 0 or colStep <= 0.
func (m *Matrix[T]) ViewStrides(rowStep, colStep int) (*Matrix[T], error) {
	if rowStep <= 0 || colStep <= 0 {
		return nil, fmt.Errorf("Matrix.%s(%d,%d): %w", ctxViewStrides, rowStep, colStep, ErrOutOfRange)
	}

	return m.derive(m.row.strided(rowStep), m.col.strided(colStep)), nil
}

// ViewSelection returns the view whose cell (i,j) is m(rowIdx[i], colIdx[j]).
// A nil index slice keeps every index of that axis in order. Duplicates are
// allowed; the result shape is len(rowIdx)×len(colIdx).
//
// Errors:
//   - ErrOutOfRange when an index lies outside [0,Rows()) or [0,Cols()).
func (m *Matrix[T]) ViewSelection(rowIdx, colIdx []int) (*Matrix[T], error) {
	if err := checkIndices(rowIdx, m.row.n); err != nil {
		return nil, fmt.Errorf("Matrix.%s: row %w", ctxViewSelection, err)
	}
	if err := checkIndices(colIdx, m.col.n); err != nil {
		return nil, fmt.Errorf("Matrix.%s: column %w", ctxViewSelection, err)
	}
	row, col := m.row, m.col
	if rowIdx != nil {
		row = row.selected(rowIdx)
	}
	if colIdx != nil {
		col = col.selected(colIdx)
	}

	return m.derive(row, col), nil
}

// checkIndices validates every index against [0, n).
func checkIndices(idx []int, n int) error {
	for _, v := range idx {
		if v < 0 || v >= n {
			return fmt.Errorf("index %d: %w", v, ErrOutOfRange)
		}
	}

	return nil
}

// ViewRowsWhere evaluates pred once per row (as a 1×Cols() row view) and
// returns the selection of matching rows in ascending order, all columns kept.
//
// Errors:
//   - ErrNilFunction when pred is nil.
func (m *Matrix[T]) ViewRowsWhere(pred RowPredicate[T]) (*Matrix[T], error) {
	if pred == nil {
		return nil, fmt.Errorf("Matrix.%s: %w", ctxViewSelection, ErrNilFunction)
	}
	matches := make([]int, 0, m.row.n)
	var r int
	for r = 0; r < m.row.n; r++ {
		if pred(m.derive(m.row.part(r, 1), m.col)) {
			matches = append(matches, r)
		}
	}

	return m.ViewSelection(matches, nil)
}

// ViewSorted returns a row-permutation view in which rows appear stably
// sorted ascending by their value in column. NaN sorts after every number.
// The receiver is not modified.
//
// Errors:
//   - ErrOutOfRange when column is outside [0, Cols()).
func (m *Matrix[T]) ViewSorted(column int) (*Matrix[T], error) {
	if column < 0 || column >= m.col.n {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxViewSorted, column, ErrOutOfRange)
	}
	keys := make([]T, m.row.n)
	co := m.col.off(column)
	for r := range keys {
		keys[r] = m.load(m.rowBase(r) + co)
	}
	perm := lo.Range(m.row.n)
	slices.SortStableFunc(perm, func(a, b int) int {
		return compareNaNLast(keys[a], keys[b])
	})

	return m.ViewSelection(perm, nil)
}

// compareNaNLast orders numbers ascending and places NaN after them.
func compareNaNLast[T Element](a, b T) int {
	aNaN, bNaN := a != a, b != b
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Induced materializes the selection (rowIdx, colIdx) into an independent
// owner. Duplicates are allowed; nil keeps all indices of that axis.
//
// Errors:
//   - ErrOutOfRange (index outside bounds).
func (m *Matrix[T]) Induced(rowIdx, colIdx []int) (*Matrix[T], error) {
	v, err := m.ViewSelection(rowIdx, colIdx)
	if err != nil {
		return nil, err
	}

	return v.Copy(), nil
}
