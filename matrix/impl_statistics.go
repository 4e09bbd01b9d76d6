// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide common statistical transforms as compositions over the product
//     and transform engines: marginal sums via MulVec against a ones vector,
//     centering via per-column or per-row views and Apply.
//
// Exposed API:
//   - RowSums(X)       -> sums (len = rows)
//   - ColSums(X)       -> sums (len = cols)
//   - CenterColumns(X) -> (Xc, means)   // subtract per-column mean
//   - CenterRows(X)    -> (Xc, means)   // subtract per-row mean
//
// Determinism & Performance:
//   - Sums inherit MulVec's per-row ascending accumulation, so they are
//     identical for every degree of parallelism.
//   - Zero-size matrices (0×N or N×0) center to an empty copy with zero means.

package matrix

import "github.com/katalvlaran/lvmat/fn"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opRowSums       = "RowSums"
	opColSums       = "ColSums"
	opCenterColumns = "CenterColumns"
	opCenterRows    = "CenterRows"
)

// ones returns a length-n vector of 1s.
func ones[T Element](n int) []T {
	v := make([]T, n)
	for i := range v {
		v[i] = 1
	}

	return v
}

// RowSums returns Σ_j X[i,j] for every row i.
// Errors: ErrNilMatrix.
func RowSums[T Element](x *Matrix[T]) ([]T, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	sums, err := x.MulVec(ones[T](x.Cols()), nil, 1, 0, false)
	if err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}

	return sums, nil
}

// ColSums returns Σ_i X[i,j] for every column j (MulVec on the transpose view).
// Errors: ErrNilMatrix.
func ColSums[T Element](x *Matrix[T]) ([]T, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	sums, err := x.MulVec(ones[T](x.Rows()), nil, 1, 0, true)
	if err != nil {
		return nil, matrixErrorf(opColSums, err)
	}

	return sums, nil
}

// CenterColumns returns a centered copy Xc = X − mean(X, by columns) and the
// column means.
//
// Implementation:
//   - Stage 1: ColSums, divided by rows.
//   - Stage 2: Copy, then shift each column view by its negated mean.
//
// Complexity: Time O(r*c), Space O(r*c) (+ O(c) means).
func CenterColumns[T Element](x *Matrix[T]) (*Matrix[T], []T, error) {
	means, err := ColSums(x)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	xc := x.Copy()
	if x.Rows() == 0 {
		return xc, means, nil
	}
	n := T(x.Rows())
	var col *Matrix[T]
	for j := range means {
		means[j] /= n
		col, _ = xc.ViewColumn(j) // j < Cols()
		if err = col.Apply(fn.Shift(-means[j])); err != nil {
			return nil, nil, matrixErrorf(opCenterColumns, err)
		}
	}

	return xc, means, nil
}

// CenterRows is CenterColumns along the other axis: Xc[i,j] = X[i,j] − mean(row i).
func CenterRows[T Element](x *Matrix[T]) (*Matrix[T], []T, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}
	xc, means, err := CenterColumns(x.ViewTranspose())
	if err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}

	return xc.ViewTranspose().Copy(), means, nil
}
