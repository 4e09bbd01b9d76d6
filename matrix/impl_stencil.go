// SPDX-License-Identifier: MIT

package matrix

import (
	"context"

	"github.com/katalvlaran/lvmat/parallel"
)

const opAssign8Neighbors = "Assign8Neighbors"

// Assign8Neighbors writes, for every interior cell (r,c) of the receiver A,
//
//	B[r,c] = f9(A[r-1,c-1], A[r-1,c], A[r-1,c+1],
//	            A[r,  c-1], A[r,  c], A[r,  c+1],
//	            A[r+1,c-1], A[r+1,c], A[r+1,c+1])
//
// Border cells of B are not touched, and a receiver with fewer than three
// rows or columns is a no-op. When B may share cells with A (B == A for an
// in-place smoothing pass, say) A is snapshotted first, so every f9 call
// sees the original values.
//
// Interior rows are split into chunks; a chunk reads one row above and one
// below its range and writes only its own rows of B. Along a row the three
// neighbour columns slide, so each cell of A is loaded once per row it is
// adjacent to.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNilFunction (before any
// write); ErrExecutionFailed when f9 panics.
func (m *Matrix[T]) Assign8Neighbors(b *Matrix[T], f9 Func9[T]) error {
	if err := ValidateSameShape(m, b); err != nil {
		return matrixErrorf(opAssign8Neighbors, err)
	}
	if err := validateFuncs(f9); err != nil {
		return matrixErrorf(opAssign8Neighbors, err)
	}
	rows, cols := m.row.n, m.col.n
	if rows < 3 || cols < 3 {
		return nil
	}
	a := m
	if b.MayShareCells(m) {
		a = m.Copy()
	}

	s := m.exec.Settings()
	err := m.exec.Run(context.Background(), opAssign8Neighbors, s, writeChunks(s, b.row, rows-2, m.Size()), func(_ context.Context, _ int, rg parallel.Range) error {
		var r, c, up, mid, down, bb int
		var a00, a01, a02, a10, a11, a12, a20, a21, a22 T
		for r = rg.Lo + 1; r < rg.Hi+1; r++ {
			up, mid, down = a.rowBase(r-1), a.rowBase(r), a.rowBase(r+1)
			bb = b.rowBase(r)
			a00, a01 = a.load(up+a.col.off(0)), a.load(up+a.col.off(1))
			a10, a11 = a.load(mid+a.col.off(0)), a.load(mid+a.col.off(1))
			a20, a21 = a.load(down+a.col.off(0)), a.load(down+a.col.off(1))
			for c = 1; c < cols-1; c++ {
				a02 = a.load(up + a.col.off(c+1))
				a12 = a.load(mid + a.col.off(c+1))
				a22 = a.load(down + a.col.off(c+1))
				b.put(bb+b.col.off(c), f9(a00, a01, a02, a10, a11, a12, a20, a21, a22))
				a00, a01 = a01, a02
				a10, a11 = a11, a12
				a20, a21 = a21, a22
			}
		}
		return nil
	})

	return opErrorf(opAssign8Neighbors, err)
}
