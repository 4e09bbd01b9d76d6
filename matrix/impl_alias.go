// SPDX-License-Identifier: MIT

// Package matrix - aliasing detection & copy safety.
//
// Model:
//   - Two matrices can only share cells when they reference the same Storage.
//   - Each matrix addresses backing indices inside [lo, hi] (its span); when
//     the spans of two same-storage matrices intersect they MAY share cells.
//   - The test is conservative: it never misses real sharing, and it may
//     report sharing for interleaved layouts that touch disjoint cells
//     (e.g. even vs odd columns), costing one defensive copy.
package matrix

import "unsafe"

const opCopyFrom = "CopyFrom"

// slicesOverlap reports whether a and b address a common element.
func slicesOverlap[T Element](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	size := unsafe.Sizeof(a[0])
	alo := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	blo := uintptr(unsafe.Pointer(unsafe.SliceData(b)))

	return alo < blo+uintptr(len(b))*size && blo < alo+uintptr(len(a))*size
}

// span returns the inclusive backing-index interval addressed by m.
// ok is false for empty matrices (nothing addressable).
func (m *Matrix[T]) span() (lo, hi int, ok bool) {
	if m.row.n == 0 || m.col.n == 0 {
		return 0, 0, false
	}
	rlo, rhi := m.row.bounds()
	clo, chi := m.col.bounds()

	return rlo + clo, rhi + chi, true
}

// MayShareCells reports whether m and other may address a common cell.
// True when other is m itself, or both use the same storage and their
// resolved index spans intersect. Never a false negative.
//
// Complexity: O(1) for plain layouts; O(rows+cols) for selections.
func (m *Matrix[T]) MayShareCells(other *Matrix[T]) bool {
	if m == nil || other == nil {
		return false
	}
	if m == other {
		return true
	}
	if m.st != other.st {
		return false
	}
	alo, ahi, aok := m.span()
	blo, bhi, bok := other.span()
	if !aok || !bok {
		return false
	}

	return alo <= bhi && blo <= ahi
}

// sameLayout reports whether m and other address identical cells in
// identical order (reading other[r,c] then writing m[r,c] is then safe).
func (m *Matrix[T]) sameLayout(other *Matrix[T]) bool {
	return m == other || (m.st == other.st && m.row.same(other.row) && m.col.same(other.col))
}

// snapshotIfShared returns other, or an independent copy of it when writing
// m cell by cell could observe cells of other that were already overwritten.
func (m *Matrix[T]) snapshotIfShared(other *Matrix[T]) *Matrix[T] {
	if m.MayShareCells(other) && !m.sameLayout(other) {
		return other.Copy()
	}

	return other
}

// CopyFrom overwrites every cell of m with the corresponding cell of other
// (assign(otherMatrix)). The result is as if no aliasing existed, even when
// other is an overlapping view of m (e.g. its flip): other is snapshotted
// first whenever MayShareCells reports possible sharing.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validated before any write).
//   - ErrExecutionFailed when a chunk task fails.
func (m *Matrix[T]) CopyFrom(other *Matrix[T]) error {
	if err := ValidateSameShape(m, other); err != nil {
		return matrixErrorf(opCopyFrom, err)
	}
	if m.sameLayout(other) {
		return nil // self-assignment
	}

	return m.assignFrom(m.snapshotIfShared(other), opCopyFrom)
}

// assignFrom copies src into m row-chunk by row-chunk. Shapes must match and
// src must not alias m (callers guarantee both).
func (m *Matrix[T]) assignFrom(src *Matrix[T], op string) error {
	cols := m.col.n
	err := m.forRows(op, m.Size(), func(lo, hi int) {
		var r, c, db, sb int
		for r = lo; r < hi; r++ {
			db, sb = m.rowBase(r), src.rowBase(r)
			for c = 0; c < cols; c++ {
				m.put(db+m.col.off(c), src.load(sb+src.col.off(c)))
			}
		}
	})

	return opErrorf(op, err)
}
