// SPDX-License-Identifier: MIT

// Package matrix - backing storage (the "arena" beneath a view hierarchy).
//
// Purpose:
//   - One Storage per owner matrix; every view borrows it.
//   - Dense storage is a flat slice; kernels read it directly (no interface
//     dispatch on the hot path, see Matrix.load/put).
//   - Sparse storage keeps only non-zero cells in a map; the map is guarded
//     so row-partitioned parallel writers do not race on its internals.
//
// Lifetime:
//   - A Storage lives as long as any matrix referencing it. Dropping a view
//     never releases the buffer; the garbage collector reclaims it when the
//     last holder is gone.
package matrix

import "sync"

// StorageKind identifies a Storage implementation.
type StorageKind int

const (
	DenseStorage  StorageKind = iota // flat slice, O(1) stride arithmetic
	SparseStorage                    // hash of non-zero cells
)

// String implements fmt.Stringer.
func (k StorageKind) String() string {
	switch k {
	case DenseStorage:
		return "dense"
	case SparseStorage:
		return "sparse"
	default:
		return "unknown"
	}
}

// Storage is the capability a backing buffer offers to the addressing layer.
// Offsets are resolved backing indices in [0, Len()).
type Storage[T Element] interface {
	Len() int
	ReadAt(i int) T
	WriteAt(i int, v T)
	Kind() StorageKind
}

// Compile-time assertions.
var (
	_ Storage[float64] = (*denseStore[float64])(nil)
	_ Storage[float64] = (*sparseStore[float64])(nil)
)

// newStorage allocates a zero-filled store of kind k with n cells.
func newStorage[T Element](k StorageKind, n int) Storage[T] {
	if k == SparseStorage {
		return &sparseStore[T]{n: n, cells: make(map[int]T)}
	}

	return &denseStore[T]{data: make([]T, n)}
}

// denseStore is a contiguous buffer.
type denseStore[T Element] struct {
	data []T
}

func (s *denseStore[T]) Len() int           { return len(s.data) }
func (s *denseStore[T]) ReadAt(i int) T     { return s.data[i] }
func (s *denseStore[T]) WriteAt(i int, v T) { s.data[i] = v }
func (s *denseStore[T]) Kind() StorageKind  { return DenseStorage }

// sparseStore keeps non-zero cells only; writing zero deletes the entry.
type sparseStore[T Element] struct {
	mu    sync.RWMutex
	n     int
	cells map[int]T
}

func (s *sparseStore[T]) Len() int          { return s.n }
func (s *sparseStore[T]) Kind() StorageKind { return SparseStorage }

func (s *sparseStore[T]) ReadAt(i int) T {
	s.mu.RLock()
	v := s.cells[i]
	s.mu.RUnlock()

	return v
}

func (s *sparseStore[T]) WriteAt(i int, v T) {
	s.mu.Lock()
	if v == 0 {
		delete(s.cells, i)
	} else {
		s.cells[i] = v
	}
	s.mu.Unlock()
}

// stored returns the number of explicitly stored (non-zero) cells.
func (s *sparseStore[T]) stored() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.cells)
}
