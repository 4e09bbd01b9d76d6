// SPDX-License-Identifier: MIT

// Package matrix - Matrix descriptor, constructors & accessors.
//
// Purpose:
//   - Provide a strided descriptor over a shared Storage: owners allocate,
//     views borrow (see impl_view.go).
//   - Guarantee safety at the public surface: At/Set return errors instead of
//     panicking; AtQuick/SetQuick are the unchecked hot-path variants.
//   - Keep the dense hot path free of interface dispatch: load/put index the
//     flat slice directly when the storage is dense.
//
// AI-Hints:
//   - Use views (ViewPart, ViewTranspose, ...) to avoid copies; mutations
//     through a view are visible in every matrix sharing the storage.
//   - Use Copy when an independent lifetime/layout is required.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Copy: O(r*c); views: O(1)
//     except selections O(k).

package matrix

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvmat/parallel"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Matrix context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a rectangular view of numeric elements over a Storage.
//   - row/col form the addressing descriptor (layout.go).
//   - st is the shared backing storage; buf aliases its slice when dense.
//   - exec runs the chunked kernels; views inherit it.
//
// A Matrix is not safe for concurrent mutation by independent callers when
// views overlap; serialise such access externally.
type Matrix[T Element] struct {
	row, col axis
	st       Storage[T]
	buf      []T  // direct slice for DenseStorage, nil otherwise
	fast     bool // buf is valid
	exec     *parallel.Executor
	view     bool // borrows st from another matrix
	finite   bool // numeric policy: Set rejects NaN/±Inf
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// newOwner allocates a zero-filled owner matrix of the requested kind.
func newOwner[T Element](rows, cols int, kind StorageKind, o Options) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}
	m := &Matrix[T]{
		row:    axis{n: rows, step: cols},
		col:    axis{n: cols, step: 1},
		st:     newStorage[T](kind, rows*cols),
		exec:   o.exec,
		finite: o.validateNaNInf,
	}
	m.bind()

	return m, nil
}

// bind caches the dense slice for the load/put fast path.
func (m *Matrix[T]) bind() {
	if ds, ok := m.st.(*denseStore[T]); ok {
		m.buf, m.fast = ds.data, true
	}
}

// NewDense creates a rows×cols zero matrix backed by a flat slice.
// Zero dimensions are legal (empty matrices take part in every operation);
// negative ones fail with ErrBadShape.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense[T Element](rows, cols int, opts ...Option) (*Matrix[T], error) {
	return newOwner[T](rows, cols, DenseStorage, gatherOptions(opts...))
}

// NewSparse creates a rows×cols zero matrix that stores only non-zero cells.
// It supports every operation of the package; it simply trades the dense
// fast path for O(nnz) memory.
func NewSparse[T Element](rows, cols int, opts ...Option) (*Matrix[T], error) {
	return newOwner[T](rows, cols, SparseStorage, gatherOptions(opts...))
}

// FromValues builds a dense rows×cols owner from row-major values.
// Errors: ErrBadShape, ErrDimensionMismatch when len(values) != rows*cols.
func FromValues[T Element](rows, cols int, values []T, opts ...Option) (*Matrix[T], error) {
	m, err := NewDense[T](rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if err = m.SetValues(values); err != nil {
		return nil, err
	}

	return m, nil
}

// FromRows builds a dense owner from nested row-major values.
// Every row must have the length of the first one (ErrDimensionMismatch).
func FromRows[T Element](values [][]T, opts ...Option) (*Matrix[T], error) {
	cols := 0
	if len(values) > 0 {
		cols = len(values[0])
	}
	m, err := NewDense[T](len(values), cols, opts...)
	if err != nil {
		return nil, err
	}
	if err = m.SetRows(values); err != nil {
		return nil, err
	}

	return m, nil
}

// Like allocates a new zero owner with the receiver's storage kind,
// executor and numeric policy (allocateLike).
func (m *Matrix[T]) Like(rows, cols int) (*Matrix[T], error) {
	return newOwner[T](rows, cols, m.st.Kind(), m.options())
}

// options reconstructs the Options a derived owner should carry.
func (m *Matrix[T]) options() Options {
	return Options{exec: m.exec, validateNaNInf: m.finite}
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.row.n }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.col.n }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.row.n, m.col.n }

// Size returns Rows()*Cols().
func (m *Matrix[T]) Size() int { return m.row.n * m.col.n }

// IsView reports whether the matrix borrows its storage.
func (m *Matrix[T]) IsView() bool { return m.view }

// StorageKind reports the backing storage implementation.
func (m *Matrix[T]) StorageKind() StorageKind { return m.st.Kind() }

// ElementKind reports the element type.
func (m *Matrix[T]) ElementKind() ElementKind { return kindOf[T]() }

// Executor returns the executor kernels on this matrix run on.
func (m *Matrix[T]) Executor() *parallel.Executor { return m.exec }

// RowStride is the position delta between consecutive rows. For plain
// layouts it is the backing-index stride; for selections it indexes the
// row offset table.
func (m *Matrix[T]) RowStride() int { return m.row.step }

// ColumnStride is the position delta between consecutive columns.
func (m *Matrix[T]) ColumnStride() int { return m.col.step }

// ZeroOffset is the backing index of cell (0,0)'s plain position:
// rowStart + colStart. Meaningful only when !IsSelection().
func (m *Matrix[T]) ZeroOffset() int { return m.row.start + m.col.start }

// IsSelection reports whether either axis uses an explicit offset table.
func (m *Matrix[T]) IsSelection() bool { return m.row.tab != nil || m.col.tab != nil }

// Index returns the resolved backing index of (row, col) without bounds checks.
func (m *Matrix[T]) Index(row, col int) int { return m.row.off(row) + m.col.off(col) }

// load reads backing index i, bypassing the interface for dense storage.
func (m *Matrix[T]) load(i int) T {
	if m.fast {
		return m.buf[i]
	}

	return m.st.ReadAt(i)
}

// put writes backing index i.
func (m *Matrix[T]) put(i int, v T) {
	if m.fast {
		m.buf[i] = v
		return
	}
	m.st.WriteAt(i, v)
}

// rowBase is row.off(r), the per-row part of Index.
func (m *Matrix[T]) rowBase(r int) int { return m.row.off(r) }

// checkIndex validates 0 ≤ row < Rows() and 0 ≤ col < Cols().
func (m *Matrix[T]) checkIndex(row, col int) error {
	if row < 0 || row >= m.row.n || col < 0 || col >= m.col.n {
		return ErrOutOfRange
	}

	return nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	if err := m.checkIndex(row, col); err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.load(m.Index(row, col)), nil
}

// Set stores v at (row, col).
// Errors: ErrOutOfRange for bounds; ErrNaNInf when the finite-only policy
// is enabled and v is not finite.
func (m *Matrix[T]) Set(row, col int, v T) error {
	if err := m.checkIndex(row, col); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.finite && isNonFinite(float64(v)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.put(m.Index(row, col), v)

	return nil
}

// AtQuick returns the value at (row, col) without bounds checks.
// Precondition: 0 ≤ row < Rows(), 0 ≤ col < Cols(). Violations may panic or
// silently read another cell of the shared storage.
func (m *Matrix[T]) AtQuick(row, col int) T { return m.load(m.Index(row, col)) }

// SetQuick stores v at (row, col) without bounds checks or numeric policy.
// Precondition as for AtQuick; violations may corrupt other cells.
func (m *Matrix[T]) SetQuick(row, col int, v T) { m.put(m.Index(row, col), v) }

// Copy returns a fresh owner with identical values that shares no cells with
// the receiver, whether or not the receiver is a view. Storage kind,
// executor and numeric policy are preserved.
//
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Copy() *Matrix[T] {
	out, _ := m.Like(m.row.n, m.col.n) // shape is already valid
	_ = out.assignFrom(m, opCopy)      // plain reads/writes cannot fail

	return out
}

// ToRows returns a row-major [][]T snapshot.
func (m *Matrix[T]) ToRows() [][]T {
	out := make([][]T, m.row.n)
	var r, c, rb int
	for r = 0; r < m.row.n; r++ {
		out[r] = make([]T, m.col.n)
		rb = m.rowBase(r)
		for c = 0; c < m.col.n; c++ {
			out[r][c] = m.load(rb + m.col.off(c))
		}
	}

	return out
}

// ToValues returns a flat row-major snapshot.
func (m *Matrix[T]) ToValues() []T {
	out := make([]T, 0, m.Size())
	var r, c, rb int
	for r = 0; r < m.row.n; r++ {
		rb = m.rowBase(r)
		for c = 0; c < m.col.n; c++ {
			out = append(out, m.load(rb+m.col.off(c)))
		}
	}

	return out
}

// String renders rows as lines with comma-separated values (diagnostics only).
func (m *Matrix[T]) String() string {
	var b strings.Builder
	var r, c, rb int
	for r = 0; r < m.row.n; r++ {
		b.WriteString(_fmtRowOpen)
		rb = m.rowBase(r)
		for c = 0; c < m.col.n; c++ {
			fmt.Fprintf(&b, "%g", m.load(rb+m.col.off(c)))
			if c+1 < m.col.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// forRows runs body over row chunks of m, chosen from one settings snapshot.
// work is the operation's cost estimate compared against the threshold.
// Rows that repeat a backing row stay in one chunk.
func (m *Matrix[T]) forRows(op string, work int, body func(lo, hi int)) error {
	s := m.exec.Settings()

	return m.exec.Run(context.Background(), op, s, writeChunks(s, m.row, m.row.n, work), func(_ context.Context, _ int, r parallel.Range) error {
		body(r.Lo, r.Hi)
		return nil
	})
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// nan returns the not-a-number sentinel in T.
func nan[T Element]() T { return T(math.NaN()) }
