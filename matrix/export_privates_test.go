// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for descriptor internals.
//
// Purpose:
//   - Expose storage and layout facts to matrix_test ONLY, without widening
//     the production API.
//
// Build Policy:
//   - Lives in a _test.go file of package matrix, so it is compiled only
//     into the test binary.

// StoredCells_TestOnly reports the explicitly stored cell count of a sparse
// matrix, or -1 for dense storage.
func StoredCells_TestOnly[T Element](m *Matrix[T]) int {
	if ss, ok := m.st.(*sparseStore[T]); ok {
		return ss.stored()
	}

	return -1
}

// DupAxes_TestOnly reports whether the row and column axes of m repeat a
// backing offset.
func DupAxes_TestOnly[T Element](m *Matrix[T]) (rows, cols bool) { return m.row.dup, m.col.dup }

// Span_TestOnly exposes the inclusive backing-index interval of m.
func Span_TestOnly[T Element](m *Matrix[T]) (lo, hi int, ok bool) { return m.span() }

// SameLayout_TestOnly exposes the self-assignment test used by CopyFrom.
func SameLayout_TestOnly[T Element](a, b *Matrix[T]) bool { return a.sameLayout(b) }

// ValidatesNaNInf_TestOnly reports the numeric policy carried by m.
func ValidatesNaNInf_TestOnly[T Element](m *Matrix[T]) bool { return m.finite }

// PanicExecutorNil_TestOnly avoids magic strings in option tests.
const PanicExecutorNil_TestOnly = panicExecutorNil
