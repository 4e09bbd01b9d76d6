// Package matrix offers generic dense and sparse numeric matrices with
// zero-copy views and built-in parallel execution.
//
// The matrix package provides:
//
//   - Matrix[T] over float32 or float64: a strided descriptor over a shared
//     Storage. Owners allocate (NewDense, NewSparse, FromValues, FromRows);
//     views borrow (ViewTranspose, ViewFlip, ViewPart, ViewStrides,
//     ViewSelection, ViewRowsWhere, ViewSorted) in O(1), selections in O(k).
//   - Aliasing detection (MayShareCells) so that CopyFrom, ApplyWith and
//     Assign8Neighbors behave as if operands never overlapped, and Mul
//     rejects a destination that overlaps its inputs.
//   - An elementwise transform engine (Apply, ApplyWith, ApplyWhere, Fill,
//     FillWhere, SetValues, SetRows), a reduction engine (Aggregate and
//     friends, Sum, MaxLocation, ValuesWhere, ...), products (MulVec, Mul)
//     and a 3×3 stencil (Assign8Neighbors).
//
// Every bulk kernel runs on the *parallel.Executor bound to the matrix
// (WithExecutor; parallel.Default otherwise). Work is split into contiguous
// row chunks (output-column chunks for Mul) only when the executor's degree
// exceeds one and the operation is at least as large as its threshold.
//
// Ready-made function objects for Apply/Aggregate live in package fn:
//
//	sumSq, _ := a.Aggregate(fn.Plus[float64], fn.Square[float64])
//	_ = a.ApplyWhere(fn.Less(0.0), fn.Constant(0.0))
//
// Views share cells with their source. Concurrent mutation of overlapping
// views from independent goroutines is not synchronised; serialise it.
//
// See the examples in this package for usage patterns.
package matrix
