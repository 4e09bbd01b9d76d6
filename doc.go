// Package lvmat is your in-memory engine for dense numeric matrices that
// scale across cores without giving up zero-copy views.
//
// 🚀 What is lvmat?
//
//	A generic (float32/float64) matrix library that brings together:
//		• Views: transpose, flip, window, strides, selection, sort, all O(1)/O(k)
//		• Aliasing safety: overlapping operands are snapshotted or rejected
//		• Elementwise transforms & fills driven by function objects
//		• Reductions: aggregate, sum, extrema, predicates
//		• Products: matrix-vector and matrix-matrix with alpha/beta scaling
//		• Stencils: 3×3 neighbourhood assignment
//
// ✨ Why choose lvmat?
//
//   - Explicit parallelism – an injected, sized executor per matrix
//   - Deterministic partitioning – contiguous chunks, ordered partials
//   - Fail-fast errors – sentinels checked with errors.Is, task failures
//     exposed via errors.As
//   - Pure Go – no cgo
//
// Under the hood, everything is organized under three subpackages:
//
//	parallel/ — executor, range splitting, padded partial slots
//	fn/       — reusable unary/binary/predicate function objects
//	matrix/   — storage, views, aliasing, transform/reduction/product kernels
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]float64{{0, 1}, {2, 3}})
//	s, _ := a.Aggregate(fn.Plus[float64], fn.Square[float64]) // 14
//
//	go get github.com/katalvlaran/lvmat
package lvmat
