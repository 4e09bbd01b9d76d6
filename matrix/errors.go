// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// the documented exceptions are the *Quick accessors and option constructors
// given nonsensical values.

package matrix

import (
	"errors"

	"github.com/katalvlaran/lvmat/parallel"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached with matrixErrorf /
// denseErrorf; callers still match with errors.Is.
//
// ERROR PRIORITY (validated eagerly, before any cell is written):
// nil operand -> index/range -> dimension mismatch -> aliasing.
// Execution failures are only observable after dispatch.

var (
	// ErrBadShape is returned when a requested shape is invalid (negative rows or cols).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index, window, step or selection lies
	// outside the valid bounds of the matrix (checked accessors and views).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions, e.g.
	// ApplyWith on different shapes, or Mul where A.Cols != B.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAliasedOperand rejects an in-place product: the destination may share
	// cells with one of the inputs.
	ErrAliasedOperand = errors.New("matrix: destination aliases an operand")

	// ErrNaNInf signals a NaN or ±Inf value written through Set while the
	// finite-only numeric policy is enabled.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Matrix operand was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilFunction indicates that a nil function object was passed.
	ErrNilFunction = errors.New("matrix: nil function")
)

// ErrExecutionFailed reports a chunk task that failed (returned an error or
// panicked) while an operation was in flight. It is the parallel package's
// sentinel, so errors.As(err, **parallel.TaskError) exposes the chunk.
var ErrExecutionFailed = parallel.ErrTaskFailed

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
