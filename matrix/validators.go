// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/function checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    wrap uniformly with matrixErrorf.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate only on failure.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).
//  - Every validator runs before a kernel touches a cell, so a validation
//    error always means "no partial mutation".

package matrix

import "fmt"

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil[T Element](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Composite: NotNil(a) → NotNil(b) → equal Rows/Cols.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape[T Element](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures len(x) == n.
// Errors: ErrDimensionMismatch.
func ValidateVecLen[T Element](x []T, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("len %d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows() (both non-nil).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible[T Element](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", fmt.Errorf("%dx%d · %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// validateFuncs ensures every supplied function object is non-nil.
// Arguments are passed as `any` because they are distinct func types.
func validateFuncs(fs ...any) error {
	for i, f := range fs {
		if isNilFunc(f) {
			return validatorErrorf("validateFuncs", fmt.Errorf("argument %d: %w", i, ErrNilFunction))
		}
	}

	return nil
}

// isNilFunc reports whether f is a nil func of one of the package's
// function-object types (an untyped nil interface counts as nil too).
func isNilFunc(f any) bool {
	switch g := f.(type) {
	case nil:
		return true
	case interface{ isNil() bool }:
		return g.isNil()
	default:
		return false
	}
}

func (f UnaryFunc[T]) isNil() bool    { return f == nil }
func (f BinaryFunc[T]) isNil() bool   { return f == nil }
func (f Predicate[T]) isNil() bool    { return f == nil }
func (f RowPredicate[T]) isNil() bool { return f == nil }
func (f Func9[T]) isNil() bool        { return f == nil }
