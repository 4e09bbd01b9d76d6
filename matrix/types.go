// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the addressing, transform,
// reduction and product layers. Errors and options live in dedicated files
// (errors.go, options.go).
package matrix

import "unsafe"

// Element is the numeric element set a Matrix can hold. Addressing,
// aliasing and scheduling code is written once against this constraint.
type Element interface {
	~float32 | ~float64
}

// ElementKind names the element storage kind at runtime (diagnostics, String).
type ElementKind string

const (
	Float32 ElementKind = "float32"
	Float64 ElementKind = "float64"
)

// kindOf resolves the ElementKind of T (named ~float32 types included).
func kindOf[T Element]() ElementKind {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return Float32
	}

	return Float64
}

// Axis selects the row or column dimension for ViewFlip.
type Axis int

const (
	Rows    Axis = iota // flip the row order (first row becomes last)
	Columns             // flip the column order
)

// String implements fmt.Stringer.
func (a Axis) String() string {
	switch a {
	case Rows:
		return "rows"
	case Columns:
		return "columns"
	default:
		return "unknown"
	}
}

// UnaryFunc maps one cell value. Must be pure; it may be called from
// several goroutines at once.
type UnaryFunc[T Element] func(a T) T

// BinaryFunc maps two values, or combines two partial aggregates. Combiners
// passed to Aggregate are assumed associative.
type BinaryFunc[T Element] func(a, b T) T

// Predicate selects cells by value.
type Predicate[T Element] func(a T) bool

// RowPredicate selects rows; it receives a 1×cols view of the row.
type RowPredicate[T Element] func(row *Matrix[T]) bool

// Func9 computes a cell from its 3×3 neighbourhood; aRC is the neighbour at
// row offset R and column offset C (a11 is the centre).
type Func9[T Element] func(a00, a01, a02, a10, a11, a12, a20, a21, a22 T) T

// Coord is a (row, column) position.
type Coord struct {
	Row, Col int
}

// Extremum is a reduced extreme value with its location.
// Row and Col are -1 when no cell qualified (empty or all-NaN matrix).
type Extremum[T Element] struct {
	Value T
	Row   int
	Col   int
}
