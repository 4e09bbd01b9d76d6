// SPDX-License-Identifier: MIT

// Package matrix - reduction / aggregation engine.
//
// Fold discipline:
//   - Sequential: strict row-major left fold seeded with the first mapped
//     cell: acc = map(a[0,0]); acc = combine(acc, map(a[r,c])) ...
//   - Parallel: each row chunk folds its own cells the same way, seeded by
//     its own first (passing) cell; the partials are then folded in
//     ascending chunk order (parallel.Fold). With an associative combine the
//     two agree up to floating-point reassociation.
//   - A chunk without a passing cell contributes nothing.
//   - Zero-size matrices yield NaN without invoking any function.
//
// Complexity: O(r*c) map/combine calls; O(P) extra space for partials.
package matrix

import (
	"context"

	"github.com/katalvlaran/lvmat/fn"
	"github.com/katalvlaran/lvmat/parallel"
	"github.com/samber/lo"
)

const (
	opAggregate      = "Aggregate"
	opAggregateWhere = "AggregateWhere"
	opAggregateWith  = "AggregateWith"
	opCardinality    = "Cardinality"
	opMaxLocation    = "MaxLocation"
	opMinLocation    = "MinLocation"
	opValuesWhere    = "ValuesWhere"
	opNonZeros       = "NonZeros"
)

// reduceRows runs body over row chunks of m and folds the produced partials
// in ascending chunk order. ok is false when no chunk produced a partial.
func reduceRows[T Element, P any](m *Matrix[T], op string, work int, body func(lo, hi int) (P, bool), combine func(acc, next P) P) (acc P, ok bool, err error) {
	s := m.exec.Settings()
	chunks := s.Chunks(m.row.n, work)
	slots := make([]parallel.Slot[P], len(chunks))
	err = m.exec.Run(context.Background(), op, s, chunks, func(_ context.Context, i int, r parallel.Range) error {
		slots[i].Value, slots[i].Set = body(r.Lo, r.Hi)
		return nil
	})
	if err != nil {
		return acc, false, err
	}
	acc, ok = parallel.Fold(slots, combine)

	return acc, ok, nil
}

// Aggregate folds map(cell) over all cells with combine, which should be
// associative. Returns NaN for a zero-size matrix.
//
// Example: [[0,1],[2,3]].Aggregate(plus, square) == 14.
//
// Errors: ErrNilFunction; ErrExecutionFailed when a function panics.
func (m *Matrix[T]) Aggregate(combine BinaryFunc[T], mapFn UnaryFunc[T]) (T, error) {
	if err := validateFuncs(combine, mapFn); err != nil {
		return nan[T](), matrixErrorf(opAggregate, err)
	}
	if m.Size() == 0 {
		return nan[T](), nil
	}
	cols := m.col.n
	acc, _, err := reduceRows(m, opAggregate, m.Size(), func(lo, hi int) (T, bool) {
		rb := m.rowBase(lo)
		a := mapFn(m.load(rb + m.col.off(0)))
		var r, c int
		for c = 1; c < cols; c++ {
			a = combine(a, mapFn(m.load(rb+m.col.off(c))))
		}
		for r = lo + 1; r < hi; r++ {
			rb = m.rowBase(r)
			for c = 0; c < cols; c++ {
				a = combine(a, mapFn(m.load(rb+m.col.off(c))))
			}
		}
		return a, true
	}, combine)
	if err != nil {
		return nan[T](), matrixErrorf(opAggregate, err)
	}

	return acc, nil
}

// AggregateWhere is Aggregate restricted to cells for which pred holds.
// Returns NaN when no cell passes (or the matrix is empty).
func (m *Matrix[T]) AggregateWhere(combine BinaryFunc[T], mapFn UnaryFunc[T], pred Predicate[T]) (T, error) {
	if err := validateFuncs(combine, mapFn, pred); err != nil {
		return nan[T](), matrixErrorf(opAggregateWhere, err)
	}
	if m.Size() == 0 {
		return nan[T](), nil
	}
	cols := m.col.n
	acc, ok, err := reduceRows(m, opAggregateWhere, m.Size(), func(lo, hi int) (T, bool) {
		var a, v T
		var seeded bool
		var r, c, rb int
		for r = lo; r < hi; r++ {
			rb = m.rowBase(r)
			for c = 0; c < cols; c++ {
				if v = m.load(rb + m.col.off(c)); !pred(v) {
					continue
				}
				if !seeded {
					a, seeded = mapFn(v), true
					continue
				}
				a = combine(a, mapFn(v))
			}
		}
		return a, seeded
	}, combine)
	if err != nil {
		return nan[T](), matrixErrorf(opAggregateWhere, err)
	}
	if !ok {
		return nan[T](), nil
	}

	return acc, nil
}

// AggregateWith folds mapFn(a[r,c], other[r,c]) over all cells with combine.
// Returns NaN for a zero-size pair.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNilFunction;
// ErrExecutionFailed when a function panics.
func (m *Matrix[T]) AggregateWith(other *Matrix[T], combine, mapFn BinaryFunc[T]) (T, error) {
	if err := ValidateSameShape(m, other); err != nil {
		return nan[T](), matrixErrorf(opAggregateWith, err)
	}
	if err := validateFuncs(combine, mapFn); err != nil {
		return nan[T](), matrixErrorf(opAggregateWith, err)
	}
	if m.Size() == 0 {
		return nan[T](), nil
	}
	cols := m.col.n
	acc, _, err := reduceRows(m, opAggregateWith, m.Size(), func(lo, hi int) (T, bool) {
		ab, bb := m.rowBase(lo), other.rowBase(lo)
		a := mapFn(m.load(ab+m.col.off(0)), other.load(bb+other.col.off(0)))
		var r, c int
		for c = 1; c < cols; c++ {
			a = combine(a, mapFn(m.load(ab+m.col.off(c)), other.load(bb+other.col.off(c))))
		}
		for r = lo + 1; r < hi; r++ {
			ab, bb = m.rowBase(r), other.rowBase(r)
			for c = 0; c < cols; c++ {
				a = combine(a, mapFn(m.load(ab+m.col.off(c)), other.load(bb+other.col.off(c))))
			}
		}
		return a, true
	}, combine)
	if err != nil {
		return nan[T](), matrixErrorf(opAggregateWith, err)
	}

	return acc, nil
}

// Sum returns Σ cells; NaN for a zero-size matrix.
func (m *Matrix[T]) Sum() T {
	v, _ := m.Aggregate(fn.Plus[T], fn.Identity[T]) // pure builtins cannot fail

	return v
}

// Mean returns Sum()/Size(); NaN for a zero-size matrix.
func (m *Matrix[T]) Mean() T {
	if m.Size() == 0 {
		return nan[T]()
	}

	return m.Sum() / T(m.Size())
}

// Norm2 returns the sum of squares Σ cell² (squared Frobenius norm).
func (m *Matrix[T]) Norm2() T {
	v, _ := m.Aggregate(fn.Plus[T], fn.Square[T])

	return v
}

// Cardinality returns the number of non-zero cells. NaN counts as non-zero.
// An unviewed sparse owner answers from its stored-cell count.
func (m *Matrix[T]) Cardinality() int {
	if ss, ok := m.st.(*sparseStore[T]); ok && !m.view {
		return ss.stored()
	}
	cols := m.col.n
	n, _, _ := reduceRows(m, opCardinality, m.Size(), func(lo, hi int) (int, bool) {
		var k, r, c, rb int
		for r = lo; r < hi; r++ {
			rb = m.rowBase(r)
			for c = 0; c < cols; c++ {
				if m.load(rb+m.col.off(c)) != 0 {
					k++
				}
			}
		}
		return k, true
	}, func(a, b int) int { return a + b })

	return n
}

// MaxLocation returns the largest cell and its position. Ties resolve to the
// lowest row-major index; NaN cells never win. Empty or all-NaN matrices
// yield {NaN, -1, -1}.
func (m *Matrix[T]) MaxLocation() Extremum[T] {
	return m.extremum(opMaxLocation, func(a, b T) bool { return a > b })
}

// MinLocation is MaxLocation for the smallest cell.
func (m *Matrix[T]) MinLocation() Extremum[T] {
	return m.extremum(opMinLocation, func(a, b T) bool { return a < b })
}

// extremum scans chunks keeping the first cell that strictly beats the
// current best, then folds chunk winners in ascending order with the same
// strict test, so earlier positions keep ties.
func (m *Matrix[T]) extremum(op string, better func(a, b T) bool) Extremum[T] {
	cols := m.col.n
	best, ok, _ := reduceRows(m, op, m.Size(), func(lo, hi int) (Extremum[T], bool) {
		var e Extremum[T]
		var found bool
		var r, c, rb int
		var v T
		for r = lo; r < hi; r++ {
			rb = m.rowBase(r)
			for c = 0; c < cols; c++ {
				if v = m.load(rb + m.col.off(c)); v != v {
					continue // NaN
				}
				if !found || better(v, e.Value) {
					e, found = Extremum[T]{Value: v, Row: r, Col: c}, true
				}
			}
		}
		return e, found
	}, func(acc, next Extremum[T]) Extremum[T] {
		if better(next.Value, acc.Value) {
			return next
		}
		return acc
	})
	if !ok {
		return Extremum[T]{Value: nan[T](), Row: -1, Col: -1}
	}

	return best
}

// ValuesWhere returns every cell for which pred holds, keyed by position.
// Per-chunk maps are built independently and merged after the join.
//
// Errors: ErrNilFunction; ErrExecutionFailed when pred panics.
func (m *Matrix[T]) ValuesWhere(pred Predicate[T]) (map[Coord]T, error) {
	if err := validateFuncs(pred); err != nil {
		return nil, matrixErrorf(opValuesWhere, err)
	}
	s := m.exec.Settings()
	chunks := s.Chunks(m.row.n, m.Size())
	parts := make([]map[Coord]T, len(chunks))
	cols := m.col.n
	err := m.exec.Run(context.Background(), opValuesWhere, s, chunks, func(_ context.Context, i int, rg parallel.Range) error {
		out := make(map[Coord]T)
		var r, c, rb int
		var v T
		for r = rg.Lo; r < rg.Hi; r++ {
			rb = m.rowBase(r)
			for c = 0; c < cols; c++ {
				if v = m.load(rb + m.col.off(c)); pred(v) {
					out[Coord{Row: r, Col: c}] = v
				}
			}
		}
		parts[i] = out
		return nil
	})
	if err != nil {
		return nil, matrixErrorf(opValuesWhere, err)
	}

	return lo.Assign(parts...), nil
}

// NonZeros lists the positions of non-zero cells in row-major order.
func (m *Matrix[T]) NonZeros() []Coord {
	cols := m.col.n
	out, _, _ := reduceRows(m, opNonZeros, m.Size(), func(lo, hi int) ([]Coord, bool) {
		var part []Coord
		var r, c, rb int
		for r = lo; r < hi; r++ {
			rb = m.rowBase(r)
			for c = 0; c < cols; c++ {
				if m.load(rb+m.col.off(c)) != 0 {
					part = append(part, Coord{Row: r, Col: c})
				}
			}
		}
		return part, len(part) > 0
	}, func(acc, next []Coord) []Coord { return append(acc, next...) })

	return out
}
