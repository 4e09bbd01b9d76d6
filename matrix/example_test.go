// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmat/fn"
	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/parallel"
)

// ExampleMatrix_Aggregate sums the squares of every cell.
func ExampleMatrix_Aggregate() {
	a, _ := matrix.FromRows([][]float64{{0, 1}, {2, 3}})
	s, _ := a.Aggregate(fn.Plus[float64], fn.Square[float64])
	fmt.Println(s)

	// Output:
	// 14
}

// ExampleMatrix_ApplyWith raises each cell to the power held in another matrix.
func ExampleMatrix_ApplyWith() {
	a, _ := matrix.FromRows([][]float64{{0, 1}, {2, 3}})
	b, _ := matrix.FromRows([][]float64{{0, 2}, {4, 6}})
	_ = a.ApplyWith(b, fn.Pow[float64])
	fmt.Print(a)

	// Output:
	// [1, 1]
	// [16, 729]
}

// ExampleMatrix_ViewPart edits a window of a larger matrix in place.
func ExampleMatrix_ViewPart() {
	a, _ := matrix.NewDense[float64](3, 4)
	w, _ := a.ViewPart(1, 1, 2, 2)
	_ = w.Fill(7)
	fmt.Print(a)

	// Output:
	// [0, 0, 0, 0]
	// [0, 7, 7, 0]
	// [0, 7, 7, 0]
}

// ExampleMatrix_Mul multiplies on an explicitly sized executor.
func ExampleMatrix_Mul() {
	exec := parallel.New(parallel.WithDegree(4), parallel.WithThreshold(0))
	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}}, matrix.WithExecutor(exec))
	b, _ := matrix.FromRows([][]float64{{5, 6}, {7, 8}}, matrix.WithExecutor(exec))

	c, _ := a.Mul(b, nil, 1, 0, false, false)
	fmt.Print(c)

	_, err := a.Mul(b, a, 1, 0, false, false)
	fmt.Println(errors.Is(err, matrix.ErrAliasedOperand))

	// Output:
	// [19, 22]
	// [43, 50]
	// true
}

// ExampleMatrix_ViewSorted orders rows by a key column without moving data.
func ExampleMatrix_ViewSorted() {
	a, _ := matrix.FromRows([][]float64{{3, 30}, {1, 10}, {2, 20}})
	s, _ := a.ViewSorted(0)
	fmt.Print(s)
	fmt.Println(s.IsView())

	// Output:
	// [1, 10]
	// [2, 20]
	// [3, 30]
	// true
}
