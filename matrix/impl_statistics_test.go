// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for marginal sums and centering.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/parallel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestRowColSums(t *testing.T) {
	forEachExec(t, func(t *testing.T, e *parallel.Executor) {
		a := MustRows(t, e, [][]float64{{1, 2, 3}, {4, 5, 6}})

		rs, err := matrix.RowSums(a)
		require.NoError(t, err)
		assert.Equal(t, []float64{6, 15}, rs)

		cs, err := matrix.ColSums(a)
		require.NoError(t, err)
		assert.Equal(t, []float64{5, 7, 9}, cs)

		_, err = matrix.RowSums[float64](nil)
		require.ErrorIs(t, err, matrix.ErrNilMatrix)
	})
}

// TestCenterColumns: every column of the result has zero mean, and the means
// agree with gonum's column sums.
func TestCenterColumns(t *testing.T) {
	forEachExec(t, func(t *testing.T, e *parallel.Executor) {
		x := randMatrix(t, e, 12, 4, 17)
		g := toGonum(x)

		xc, means, err := matrix.CenterColumns(x)
		require.NoError(t, err)
		require.Len(t, means, 4)
		for j := range means {
			assert.InDelta(t, floats.Sum(mat.Col(nil, j, g))/12, means[j], tol)
		}
		cs, err := matrix.ColSums(xc)
		require.NoError(t, err)
		for _, s := range cs {
			assert.InDelta(t, 0, s, 1e-12)
		}
		assert.False(t, xc.MayShareCells(x))
	})
}

func TestCenterRows(t *testing.T) {
	forEachExec(t, func(t *testing.T, e *parallel.Executor) {
		x := MustRows(t, e, [][]float64{{1, 2, 3}, {10, 10, 40}})

		xc, means, err := matrix.CenterRows(x)
		require.NoError(t, err)
		assert.Equal(t, []float64{2, 20}, means)
		assert.Equal(t, [][]float64{{-1, 0, 1}, {-10, -10, 20}}, xc.ToRows())
		assert.False(t, xc.IsView())

		empty, means, err := matrix.CenterColumns(MustDense(t, e, 0, 3))
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0, 0}, means)
		assert.Equal(t, 0, empty.Size())
	})
}
