// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) *matrix.Matrix[float64] {
		m, err := matrix.NewDense[float64](r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    *matrix.Matrix[float64]
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"transpose view", zeros(3, 2).ViewTranspose(), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateVecLen([]float32{1, 2}, 2))
	require.NoError(t, matrix.ValidateVecLen[float64](nil, 0))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}

func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewDense[float64](2, 3)
	require.NoError(t, err)
	b, err := matrix.NewDense[float64](3, 4)
	require.NoError(t, err)

	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.ErrorIs(t, matrix.ValidateMulCompatible(b, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, b), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil[float64](nil), matrix.ErrNilMatrix)
}
