// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/parallel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented verifies that an unconfigured matrix uses the
// documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	m, err := matrix.NewDense[float64](1, 1)
	require.NoError(t, err)

	assert.Equal(t, matrix.DefaultValidateNaNInf, matrix.ValidatesNaNInf_TestOnly(m))
	assert.Same(t, parallel.Default(), m.Executor())
}

func TestWithExecutorNilPanics(t *testing.T) {
	assert.PanicsWithValue(t, matrix.PanicExecutorNil_TestOnly, func() {
		_ = matrix.WithExecutor(nil)
	})
}

// TestLastWriterWins: repeated options resolve in order.
func TestLastWriterWins(t *testing.T) {
	e1, e2 := seqExec(), seqExec()
	m, err := matrix.NewDense[float64](1, 1,
		matrix.WithExecutor(e1),
		matrix.WithValidateNaNInf(),
		matrix.WithExecutor(e2),
		matrix.WithNoValidateNaNInf(),
	)
	require.NoError(t, err)
	assert.Same(t, e2, m.Executor())
	assert.False(t, matrix.ValidatesNaNInf_TestOnly(m))
}

// TestViewsInheritOptions: every view and copy keeps executor and policy.
func TestViewsInheritOptions(t *testing.T) {
	e := seqExec()
	m, err := matrix.NewDense[float64](4, 4, matrix.WithExecutor(e), matrix.WithValidateNaNInf())
	require.NoError(t, err)

	p, err := m.ViewPart(0, 0, 2, 2)
	require.NoError(t, err)
	s, err := m.ViewSelection([]int{1}, nil)
	require.NoError(t, err)
	for _, v := range []*matrix.Matrix[float64]{m.ViewTranspose(), m.ViewFlip(matrix.Columns), p, s, m.Copy()} {
		assert.Same(t, e, v.Executor())
		assert.True(t, matrix.ValidatesNaNInf_TestOnly(v))
	}
}

// TestExecutorSettingsAreLive: changing the executor's degree affects the
// next operation of every matrix bound to it.
func TestExecutorSettingsAreLive(t *testing.T) {
	e := seqExec()
	a := seqMatrix(t, e, 16, 4)
	want := a.Sum()

	e.SetDegree(4)
	e.SetThreshold(0)
	assert.Equal(t, parallel.Settings{Degree: 4, Threshold: 0}, a.Executor().Settings())
	assert.Equal(t, want, a.Sum())
}
