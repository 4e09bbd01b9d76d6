// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and executors for every kernel.
//   • Run each property under a sequential (P=1) and a forced-parallel
//     (P=4, threshold 0) executor so both code paths are exercised on tiny
//     matrices.

package matrix_test

import (
	"io"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/parallel"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// tolerance for float64 comparisons against reference results.
const tol = 1e-9

// quietLogger discards executor diagnostics.
func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// execCase names one executor configuration.
type execCase struct {
	name string
	exec *parallel.Executor
}

// execCases returns fresh P=1 and P=4 (threshold 0) executors.
func execCases() []execCase {
	return []execCase{
		{"P=1", parallel.New(parallel.WithDegree(1), parallel.WithLogger(quietLogger()))},
		{"P=4", parallel.New(parallel.WithDegree(4), parallel.WithThreshold(0), parallel.WithLogger(quietLogger()))},
	}
}

// seqExec returns a sequential executor for tests that do not depend on P.
func seqExec() *parallel.Executor {
	return parallel.New(parallel.WithDegree(1), parallel.WithLogger(quietLogger()))
}

// forEachExec runs body once per executor configuration as a subtest.
func forEachExec(t *testing.T, body func(t *testing.T, e *parallel.Executor)) {
	t.Helper()
	for _, ec := range execCases() {
		t.Run(ec.name, func(t *testing.T) { body(t, ec.exec) })
	}
}

// MustRows builds a dense float64 matrix bound to e or fails the test.
func MustRows(t testing.TB, e *parallel.Executor, rows [][]float64) *matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.FromRows(rows, matrix.WithExecutor(e))
	require.NoError(t, err)

	return m
}

// MustDense allocates an r×c zero matrix bound to e or fails the test.
func MustDense(t testing.TB, e *parallel.Executor, r, c int) *matrix.Matrix[float64] {
	t.Helper()
	m, err := matrix.NewDense[float64](r, c, matrix.WithExecutor(e))
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Matrix[float64], i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// seqMatrix returns an r×c matrix with cell (i,j) = i*c + j.
func seqMatrix(t testing.TB, e *parallel.Executor, r, c int) *matrix.Matrix[float64] {
	t.Helper()
	m := MustDense(t, e, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			m.SetQuick(i, j, float64(i*c+j))
		}
	}

	return m
}

// randMatrix returns an r×c matrix with values uniform in [-1, 1) drawn from
// a fixed seed.
func randMatrix(t testing.TB, e *parallel.Executor, r, c int, seed int64) *matrix.Matrix[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}
	m, err := matrix.FromValues(r, c, vals, matrix.WithExecutor(e))
	require.NoError(t, err)

	return m
}

// toGonum copies m into a gonum dense matrix (reference oracle).
func toGonum(m *matrix.Matrix[float64]) *mat.Dense {
	r, c := m.Shape()
	if r == 0 || c == 0 {
		return &mat.Dense{}
	}

	return mat.NewDense(r, c, m.ToValues())
}

// fromGonum returns the row snapshot of a gonum matrix.
func fromGonum(d mat.Matrix) [][]float64 {
	r, c := d.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			out[i][j] = d.At(i, j)
		}
	}

	return out
}

// requireRowsApprox compares row snapshots with a relative/absolute tolerance.
func requireRowsApprox(t testing.TB, want, got [][]float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(tol, tol), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

// requireRows compares row snapshots exactly (NaN equals NaN).
func requireRows(t testing.TB, want, got [][]float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateNaNs(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}
