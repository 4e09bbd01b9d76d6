// SPDX-License-Identifier: MIT

package fn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvmat/fn"
)

func TestUnary(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3.0, fn.Identity(3.0))
	assert.Equal(t, -3.0, fn.Neg(3.0))
	assert.Equal(t, 3.0, fn.Abs(-3.0))
	assert.Equal(t, 9.0, fn.Square(3.0))
	assert.Equal(t, float32(4), fn.Sqrt(float32(16)))
	assert.InDelta(t, math.E, fn.Exp(1.0), 1e-12)
	assert.InDelta(t, 1.0, fn.Log(math.E), 1e-12)
	assert.Equal(t, 0.25, fn.Inv(4.0))
	assert.Equal(t, 7.0, fn.Constant(7.0)(123))
	assert.Equal(t, 6.0, fn.Scale(2.0)(3))
	assert.Equal(t, 5.0, fn.Shift(2.0)(3))
	assert.Equal(t, 1.0, fn.Clamp(-1.0, 1.0)(5))
	assert.Equal(t, -1.0, fn.Clamp(-1.0, 1.0)(-5))
	assert.Equal(t, 0.5, fn.Clamp(-1.0, 1.0)(0.5))
}

func TestBinary(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5.0, fn.Plus(2.0, 3.0))
	assert.Equal(t, -1.0, fn.Minus(2.0, 3.0))
	assert.Equal(t, 6.0, fn.Mult(2.0, 3.0))
	assert.Equal(t, 2.0, fn.Div(6.0, 3.0))
	assert.Equal(t, 729.0, fn.Pow(3.0, 6.0))
	assert.Equal(t, 1.0, fn.Pow(0.0, 0.0))
	assert.Equal(t, 3.0, fn.Max(2.0, 3.0))
	assert.Equal(t, 2.0, fn.Min(2.0, 3.0))
	assert.Equal(t, 8.0, fn.PlusMult(2.0)(2, 3))
	assert.Equal(t, -4.0, fn.MinusMult(2.0)(2, 3))
}

func TestCombinators(t *testing.T) {
	t.Parallel()

	sqThenNeg := fn.Chain(fn.Neg[float64], fn.Square[float64])
	assert.Equal(t, -9.0, sqThenNeg(3))

	negSum := fn.ChainBinary(fn.Neg[float64], fn.Plus[float64])
	assert.Equal(t, -5.0, negSum(2, 3))

	assert.Equal(t, 8.0, fn.BindFirst(fn.Pow[float64], 2)(3))
	assert.Equal(t, 9.0, fn.BindSecond(fn.Pow[float64], 2)(3))
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, fn.IsZero(0.0))
	assert.True(t, fn.NonZero(-1.0))
	assert.True(t, fn.IsNaN(math.NaN()))
	assert.False(t, fn.IsNaN(1.0))
	assert.True(t, fn.Greater(1.0)(2))
	assert.True(t, fn.Less(1.0)(0))
	assert.True(t, fn.Equals(1.0)(1))
	assert.True(t, fn.Between(1.0, 2.0)(1.5))
	assert.False(t, fn.Between(1.0, 2.0)(2.5))
	assert.True(t, fn.Not(fn.IsZero[float64])(3))
}
