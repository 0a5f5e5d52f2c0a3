// SPDX-License-Identifier: MIT
package ring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/bordered/ring"
)

func TestF2_Arithmetic(t *testing.T) {
	r := ring.F2
	assert.Equal(t, 0, r.Zero())
	assert.Equal(t, 1, r.One())

	cases := []struct {
		a, b     int
		sum, mul int
	}{
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{1, 1, 0, 1},
		{3, 5, 0, 1},
		{-1, 2, 1, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.sum, r.Add(tc.a, tc.b), "add(%d,%d)", tc.a, tc.b)
		assert.Equal(t, tc.mul, r.Mul(tc.a, tc.b), "mul(%d,%d)", tc.a, tc.b)
	}
}

func TestF2_ReduceAndIsZero(t *testing.T) {
	r := ring.F2
	assert.True(t, r.IsZero(0))
	assert.True(t, r.IsZero(-4))
	assert.False(t, r.IsZero(7))
	assert.Equal(t, 1, r.Reduce(-3))
	assert.Equal(t, "F2", r.String())
}
