//go:build cgo

package bridge

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ffi-playground/numffi/arith"
)

// Both sides of the boundary must compute the same values for every input
// the contract defines.

func TestAddMatchesNative(t *testing.T) {
	cases := [][2]int32{
		{0, 0},
		{15, 27},
		{-5, 5},
		{math.MaxInt32, 1},
		{math.MinInt32, -1},
	}
	for _, c := range cases {
		assert.Equal(t, arith.Add(c[0], c[1]), AddCgo(c[0], c[1]), "add(%d, %d)", c[0], c[1])
	}
}

func TestFactorialMatchesNative(t *testing.T) {
	for n := uint32(0); n <= arith.MaxFactorialInput; n++ {
		assert.Equal(t, arith.FactorialSat(n), FactorialCgo(n), "factorial(%d)", n)
	}

	// Saturation past the representable range matches too.
	assert.Equal(t, uint64(math.MaxUint64), FactorialCgo(21))
	assert.Equal(t, arith.FactorialSat(21), FactorialCgo(21))
}
