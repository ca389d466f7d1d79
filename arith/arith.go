// Package arith implements the numeric core behind the C ABI boundary: two
// pure, stateless functions that are safe to call concurrently without
// synchronization. Nothing in this package allocates, blocks, or panics.
package arith

import (
	"errors"
	"math"
)

// MaxFactorialInput is the largest n for which n! fits in a uint64.
// 21! = 51090942171709440000 > 2^64-1.
const MaxFactorialInput = 20

// ErrOverflow is returned by Factorial when the true result exceeds the
// uint64 range.
var ErrOverflow = errors.New("arith: factorial overflows uint64")

// Add returns the sum of a and b with two's-complement wrapping on overflow,
// which is Go's native int32 arithmetic. Callers that need trapping overflow
// must bounds-check before calling.
func Add(a, b int32) int32 {
	return a + b
}

// Factorial returns n! for n in [0, MaxFactorialInput]. For larger n the
// result would not fit in a uint64 and ErrOverflow is returned instead of a
// truncated value. Factorial(0) is 1.
func Factorial(n uint32) (uint64, error) {
	if n > MaxFactorialInput {
		return 0, ErrOverflow
	}
	result := uint64(1)
	for i := uint64(2); i <= uint64(n); i++ {
		result *= i
	}
	return result, nil
}

// FactorialSat is the in-band variant used at the C boundary, where the
// fixed uint64_t return type leaves no room for an error channel. It returns
// n! for n <= MaxFactorialInput and saturates to math.MaxUint64 above that.
// MaxUint64 is not the factorial of any n, so callers can treat it as an
// unambiguous overflow sentinel.
func FactorialSat(n uint32) uint64 {
	result, err := Factorial(n)
	if err != nil {
		return math.MaxUint64
	}
	return result
}
