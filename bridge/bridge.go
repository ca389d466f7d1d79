//go:build cgo

// Package bridge crosses the boundary in the other direction: it embeds C
// implementations of the exported functions so tests can confirm both sides
// of the ABI agree numerically, and benchmarks can compare native Go calls
// against cgo calls.
package bridge

/*
#include <stdint.h>

static inline int32_t add_c(int32_t a, int32_t b) {
    return a + b;
}

static inline uint64_t factorial_c(uint32_t n) {
    if (n > 20) {
        return UINT64_MAX;
    }
    uint64_t result = 1;
    for (uint32_t i = 2; i <= n; i++) {
        result *= (uint64_t)i;
    }
    return result;
}
*/
// #cgo nocallback add_c
// #cgo noescape add_c
// #cgo nocallback factorial_c
// #cgo noescape factorial_c
import "C"

// AddCgo is a small wrapper exposing the C implementation as a normal Go function.
func AddCgo(a, b int32) int32 {
	return int32(C.add_c(C.int32_t(a), C.int32_t(b)))
}

// FactorialCgo wraps the C factorial. Like the exported Go version it
// saturates to UINT64_MAX for n > 20.
func FactorialCgo(n uint32) uint64 {
	return uint64(C.factorial_c(C.uint32_t(n)))
}
