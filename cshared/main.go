//go:build cgo

// This package is the C ABI surface of the library. Build it with
//
//	go build -buildmode=c-shared -o libnumffi.so ./cshared
//
// which also generates a header declaring the exported functions:
//
//	int32_t add_numbers(int32_t a, int32_t b);
//	uint64_t factorial(uint32_t n);
//
// Both use fixed-width types and the platform's standard C calling
// convention, so any language with a C FFI can link against them.
package main

/*
#include <stdint.h>
*/
import "C"

import "github.com/ffi-playground/numffi/arith"

// add_numbers returns a+b with two's-complement wrapping on overflow.
//
//export add_numbers
func add_numbers(a, b C.int32_t) C.int32_t {
	return C.int32_t(arith.Add(int32(a), int32(b)))
}

// factorial returns n! for n in [0, 20] and UINT64_MAX for larger n, since
// the fixed return type has no room for an error channel. UINT64_MAX is not
// the factorial of any n, so it doubles as an overflow sentinel.
//
//export factorial
func factorial(n C.uint32_t) C.uint64_t {
	return C.uint64_t(arith.FactorialSat(uint32(n)))
}

// main is required for c-shared builds, even though it never runs.
func main() {}
