//go:build cgo

package cmd

import (
	"fmt"

	"github.com/ffi-playground/numffi/bridge"
	"github.com/ffi-playground/numffi/internal/benchrun"
)

// cgoCall returns the round-trip-through-C call path for the named operation.
func cgoCall(op string) (benchrun.CallFunc, error) {
	switch op {
	case benchrun.OpAdd:
		return func(n uint32) uint64 {
			return uint64(uint32(bridge.AddCgo(int32(n), int32(n))))
		}, nil
	case benchrun.OpFactorial:
		return func(n uint32) uint64 {
			return bridge.FactorialCgo(n)
		}, nil
	default:
		return nil, fmt.Errorf("unknown op %q", op)
	}
}
