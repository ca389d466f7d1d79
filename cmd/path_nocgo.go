//go:build !cgo

package cmd

import (
	"fmt"

	"github.com/ffi-playground/numffi/internal/benchrun"
)

// cgoCall fails fast when the binary was built without cgo, instead of
// silently falling back to the native path.
func cgoCall(op string) (benchrun.CallFunc, error) {
	return nil, fmt.Errorf("cgo path requires a binary built with CGO_ENABLED=1")
}
