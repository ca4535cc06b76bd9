//go:build tools

package tools

// Pins the mock generator. Run `go run github.com/vektra/mockery/v2` from
// the module root to regenerate pkg/runtime/mocks.
import (
	_ "github.com/vektra/mockery/v2"
)
