//go:build tools

package tools

// Pins the mockery version used for pkg/native/mocks (see .mockery.yaml).
// Run: go run github.com/vektra/mockery/v2 from the repository root.
import (
	_ "github.com/vektra/mockery/v2"
)
