// Package native describes the GridDyn C library as seen by the binding and
// checks that the compiled status table agrees with it.
//
// The library is an external collaborator: this package never performs
// simulation work, it only reads the constants the library (or its header)
// exports.
package native

import (
	"fmt"

	"github.com/griddyn/griddyn-go/pkg/cenum"
	"github.com/griddyn/griddyn-go/pkg/status"
)

// Library exposes the native constants the binding depends on.
type Library interface {
	// Version returns the native API version string.
	Version() string

	// Constant returns the value of the named C enumerator.
	Constant(name string) (int, bool)
}

// Enumerator is implemented by libraries that can list every enumerator of
// the status enum. Verify uses it to report constants the binding lacks.
type Enumerator interface {
	Constants() []cenum.Enumerator
}

// HeaderLibrary is a Library backed by a parsed C header.
type HeaderLibrary struct {
	version string
	enum    cenum.Enum
}

// NewHeaderLibrary creates a HeaderLibrary from an already parsed enum.
func NewHeaderLibrary(enum cenum.Enum, version string) *HeaderLibrary {
	return &HeaderLibrary{version: version, enum: enum}
}

// LoadHeader parses the header at path and selects the named enum.
// An empty enumName selects status.NativeEnum and an empty version selects
// status.NativeABI.
func LoadHeader(path, enumName, version string) (*HeaderLibrary, error) {
	if enumName == "" {
		enumName = status.NativeEnum
	}
	if version == "" {
		version = status.NativeABI
	}

	enums, err := cenum.Load(path)
	if err != nil {
		return nil, err
	}
	e, err := cenum.Find(enums, enumName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return NewHeaderLibrary(e, version), nil
}

// Version returns the version the header was declared with.
func (h *HeaderLibrary) Version() string {
	return h.version
}

// Constant returns the value of the named enumerator.
func (h *HeaderLibrary) Constant(name string) (int, bool) {
	return h.enum.Lookup(name)
}

// Constants returns every enumerator in declaration order.
func (h *HeaderLibrary) Constants() []cenum.Enumerator {
	out := make([]cenum.Enumerator, len(h.enum.Values))
	copy(out, h.enum.Values)
	return out
}

// Compile-time interface satisfaction checks.
var (
	_ Library    = (*HeaderLibrary)(nil)
	_ Enumerator = (*HeaderLibrary)(nil)
)
