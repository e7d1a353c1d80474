package native

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/griddyn/griddyn-go/pkg/status"
	"github.com/griddyn/griddyn-go/pkg/version"
)

var (
	// ErrIncompatibleVersion is returned when the library's API version
	// cannot serve the compiled status table.
	ErrIncompatibleVersion = errors.New("incompatible native API version")

	// ErrMissingConstant is returned when the library does not export a
	// status the binding defines.
	ErrMissingConstant = errors.New("missing native constant")

	// ErrExtraConstant is returned in strict mode when the library exports
	// a status the binding does not define.
	ErrExtraConstant = errors.New("unbound native constant")
)

// MismatchError reports a status whose native value differs from the
// compiled one.
type MismatchError struct {
	Status status.Status
	Native int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: binding has %d, library has %d", e.Status.NativeName(), e.Status.Value(), e.Native)
}

// VerifyConfig configures Verify.
type VerifyConfig struct {
	// Logger receives a summary of the check. Defaults to slog.Default().
	Logger *slog.Logger

	// SkipVersion disables the API version check.
	SkipVersion bool

	// Strict also fails on library constants the binding does not define.
	// Without it they are only logged.
	Strict bool
}

// Verify checks that every compiled status exists in lib with the same
// value and that lib's API version satisfies the one the table was
// generated against. All problems are reported together.
func Verify(lib Library, cfg VerifyConfig) error {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var errs []error

	if !cfg.SkipVersion {
		if err := checkVersion(lib.Version()); err != nil {
			errs = append(errs, err)
		}
	}

	for _, s := range status.All() {
		v, ok := lib.Constant(s.NativeName())
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingConstant, s.NativeName()))
		case v != s.Value():
			errs = append(errs, &MismatchError{Status: s, Native: v})
		}
	}

	if en, ok := lib.(Enumerator); ok {
		for _, c := range en.Constants() {
			if s, err := status.Parse(c.Name); err == nil && s.NativeName() == c.Name {
				continue
			}
			logger.Warn("native status constant has no binding", "name", c.Name, "value", c.Value)
			if cfg.Strict {
				errs = append(errs, fmt.Errorf("%w: %s = %d", ErrExtraConstant, c.Name, c.Value))
			}
		}
	}

	if len(errs) > 0 {
		logger.Error("status table does not match native library",
			"library_version", lib.Version(),
			"binding_version", status.NativeABI,
			"problems", len(errs))
		return errors.Join(errs...)
	}

	logger.Info("status table matches native library",
		"library_version", lib.Version(),
		"statuses", status.Count)
	return nil
}

func checkVersion(libVersion string) error {
	lib, err := version.Parse(libVersion)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIncompatibleVersion, err)
	}
	if !lib.Satisfies(version.Binding()) {
		return fmt.Errorf("%w: library %s, binding %s", ErrIncompatibleVersion, lib, version.Binding())
	}
	return nil
}
