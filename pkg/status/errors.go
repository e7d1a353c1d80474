package status

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownStatusCode is matched by errors for native codes outside the table.
	ErrUnknownStatusCode = errors.New("unknown status code")

	// ErrUnknownStatusName is matched by errors for names outside the table.
	ErrUnknownStatusName = errors.New("unknown status name")
)

// UnknownStatusCodeError reports a native code with no matching Status.
type UnknownStatusCodeError struct {
	Value int
}

func (e *UnknownStatusCodeError) Error() string {
	return fmt.Sprintf("%s: no %s value %d", ErrUnknownStatusCode, NativeEnum, e.Value)
}

// Is matches ErrUnknownStatusCode.
func (e *UnknownStatusCodeError) Is(target error) bool {
	return target == ErrUnknownStatusCode
}

// UnknownStatusNameError reports a name with no matching Status.
type UnknownStatusNameError struct {
	Name string
}

func (e *UnknownStatusNameError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownStatusName, e.Name)
}

// Is matches ErrUnknownStatusName.
func (e *UnknownStatusNameError) Is(target error) bool {
	return target == ErrUnknownStatusName
}

// Error is returned for a native call that completed with a failure status.
type Error struct {
	Status Status
}

func (e *Error) Error() string {
	return "griddyn: " + e.Status.String()
}

// Is reports whether target is an *Error with the same status, so callers
// can write errors.Is(err, status.SolveError.Err()).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Status == e.Status
}
