package status

import (
	"fmt"
	"strings"
)

// Status is a griddyn_status result code.
type Status int

// Count is the number of defined status codes.
const Count = len(statuses)

// FromValue returns the Status whose native value is v.
// It fails with an *UnknownStatusCodeError when v is not in the table.
func FromValue(v int) (Status, error) {
	s := Status(v)
	if _, ok := statusNames[s]; !ok {
		return 0, &UnknownStatusCodeError{Value: v}
	}
	return s, nil
}

// MustFromValue is like FromValue but panics on unknown values.
func MustFromValue(v int) Status {
	s, err := FromValue(v)
	if err != nil {
		panic(err)
	}
	return s
}

// Parse returns the Status with the given display name ("solve_error") or
// native name ("griddyn_solve_error"). Matching ignores case and
// surrounding whitespace.
func Parse(name string) (Status, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if s, ok := statusByName[key]; ok {
		return s, nil
	}
	if s, ok := statusByName[strings.TrimPrefix(key, NativePrefix)]; ok {
		return s, nil
	}
	return 0, &UnknownStatusNameError{Name: name}
}

// All returns every status in declaration order.
func All() []Status {
	out := make([]Status, len(statuses))
	copy(out, statuses[:])
	return out
}

// Value returns the native integer value.
func (s Status) Value() int {
	return int(s)
}

// String returns the display name, e.g. "invalid_object".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// NativeName returns the C enumerator name, e.g. "griddyn_invalid_object".
func (s Status) NativeName() string {
	if name, ok := statusNames[s]; ok {
		return NativePrefix + name
	}
	return s.String()
}

// Description returns a short human-readable explanation of the status.
func (s Status) Description() string {
	return statusDescriptions[s]
}

// IsValid reports whether s is one of the defined statuses.
func (s Status) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

// IsSuccess returns true if the status indicates success.
func (s Status) IsSuccess() bool {
	return s == Ok
}

// IsError returns true if the status indicates an error.
func (s Status) IsError() bool {
	return s != Ok
}

// Err returns nil for Ok and an *Error carrying s otherwise.
func (s Status) Err() error {
	if s == Ok {
		return nil
	}
	return &Error{Status: s}
}

// Check classifies a raw native result code. It returns nil for Ok, an
// *Error for a known failure status and an *UnknownStatusCodeError when the
// code is not in the table.
func Check(code int) error {
	s, err := FromValue(code)
	if err != nil {
		return err
	}
	return s.Err()
}
