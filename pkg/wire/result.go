package wire

import (
	"errors"
	"fmt"

	"github.com/griddyn/griddyn-go/pkg/status"
)

// Result reports the status a native call returned.
type Result struct {
	Call   string        `cbor:"1,keyasint"`
	Status status.Status `cbor:"2,keyasint"`
	Detail string        `cbor:"3,keyasint,omitempty"`
}

// NewResult builds a Result from a raw native code. Failure results carry
// the status description as Detail so peers without the table can show it.
// It fails for codes outside the status table.
func NewResult(call string, code int) (*Result, error) {
	s, err := status.FromValue(code)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", call, err)
	}
	r := &Result{Call: call, Status: s}
	if s.IsError() {
		r.Detail = s.Description()
	}
	return r, nil
}

// Validate checks that the result names a call and carries a known status.
func (r *Result) Validate() error {
	if r.Call == "" {
		return errors.New("missing call name")
	}
	if !r.Status.IsValid() {
		return &status.UnknownStatusCodeError{Value: int(r.Status)}
	}
	return nil
}

// IsSuccess returns true if the call returned griddyn_ok.
func (r *Result) IsSuccess() bool {
	return r.Status.IsSuccess()
}

// Err returns nil for a successful call and a *status.Error wrapped with
// the call name otherwise.
func (r *Result) Err() error {
	if err := r.Status.Err(); err != nil {
		return fmt.Errorf("%s: %w", r.Call, err)
	}
	return nil
}
