package log

import (
	"time"

	"github.com/griddyn/griddyn-go/pkg/status"
)

// Event records one native call.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the call started (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// CallID uniquely identifies the call (UUID).
	CallID string `cbor:"2,keyasint"`

	// Call is the native function name, e.g. "gridDynSimulation_run".
	Call string `cbor:"3,keyasint"`

	// Code is the raw status code returned by the library.
	Code int `cbor:"4,keyasint"`

	// Outcome is how Code was classified.
	Outcome Outcome `cbor:"5,keyasint"`

	// Duration of the call.
	Duration time.Duration `cbor:"6,keyasint,omitempty"`

	// Message carries extra context, such as the error text of a skipped call.
	Message string `cbor:"7,keyasint,omitempty"`
}

// Status returns the classified status of the call.
// It fails for events whose code is not in the status table.
func (e Event) Status() (status.Status, error) {
	return status.FromValue(e.Code)
}

// Outcome classifies a call result.
type Outcome uint8

const (
	// OutcomeSuccess indicates the call returned griddyn_ok.
	OutcomeSuccess Outcome = 0
	// OutcomeFailure indicates the call returned a known failure status.
	OutcomeFailure Outcome = 1
	// OutcomeUnknown indicates the call returned a code outside the table.
	OutcomeUnknown Outcome = 2
	// OutcomeSkipped indicates the call was not made because its context was done.
	OutcomeSkipped Outcome = 3
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "SUCCESS"
	case OutcomeFailure:
		return "FAILURE"
	case OutcomeUnknown:
		return "UNKNOWN_CODE"
	case OutcomeSkipped:
		return "SKIPPED"
	default:
		return "UNKNOWN"
	}
}

// ParseOutcome returns the outcome with the given name (case-sensitive).
func ParseOutcome(s string) (Outcome, bool) {
	for o := OutcomeSuccess; o <= OutcomeSkipped; o++ {
		if o.String() == s {
			return o, true
		}
	}
	return 0, false
}

// Classify returns the outcome for a raw status code.
func Classify(code int) Outcome {
	s, err := status.FromValue(code)
	switch {
	case err != nil:
		return OutcomeUnknown
	case s.IsSuccess():
		return OutcomeSuccess
	default:
		return OutcomeFailure
	}
}
