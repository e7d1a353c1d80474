package log

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Filter specifies criteria for selecting trace events.
// Empty/nil fields match all events for that criterion.
type Filter struct {
	// Call filters by exact call name.
	Call string

	// Outcome filters by classification.
	Outcome *Outcome

	// Code filters by raw status code.
	Code *int

	// TimeStart filters events at or after this time.
	TimeStart *time.Time

	// TimeEnd filters events before this time.
	TimeEnd *time.Time
}

// Matches returns true if the event matches all filter criteria.
func (f *Filter) Matches(event Event) bool {
	if f.Call != "" && event.Call != f.Call {
		return false
	}
	if f.Outcome != nil && event.Outcome != *f.Outcome {
		return false
	}
	if f.Code != nil && event.Code != *f.Code {
		return false
	}
	if f.TimeStart != nil && event.Timestamp.Before(*f.TimeStart) {
		return false
	}
	if f.TimeEnd != nil && !event.Timestamp.Before(*f.TimeEnd) {
		return false
	}
	return true
}

// Reader streams events from a trace file.
type Reader struct {
	file    *os.File
	decoder *cbor.Decoder
	filter  Filter
}

// NewReader creates a Reader that returns every event in the trace file.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader creates a Reader that returns events matching filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{
		file:    f,
		decoder: NewDecoder(f),
		filter:  filter,
	}, nil
}

// Next returns the next matching event, or io.EOF at the end of the file.
func (r *Reader) Next() (Event, error) {
	for {
		var event Event
		if err := r.decoder.Decode(&event); err != nil {
			if errors.Is(err, io.EOF) {
				return Event{}, io.EOF
			}
			return Event{}, err
		}

		if r.filter.Matches(event) {
			return event, nil
		}
	}
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
