package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// FileLogger appends call events to a trace file in CBOR format.
// It is safe for concurrent use from multiple goroutines.
type FileLogger struct {
	path    string
	file    *os.File
	encoder *cbor.Encoder
	mu      sync.Mutex
	closed  bool
	dropped int
}

// NewFileLogger opens the trace file at path for appending, creating it and
// its parent directory if needed.
func NewFileLogger(path string) (*FileLogger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating trace dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening trace file: %w", err)
	}
	return &FileLogger{
		path:    path,
		file:    f,
		encoder: NewEncoder(f),
	}, nil
}

// Path returns the trace file path.
func (l *FileLogger) Path() string {
	return l.path
}

// Log appends an event to the trace file.
// Encoding errors are counted, not returned; tracing never fails a call.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	if err := l.encoder.Encode(event); err != nil {
		l.dropped++
	}
}

// Dropped returns the number of events that could not be written.
func (l *FileLogger) Dropped() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dropped
}

// Close closes the trace file.
// It is safe to call Close multiple times; later Log calls are ignored.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}

	l.closed = true
	return l.file.Close()
}

// Compile-time interface satisfaction check.
var _ Logger = (*FileLogger)(nil)
