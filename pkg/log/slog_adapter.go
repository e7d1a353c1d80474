package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes call events to an slog.Logger.
// Successful calls are logged at Debug, failure statuses and skipped calls
// at Warn, and codes outside the status table at Error.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
// A nil logger uses slog.Default().
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("call_id", event.CallID),
		slog.String("call", event.Call),
		slog.Int("code", event.Code),
		slog.String("outcome", event.Outcome.String()),
	}

	if s, err := event.Status(); err == nil {
		attrs = append(attrs, slog.String("status", s.String()))
	}
	if event.Duration > 0 {
		attrs = append(attrs, slog.Duration("duration", event.Duration))
	}
	if event.Message != "" {
		attrs = append(attrs, slog.String("message", event.Message))
	}

	level := slog.LevelDebug
	msg := "native call"
	switch event.Outcome {
	case OutcomeFailure, OutcomeSkipped:
		level = slog.LevelWarn
	case OutcomeUnknown:
		level = slog.LevelError
		msg = "native call returned unknown status code"
	}

	a.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
