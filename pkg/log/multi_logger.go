package log

// MultiLogger sends events to multiple loggers.
// Useful when you want console output (via SlogAdapter), a trace file
// (via FileLogger) and metrics at the same time.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a MultiLogger that sends events to all provided
// loggers. Nil loggers are dropped.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	m := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
	return m
}

// Log sends the event to all configured loggers.
func (m *MultiLogger) Log(event Event) {
	for _, l := range m.loggers {
		l.Log(event)
	}
}

// Compile-time interface satisfaction check.
var _ Logger = (*MultiLogger)(nil)
