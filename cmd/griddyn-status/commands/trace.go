package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/griddyn/griddyn-go/pkg/log"
)

// ParseOutcomeFlag parses an outcome flag value (case-insensitive).
// "unknown" is accepted for UNKNOWN_CODE.
func ParseOutcomeFlag(s string) (log.Outcome, error) {
	name := strings.ToUpper(s)
	if name == "UNKNOWN" {
		name = "UNKNOWN_CODE"
	}
	o, ok := log.ParseOutcome(name)
	if !ok {
		return 0, fmt.Errorf("invalid outcome: %s (use success, failure, unknown, skipped)", s)
	}
	return o, nil
}

// TraceStats holds aggregate statistics about a trace file.
type TraceStats struct {
	Total     int
	ByOutcome map[log.Outcome]int
	ByCall    map[string]int
	Slowest   time.Duration
	TimeRange struct {
		Start time.Time
		End   time.Time
	}
}

// RunTrace prints the matching events of a trace file followed by a summary.
// With summaryOnly set only the summary is written.
func RunTrace(path string, filter log.Filter, summaryOnly bool, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	stats := &TraceStats{
		ByOutcome: make(map[log.Outcome]int),
		ByCall:    make(map[string]int),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if !summaryOnly {
			formatEvent(w, event)
		}
		stats.add(event)
	}

	if !summaryOnly && stats.Total > 0 {
		fmt.Fprintln(w)
	}
	formatStats(w, stats)
	return nil
}

func (s *TraceStats) add(event log.Event) {
	s.Total++
	s.ByOutcome[event.Outcome]++
	s.ByCall[event.Call]++
	if event.Duration > s.Slowest {
		s.Slowest = event.Duration
	}
	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}
}

// formatEvent writes a one-line rendering of a trace event.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")

	code := fmt.Sprintf("code=%d", event.Code)
	if s, err := event.Status(); err == nil {
		code = fmt.Sprintf("%s(%d)", s, event.Code)
	}
	if event.Outcome == log.OutcomeSkipped {
		code = "-"
	}

	fmt.Fprintf(w, "%s [call:%s] %-12s %s %s", ts, shortenID(event.CallID), event.Outcome, event.Call, code)
	if event.Duration > 0 {
		fmt.Fprintf(w, " %s", event.Duration)
	}
	if event.Message != "" {
		fmt.Fprintf(w, " %q", event.Message)
	}
	fmt.Fprintln(w)
}

// formatStats writes the summary block.
func formatStats(w io.Writer, s *TraceStats) {
	fmt.Fprintf(w, "Events: %d\n", s.Total)
	if s.Total == 0 {
		return
	}
	fmt.Fprintf(w, "Time range: %s .. %s\n",
		s.TimeRange.Start.UTC().Format(time.RFC3339), s.TimeRange.End.UTC().Format(time.RFC3339))
	fmt.Fprintf(w, "Slowest call: %s\n", s.Slowest)

	fmt.Fprintln(w, "By outcome:")
	for o := log.OutcomeSuccess; o <= log.OutcomeSkipped; o++ {
		if n := s.ByOutcome[o]; n > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", o, n)
		}
	}

	fmt.Fprintln(w, "By call:")
	calls := make([]string, 0, len(s.ByCall))
	for c := range s.ByCall {
		calls = append(calls, c)
	}
	sort.Strings(calls)
	for _, c := range calls {
		fmt.Fprintf(w, "  %-32s %d\n", c, s.ByCall[c])
	}
}

// shortenID returns the first 8 characters of a call ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
