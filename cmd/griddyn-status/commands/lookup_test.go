package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/griddyn/griddyn-go/pkg/status"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		arg  string
		want status.Status
	}{
		{"0", status.Ok},
		{"8", status.SolveError},
		{"invalid_object", status.InvalidObject},
		{"griddyn_function_failure", status.FunctionFailure},
		{"SOLVE_ERROR", status.SolveError},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := Lookup(tt.arg)
			if err != nil {
				t.Fatalf("Lookup(%q) error: %v", tt.arg, err)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("12"); !errors.Is(err, status.ErrUnknownStatusCode) {
		t.Errorf("Lookup(12) error = %v, want ErrUnknownStatusCode", err)
	}
	if _, err := Lookup("-1"); !errors.Is(err, status.ErrUnknownStatusCode) {
		t.Errorf("Lookup(-1) error = %v, want ErrUnknownStatusCode", err)
	}
	if _, err := Lookup("bogus"); !errors.Is(err, status.ErrUnknownStatusName) {
		t.Errorf("Lookup(bogus) error = %v, want ErrUnknownStatusName", err)
	}
}

func TestRunLookup(t *testing.T) {
	var buf bytes.Buffer
	err := RunLookup([]string{"5", "query_load_failure"}, &buf)
	if err != nil {
		t.Fatalf("RunLookup error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "5 remove_failure (griddyn_remove_failure)") {
		t.Errorf("expected remove_failure line, got: %s", output)
	}
	if !strings.Contains(output, "6 query_load_failure (griddyn_query_load_failure)") {
		t.Errorf("expected query_load_failure line, got: %s", output)
	}
}

func TestRunLookupReportsEveryUnknown(t *testing.T) {
	var buf bytes.Buffer
	err := RunLookup([]string{"99", "ok", "nope"}, &buf)
	if err == nil {
		t.Fatal("expected error for unknown arguments")
	}
	if !errors.Is(err, status.ErrUnknownStatusCode) || !errors.Is(err, status.ErrUnknownStatusName) {
		t.Errorf("error = %v, want both unknown code and unknown name", err)
	}

	output := buf.String()
	if !strings.Contains(output, "0 ok (griddyn_ok)") {
		t.Errorf("expected ok to resolve, got: %s", output)
	}
	if !strings.Contains(output, "99: ") || !strings.Contains(output, "nope: ") {
		t.Errorf("expected both failures reported, got: %s", output)
	}
}

func TestRunLookupNoArgs(t *testing.T) {
	var buf bytes.Buffer
	if err := RunLookup(nil, &buf); err == nil {
		t.Fatal("expected error without arguments")
	}
}
