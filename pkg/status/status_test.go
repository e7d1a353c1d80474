package status

import (
	"errors"
	"math"
	"testing"
)

var nativeTable = []struct {
	name  string
	value int
}{
	{"ok", 0},
	{"invalid_object", 1},
	{"invalid_parameter_value", 2},
	{"unknown_parameter", 3},
	{"add_failure", 4},
	{"remove_failure", 5},
	{"query_load_failure", 6},
	{"file_load_failure", 7},
	{"solve_error", 8},
	{"object_not_initialized", 9},
	{"invalid_function_call", 10},
	{"function_failure", 11},
}

func TestTableMatchesNativeHeader(t *testing.T) {
	all := All()
	if len(all) != len(nativeTable) {
		t.Fatalf("len(All()) = %d, want %d", len(all), len(nativeTable))
	}
	if Count != len(nativeTable) {
		t.Errorf("Count = %d, want %d", Count, len(nativeTable))
	}

	for i, want := range nativeTable {
		s := all[i]
		if s.String() != want.name {
			t.Errorf("All()[%d].String() = %q, want %q", i, s.String(), want.name)
		}
		if s.Value() != want.value {
			t.Errorf("%s.Value() = %d, want %d", want.name, s.Value(), want.value)
		}
	}
}

func TestFromValue_RoundTrip(t *testing.T) {
	for _, s := range All() {
		t.Run(s.String(), func(t *testing.T) {
			got, err := FromValue(s.Value())
			if err != nil {
				t.Fatalf("FromValue(%d) returned error: %v", s.Value(), err)
			}
			if got != s {
				t.Errorf("FromValue(%d) = %v, want %v", s.Value(), got, s)
			}
		})
	}
}

func TestFromValue_Scenarios(t *testing.T) {
	if s, err := FromValue(0); err != nil || s.String() != "ok" {
		t.Errorf("FromValue(0) = %v, %v; want ok", s, err)
	}
	if s, err := FromValue(8); err != nil || s.String() != "solve_error" {
		t.Errorf("FromValue(8) = %v, %v; want solve_error", s, err)
	}
	if s, err := FromValue(5); err != nil || s.Value() != 5 {
		t.Errorf("FromValue(5).Value() = %d, %v; want 5", s.Value(), err)
	}
}

func TestFromValue_Unknown(t *testing.T) {
	for _, v := range []int{12, -1, 13, 100, math.MaxInt32, math.MinInt32, math.MaxInt} {
		s, err := FromValue(v)
		if err == nil {
			t.Errorf("FromValue(%d) = %v, want error", v, s)
			continue
		}
		if !errors.Is(err, ErrUnknownStatusCode) {
			t.Errorf("FromValue(%d) error = %v, want ErrUnknownStatusCode", v, err)
		}
		var unknown *UnknownStatusCodeError
		if !errors.As(err, &unknown) {
			t.Fatalf("FromValue(%d) error type = %T, want *UnknownStatusCodeError", v, err)
		}
		if unknown.Value != v {
			t.Errorf("UnknownStatusCodeError.Value = %d, want %d", unknown.Value, v)
		}
	}
}

func TestMustFromValue(t *testing.T) {
	if got := MustFromValue(9); got != ObjectNotInitialized {
		t.Errorf("MustFromValue(9) = %v, want %v", got, ObjectNotInitialized)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustFromValue(12) did not panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnknownStatusCode) {
			t.Errorf("panic value = %v, want ErrUnknownStatusCode", r)
		}
	}()
	MustFromValue(12)
}

func TestDisplayNamesDistinct(t *testing.T) {
	seen := make(map[string]Status)
	for _, s := range All() {
		name := s.String()
		if name == "" {
			t.Errorf("status %d has empty name", s.Value())
		}
		if prev, dup := seen[name]; dup {
			t.Errorf("name %q used by %d and %d", name, prev.Value(), s.Value())
		}
		seen[name] = s
		if s.String() != name {
			t.Errorf("String() not stable for %d", s.Value())
		}
	}
}

func TestValuesDistinct(t *testing.T) {
	seen := make(map[int]bool)
	for _, s := range All() {
		if seen[s.Value()] {
			t.Errorf("value %d defined twice", s.Value())
		}
		seen[s.Value()] = true
	}
}

func TestStringUnknown(t *testing.T) {
	s := Status(42)
	if s.String() != "unknown(42)" {
		t.Errorf("String() = %q, want unknown(42)", s.String())
	}
	if s.IsValid() {
		t.Error("Status(42).IsValid() = true")
	}
	if s.NativeName() != "unknown(42)" {
		t.Errorf("NativeName() = %q, want unknown(42)", s.NativeName())
	}
}

func TestNativeName(t *testing.T) {
	if got := InvalidObject.NativeName(); got != "griddyn_invalid_object" {
		t.Errorf("NativeName() = %q, want griddyn_invalid_object", got)
	}
	if got := Ok.NativeName(); got != "griddyn_ok" {
		t.Errorf("NativeName() = %q, want griddyn_ok", got)
	}
}

func TestDescription(t *testing.T) {
	for _, s := range All() {
		if s.Description() == "" {
			t.Errorf("%s has no description", s)
		}
	}
	if Status(-5).Description() != "" {
		t.Error("unknown status should have empty description")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Status
	}{
		{"ok", Ok},
		{"solve_error", SolveError},
		{"griddyn_solve_error", SolveError},
		{"GRIDDYN_FILE_LOAD_FAILURE", FileLoadFailure},
		{"  unknown_parameter ", UnknownParameter},
		{"Function_Failure", FunctionFailure},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{"", "griddyn_", "success", "solve error", "griddyn_griddyn_ok", "8"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			if !errors.Is(err, ErrUnknownStatusName) {
				t.Errorf("Parse(%q) error = %v, want ErrUnknownStatusName", input, err)
			}
		})
	}
}

func TestParse_AllNames(t *testing.T) {
	for _, s := range All() {
		if got, err := Parse(s.String()); err != nil || got != s {
			t.Errorf("Parse(%q) = %v, %v", s.String(), got, err)
		}
		if got, err := Parse(s.NativeName()); err != nil || got != s {
			t.Errorf("Parse(%q) = %v, %v", s.NativeName(), got, err)
		}
	}
}

func TestSuccessPredicates(t *testing.T) {
	if !Ok.IsSuccess() || Ok.IsError() {
		t.Error("Ok should be success")
	}
	for _, s := range All()[1:] {
		if s.IsSuccess() || !s.IsError() {
			t.Errorf("%s should be an error", s)
		}
	}
}

func TestCheck(t *testing.T) {
	if err := Check(0); err != nil {
		t.Errorf("Check(0) = %v, want nil", err)
	}

	err := Check(8)
	var statusErr *Error
	if !errors.As(err, &statusErr) {
		t.Fatalf("Check(8) error type = %T, want *Error", err)
	}
	if statusErr.Status != SolveError {
		t.Errorf("Status = %v, want solve_error", statusErr.Status)
	}
	if err.Error() != "griddyn: solve_error" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, SolveError.Err()) {
		t.Error("errors.Is(err, SolveError.Err()) = false")
	}
	if errors.Is(err, AddFailure.Err()) {
		t.Error("errors.Is(err, AddFailure.Err()) = true")
	}

	if err := Check(-1); !errors.Is(err, ErrUnknownStatusCode) {
		t.Errorf("Check(-1) = %v, want ErrUnknownStatusCode", err)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0] = FunctionFailure
	if All()[0] != Ok {
		t.Error("All() exposed the internal table")
	}
}
