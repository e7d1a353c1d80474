package version

import (
	"testing"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		input string
		major uint16
		minor uint16
		patch uint16
	}{
		{"1.0", 1, 0, 0},
		{"1.1", 1, 1, 0},
		{"0.6.0", 0, 6, 0},
		{"10.23.4", 10, 23, 4},
		{"0.6.1-beta", 0, 6, 1},
		{"0.6.0 (2017-09-15)", 0, 6, 0},
		{" 2.0+build7 ", 2, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if v.Major != tt.major {
				t.Errorf("Major = %d, want %d", v.Major, tt.major)
			}
			if v.Minor != tt.minor {
				t.Errorf("Minor = %d, want %d", v.Minor, tt.minor)
			}
			if v.Patch != tt.patch {
				t.Errorf("Patch = %d, want %d", v.Patch, tt.patch)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []string{
		"",
		"1",
		"abc",
		"1.0.0.0",
		"1.x",
		"-1.0",
		"1..0",
		"70000.0",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			if err == nil {
				t.Errorf("Parse(%q) should return error", input)
			}
		})
	}
}

func TestAPIVersion_String(t *testing.T) {
	tests := map[string]string{
		"1.0":        "1.0",
		"10.23":      "10.23",
		"0.6.2":      "0.6.2",
		"0.6.0-beta": "0.6",
	}
	for input, want := range tests {
		if got := MustParse(input).String(); got != want {
			t.Errorf("Parse(%q).String() = %q, want %q", input, got, want)
		}
	}
}

func TestCompatible(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"1.0", "1.1", true},
		{"1.1", "1.0", true},
		{"1.0", "2.0", false},
		{"0.6.0", "0.6.3", true},
		{"0.6", "0.7", false},
	}

	for _, tt := range tests {
		got := MustParse(tt.a).Compatible(MustParse(tt.b))
		if got != tt.want {
			t.Errorf("%s.Compatible(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCompareAndSatisfies(t *testing.T) {
	if MustParse("1.2").Compare(MustParse("1.10")) != -1 {
		t.Error("1.2 should sort before 1.10")
	}
	if MustParse("1.0.1").Compare(MustParse("1.0")) != 1 {
		t.Error("1.0.1 should sort after 1.0")
	}
	if MustParse("3.4.5").Compare(MustParse("3.4.5")) != 0 {
		t.Error("3.4.5 should equal itself")
	}

	required := MustParse("1.1")
	if !MustParse("1.3").Satisfies(required) {
		t.Error("1.3 should satisfy 1.1")
	}
	if MustParse("1.0").Satisfies(required) {
		t.Error("1.0 should not satisfy 1.1")
	}
	if MustParse("2.0").Satisfies(required) {
		t.Error("2.0 should not satisfy 1.1")
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse(\"bogus\") did not panic")
		}
	}()
	MustParse("bogus")
}

func TestBinding(t *testing.T) {
	v := Binding()
	if v.Major != 1 || v.Minor != 0 {
		t.Errorf("Binding() = %s, want 1.0", v)
	}
}
