package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/griddyn/griddyn-go/pkg/cenum"
)

// RawStatusDef represents a status enum definition loaded from YAML.
type RawStatusDef struct {
	Name         string           `yaml:"name"`
	NativeEnum   string           `yaml:"nativeEnum"`
	NativePrefix string           `yaml:"nativePrefix"`
	ABI          string           `yaml:"abi"`
	Values       []RawStatusValue `yaml:"values"`
}

// RawStatusValue represents a single status. Value is optional; when absent
// it follows the C rule of previous value + 1.
type RawStatusValue struct {
	Name        string `yaml:"name"`
	Value       *int   `yaml:"value"`
	Description string `yaml:"description"`
}

// StatusValue is a status with its value resolved.
type StatusValue struct {
	Name        string
	Value       int
	Description string
}

var statusName = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// reservedIdents are exported identifiers declared by the hand-written
// files of the status package or by the generated header. A constant with
// one of these names would not compile.
var reservedIdents = map[string]bool{
	"All":                    true,
	"Check":                  true,
	"Count":                  true,
	"Error":                  true,
	"ErrUnknownStatusCode":   true,
	"ErrUnknownStatusName":   true,
	"FromValue":              true,
	"MustFromValue":          true,
	"NativeABI":              true,
	"NativeEnum":             true,
	"NativePrefix":           true,
	"Parse":                  true,
	"UnknownStatusCodeError": true,
	"UnknownStatusNameError": true,
}

// ParseStatusDef parses a status definition from YAML bytes.
func ParseStatusDef(data []byte) (*RawStatusDef, error) {
	var def RawStatusDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing status def: %w", err)
	}
	if def.Name == "" {
		return nil, fmt.Errorf("status definition missing name")
	}
	return &def, nil
}

// LoadStatusDef loads and parses a status definition from a file.
func LoadStatusDef(path string) (*RawStatusDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseStatusDef(data)
}

// Resolve assigns implicit values and validates names and values.
func (d *RawStatusDef) Resolve() ([]StatusValue, error) {
	if len(d.Values) == 0 {
		return nil, fmt.Errorf("status definition %s has no values", d.Name)
	}

	out := make([]StatusValue, 0, len(d.Values))
	names := make(map[string]bool, len(d.Values))
	idents := make(map[string]string, len(d.Values))
	values := make(map[int]string, len(d.Values))
	next := 0

	for _, v := range d.Values {
		if !statusName.MatchString(v.Name) {
			return nil, fmt.Errorf("invalid status name %q: want lower_snake_case", v.Name)
		}
		if names[v.Name] {
			return nil, fmt.Errorf("duplicate status name %q", v.Name)
		}
		names[v.Name] = true

		ident := goName(v.Name)
		if reservedIdents[ident] || ident == d.Name {
			return nil, fmt.Errorf("status %q maps to reserved identifier %s", v.Name, ident)
		}
		if prev, dup := idents[ident]; dup {
			return nil, fmt.Errorf("statuses %q and %q both map to identifier %s", prev, v.Name, ident)
		}
		idents[ident] = v.Name

		value := next
		if v.Value != nil {
			value = *v.Value
		}
		if prev, dup := values[value]; dup {
			return nil, fmt.Errorf("status %q reuses value %d of %q", v.Name, value, prev)
		}
		values[value] = v.Name
		next = value + 1

		desc := v.Description
		if desc == "" {
			desc = defaultDescription(v.Name)
		}
		out = append(out, StatusValue{Name: v.Name, Value: value, Description: desc})
	}
	return out, nil
}

// FromHeader builds a definition from a parsed C enum. Every enumerator must
// carry prefix, which is stripped to form the status name. Descriptions are
// taken from descs when present (keyed by stripped name).
func FromHeader(e cenum.Enum, prefix, abi string, descs map[string]string) (*RawStatusDef, error) {
	def := &RawStatusDef{
		Name:         "Status",
		NativeEnum:   e.Name(),
		NativePrefix: prefix,
		ABI:          abi,
	}
	for _, ev := range e.Values {
		if !strings.HasPrefix(ev.Name, prefix) {
			return nil, fmt.Errorf("enumerator %s lacks prefix %q", ev.Name, prefix)
		}
		name := strings.TrimPrefix(ev.Name, prefix)
		value := ev.Value
		def.Values = append(def.Values, RawStatusValue{
			Name:        name,
			Value:       &value,
			Description: descs[name],
		})
	}
	return def, nil
}

// Descriptions returns the descriptions of d keyed by status name.
func (d *RawStatusDef) Descriptions() map[string]string {
	out := make(map[string]string, len(d.Values))
	for _, v := range d.Values {
		if v.Description != "" {
			out[v.Name] = v.Description
		}
	}
	return out
}

// defaultDescription turns "object_not_initialized" into
// "Object not initialized".
func defaultDescription(name string) string {
	s := strings.ReplaceAll(name, "_", " ")
	return strings.ToUpper(s[:1]) + s[1:]
}
