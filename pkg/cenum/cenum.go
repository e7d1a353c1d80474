// Package cenum extracts enum declarations from C headers.
//
// It understands the subset of C that API headers use for status enums:
// tagged and anonymous enums, typedef names, implicit values (previous + 1,
// starting at 0), integer literals in any C base and references to
// enumerators declared earlier in the same header. Anything else in the
// header is skipped.
package cenum

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrEnumNotFound is returned by Find when no enum has the requested name.
	ErrEnumNotFound = errors.New("enum not found")

	// ErrDuplicateEnumerator is returned when an enumerator name is declared twice.
	ErrDuplicateEnumerator = errors.New("duplicate enumerator")
)

// Enumerator is a single named constant of an enum.
type Enumerator struct {
	Name  string
	Value int
	// Explicit is true when the header assigns the value with "=".
	Explicit bool
}

// Enum is a parsed enum declaration.
type Enum struct {
	// Tag is the identifier after the enum keyword, if any.
	Tag string
	// Typedef is the name introduced by a surrounding typedef, if any.
	Typedef string
	Values  []Enumerator
}

// Name returns the typedef name, falling back to the tag.
func (e Enum) Name() string {
	if e.Typedef != "" {
		return e.Typedef
	}
	return e.Tag
}

// Lookup returns the value of the named enumerator.
func (e Enum) Lookup(name string) (int, bool) {
	for _, v := range e.Values {
		if v.Name == name {
			return v.Value, true
		}
	}
	return 0, false
}

var (
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineComment  = regexp.MustCompile(`//[^\n]*`)
	directive    = regexp.MustCompile(`(?m)^[ \t]*#.*$`)
	enumHead     = regexp.MustCompile(`\benum\b\s*([A-Za-z_]\w*)?\s*\{`)
	identifier   = regexp.MustCompile(`^[A-Za-z_]\w*$`)
	typedefTail  = regexp.MustCompile(`^\s*([A-Za-z_]\w*)\s*;`)
	typedefHead  = regexp.MustCompile(`\btypedef\s*$`)
)

// Parse extracts every enum declaration with a body from a C header.
func Parse(src []byte) ([]Enum, error) {
	text := stripNoise(string(src))

	// Enumerators are visible to later enums, as in C.
	scope := make(map[string]int)

	var enums []Enum
	pos := 0
	for {
		loc := enumHead.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]
		open := pos + loc[1] - 1

		closeIdx := strings.IndexByte(text[open:], '}')
		if closeIdx < 0 {
			return nil, fmt.Errorf("unterminated enum at offset %d", start)
		}
		closeIdx += open

		e := Enum{}
		if loc[2] >= 0 {
			e.Tag = text[pos+loc[2] : pos+loc[3]]
		}

		values, err := parseBody(text[open+1:closeIdx], scope)
		if err != nil {
			name := e.Tag
			if name == "" {
				name = "<anonymous>"
			}
			return nil, fmt.Errorf("enum %s: %w", name, err)
		}
		e.Values = values

		if typedefHead.MatchString(text[:start]) {
			if m := typedefTail.FindStringSubmatch(text[closeIdx+1:]); m != nil {
				e.Typedef = m[1]
			}
		}

		enums = append(enums, e)
		pos = closeIdx + 1
	}
	return enums, nil
}

// Load reads and parses a header file.
func Load(path string) ([]Enum, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	enums, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return enums, nil
}

// Find returns the enum whose typedef name or tag equals name.
func Find(enums []Enum, name string) (Enum, error) {
	for _, e := range enums {
		if e.Typedef == name || e.Tag == name {
			return e, nil
		}
	}
	return Enum{}, fmt.Errorf("%w: %q", ErrEnumNotFound, name)
}

func stripNoise(s string) string {
	s = blockComment.ReplaceAllString(s, " ")
	s = lineComment.ReplaceAllString(s, "")
	return directive.ReplaceAllString(s, "")
}

func parseBody(body string, scope map[string]int) ([]Enumerator, error) {
	var out []Enumerator
	seen := make(map[string]bool)
	next := 0

	for _, item := range strings.Split(body, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			// Trailing comma.
			continue
		}

		name, expr, explicit := strings.Cut(item, "=")
		name = strings.TrimSpace(name)
		if !identifier.MatchString(name) {
			return nil, fmt.Errorf("invalid enumerator %q", item)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEnumerator, name)
		}
		seen[name] = true

		value := next
		if explicit {
			v, err := evalExpr(strings.TrimSpace(expr), scope)
			if err != nil {
				return nil, fmt.Errorf("enumerator %s: %w", name, err)
			}
			value = v
		}

		out = append(out, Enumerator{Name: name, Value: value, Explicit: explicit})
		scope[name] = value
		next = value + 1
	}
	return out, nil
}

// evalExpr evaluates a constant expression limited to an optionally signed
// and parenthesized integer literal or enumerator reference.
func evalExpr(expr string, scope map[string]int) (int, error) {
	for strings.HasPrefix(expr, "(") && strings.HasSuffix(expr, ")") {
		expr = strings.TrimSpace(expr[1 : len(expr)-1])
	}
	if expr == "" {
		return 0, errors.New("empty value")
	}

	switch expr[0] {
	case '-':
		v, err := evalExpr(strings.TrimSpace(expr[1:]), scope)
		return -v, err
	case '+':
		return evalExpr(strings.TrimSpace(expr[1:]), scope)
	}

	if identifier.MatchString(expr) {
		v, ok := scope[expr]
		if !ok {
			return 0, fmt.Errorf("undefined identifier %q", expr)
		}
		return v, nil
	}

	lit := strings.TrimRight(expr, "uUlL")
	v, err := strconv.ParseInt(lit, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("unsupported value %q", expr)
	}
	return int(v), nil
}
