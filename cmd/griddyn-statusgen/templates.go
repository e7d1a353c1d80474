package main

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"firstLower": firstLower,
	"goName":     goName,
	"quote":      func(s string) string { return fmt.Sprintf("%q", s) },
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	headerTmpl +
		constantsTmpl +
		tablesTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

// statusData holds pre-computed data for all templates.
type statusData struct {
	Source       string
	Package      string
	TypeName     string
	NativeEnum   string
	NativePrefix string
	ABI          string
	Values       []StatusValue
}

// --- Template definitions ---

const headerTmpl = `{{define "header"}}// Code generated by griddyn-statusgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

// NativeEnum is the C enum type these constants mirror.
const NativeEnum = {{quote .NativeEnum}}

// NativePrefix is the prefix shared by the C enumerator names.
const NativePrefix = {{quote .NativePrefix}}

// NativeABI is the native API version the table was generated against.
const NativeABI = {{quote .ABI}}
{{end}}`

const constantsTmpl = `{{define "constants"}}
const (
{{- range $i, $v := .Values}}
{{- if $i}}
{{end}}
// {{goName .Name}} means {{firstLower .Description}}.
{{goName .Name}} {{$.TypeName}} = {{.Value}}
{{- end}}
)
{{end}}`

const tablesTmpl = `{{define "tables"}}
// statuses lists every status in header declaration order.
var statuses = [...]{{.TypeName}}{
{{- range .Values}}
{{goName .Name}},
{{- end}}
}

var statusNames = map[{{.TypeName}}]string{
{{- range .Values}}
{{goName .Name}}: {{quote .Name}},
{{- end}}
}

var statusByName = map[string]{{.TypeName}}{
{{- range .Values}}
{{quote .Name}}: {{goName .Name}},
{{- end}}
}

var statusDescriptions = map[{{.TypeName}}]string{
{{- range .Values}}
{{goName .Name}}: {{quote .Description}},
{{- end}}
}
{{end}}`

// GenerateStatus renders the Go source for a resolved status definition.
func GenerateStatus(def *RawStatusDef, pkg, source string) (string, error) {
	values, err := def.Resolve()
	if err != nil {
		return "", err
	}
	if def.NativeEnum == "" {
		return "", fmt.Errorf("status definition %s missing nativeEnum", def.Name)
	}
	if def.ABI == "" {
		return "", fmt.Errorf("status definition %s missing abi", def.Name)
	}

	data := statusData{
		Source:       source,
		Package:      pkg,
		TypeName:     def.Name,
		NativeEnum:   def.NativeEnum,
		NativePrefix: def.NativePrefix,
		ABI:          def.ABI,
		Values:       values,
	}

	var b strings.Builder
	renderTemplate(&b, "header", data)
	renderTemplate(&b, "constants", data)
	renderTemplate(&b, "tables", data)
	return b.String(), nil
}

// goName converts "invalid_object" to "InvalidObject".
func goName(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

func firstLower(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
