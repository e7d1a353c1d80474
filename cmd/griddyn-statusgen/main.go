package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"

	"github.com/griddyn/griddyn-go/pkg/cenum"
)

func main() {
	defsPath := flag.String("defs", "", "Path to the status YAML mirror (api/griddyn_status.yaml)")
	headerPath := flag.String("header", "", "Path to the GridDyn C header; its values win over -defs")
	enumName := flag.String("enum", "", "C enum name to read from -header (default: nativeEnum from -defs, else griddyn_status)")
	prefix := flag.String("prefix", "", "Enumerator prefix to strip (default: nativePrefix from -defs, else griddyn_)")
	abi := flag.String("abi", "", "Native ABI version recorded in the output (default: abi from -defs)")
	pkg := flag.String("package", "status", "Package name of the generated file")
	output := flag.String("output", "", "Output path for the generated Go file")
	flag.Parse()

	if (*defsPath == "" && *headerPath == "") || *output == "" {
		fmt.Fprintln(os.Stderr, "Usage: griddyn-statusgen (-defs <path> | -header <path>) -output <path> [-enum <name>] [-prefix <p>] [-abi <ver>] [-package <name>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	opts := options{
		defsPath:   *defsPath,
		headerPath: *headerPath,
		enumName:   *enumName,
		prefix:     *prefix,
		abi:        *abi,
		pkg:        *pkg,
		output:     *output,
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	defsPath   string
	headerPath string
	enumName   string
	prefix     string
	abi        string
	pkg        string
	output     string
}

func run(opts options) error {
	def, source, err := loadDef(opts)
	if err != nil {
		return err
	}

	code, err := GenerateStatus(def, opts.pkg, source)
	if err != nil {
		return fmt.Errorf("generating %s: %w", def.Name, err)
	}

	if err := os.MkdirAll(filepath.Dir(opts.output), 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	if err := writeFormatted(opts.output, code); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(opts.output), err)
	}
	fmt.Printf("  generated %s\n", opts.output)
	return nil
}

// loadDef builds the definition to render and names the file it came from.
// With both inputs the header supplies names and values and the YAML mirror
// supplies metadata and descriptions.
func loadDef(opts options) (*RawStatusDef, string, error) {
	yamlDef := &RawStatusDef{Name: "Status"}
	if opts.defsPath != "" {
		d, err := LoadStatusDef(opts.defsPath)
		if err != nil {
			return nil, "", fmt.Errorf("loading status defs: %w", err)
		}
		yamlDef = d
	}

	enumName := firstNonEmpty(opts.enumName, yamlDef.NativeEnum, "griddyn_status")
	prefix := firstNonEmpty(opts.prefix, yamlDef.NativePrefix, "griddyn_")
	abi := firstNonEmpty(opts.abi, yamlDef.ABI)

	if opts.headerPath == "" {
		yamlDef.NativeEnum = enumName
		yamlDef.NativePrefix = prefix
		yamlDef.ABI = abi
		return yamlDef, filepath.Base(opts.defsPath), nil
	}

	enums, err := cenum.Load(opts.headerPath)
	if err != nil {
		return nil, "", fmt.Errorf("loading header: %w", err)
	}
	e, err := cenum.Find(enums, enumName)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", opts.headerPath, err)
	}

	def, err := FromHeader(e, prefix, abi, yamlDef.Descriptions())
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", opts.headerPath, err)
	}
	def.Name = yamlDef.Name
	for _, stale := range missingFrom(yamlDef, def) {
		fmt.Fprintf(os.Stderr, "warning: %s not in %s, dropped\n", stale, filepath.Base(opts.headerPath))
	}
	return def, filepath.Base(opts.headerPath), nil
}

// missingFrom returns the names in from that to does not declare.
func missingFrom(from, to *RawStatusDef) []string {
	have := make(map[string]bool, len(to.Values))
	for _, v := range to.Values {
		have[v.Name] = true
	}
	var out []string
	for _, v := range from.Values {
		if !have[v.Name] {
			out = append(out, v.Name)
		}
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
