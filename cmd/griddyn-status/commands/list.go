// Package commands implements the griddyn-status CLI commands.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/griddyn/griddyn-go/pkg/wire"
)

// Formats accepted by RunList.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatCBOR  = "cbor"
)

// RunList writes the compiled status table to w in the given format.
func RunList(format string, w io.Writer) error {
	t := wire.LocalTable()

	switch format {
	case FormatTable, "":
		return formatTable(w, t)

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(t)

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return err
		}
		return enc.Close()

	case FormatCBOR:
		data, err := wire.EncodeTable(t)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err

	default:
		return fmt.Errorf("unknown format %q (use table, json, yaml, cbor)", format)
	}
}

// RunListFile writes the table to path. The file is closed before
// returning and removed when writing fails, so no partial output remains.
func RunListFile(format, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing %s: %w", path, cerr))
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	return RunList(format, f)
}

// formatTable writes a human-readable rendering of t.
func formatTable(w io.Writer, t *wire.Table) error {
	fp, err := t.Fingerprint()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s (ABI %s) fingerprint %s\n\n", t.Enum, t.ABI, fp[:16])
	fmt.Fprintf(w, "%5s  %-24s  %-32s  %s\n", "VALUE", "NAME", "NATIVE", "DESCRIPTION")
	for _, e := range t.Entries {
		fmt.Fprintf(w, "%5d  %-24s  %-32s  %s\n", e.Value, e.Name, e.NativeName, e.Description)
	}
	return nil
}
