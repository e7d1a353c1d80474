package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/griddyn/griddyn-go/pkg/native"
	"github.com/griddyn/griddyn-go/pkg/status"
	"github.com/griddyn/griddyn-go/pkg/wire"
)

// VerifyOptions selects what the compiled table is verified against.
// Exactly one of Header and Table must be set.
type VerifyOptions struct {
	// Header is the path of a C header declaring the status enum.
	Header string
	// Enum names the enum in Header, or the enum Table must declare.
	// Defaults to the compiled enum name.
	Enum string
	// Version is the API version the header declares. Defaults to the
	// compiled ABI version.
	Version string
	// Table is the path of a CBOR status table, as written by "list -format cbor".
	Table string
	// Strict fails on native statuses the binding does not define.
	Strict bool
	// SkipVersion disables the API version check.
	SkipVersion bool
}

// RunVerify checks the compiled table against a header or exported table.
func RunVerify(opts VerifyOptions, w io.Writer, logger *slog.Logger) error {
	lib, source, err := openLibrary(opts)
	if err != nil {
		return err
	}

	err = native.Verify(lib, native.VerifyConfig{
		Logger:      logger,
		SkipVersion: opts.SkipVersion,
		Strict:      opts.Strict,
	})
	if err != nil {
		fmt.Fprintf(w, "FAIL %s\n", source)
		for _, e := range unwrapAll(err) {
			fmt.Fprintf(w, "  %v\n", e)
		}
		return fmt.Errorf("%s does not match the binding", source)
	}

	fmt.Fprintf(w, "OK   %s (version %s)\n", source, lib.Version())
	return nil
}

func openLibrary(opts VerifyOptions) (native.Library, string, error) {
	switch {
	case opts.Header != "" && opts.Table != "":
		return nil, "", errors.New("use either -header or -table, not both")

	case opts.Header != "":
		lib, err := native.LoadHeader(opts.Header, opts.Enum, opts.Version)
		if err != nil {
			return nil, "", fmt.Errorf("loading header: %w", err)
		}
		return lib, opts.Header, nil

	case opts.Table != "":
		data, err := os.ReadFile(opts.Table)
		if err != nil {
			return nil, "", fmt.Errorf("reading table: %w", err)
		}
		t, err := wire.DecodeTable(data)
		if err != nil {
			return nil, "", fmt.Errorf("decoding table: %w", err)
		}
		want := opts.Enum
		if want == "" {
			want = status.NativeEnum
		}
		if t.Enum != want {
			return nil, "", fmt.Errorf("table is for enum %q, want %q", t.Enum, want)
		}
		return t, opts.Table, nil

	default:
		return nil, "", errors.New("-header or -table required")
	}
}

// unwrapAll flattens an errors.Join tree into its leaves.
func unwrapAll(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range j.Unwrap() {
			out = append(out, unwrapAll(e)...)
		}
		return out
	}
	return []error{err}
}
