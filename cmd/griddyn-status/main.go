// Command griddyn-status inspects the GridDyn status table compiled into
// this binding and checks it against the native library.
//
// Usage:
//
//	griddyn-status <command> [flags] [args]
//
// Commands:
//
//	list     Print the status table
//	lookup   Resolve status values or names
//	verify   Check the table against a C header or exported table
//	trace    View a native call trace file
//	decode   Decode a CBOR call result
//	shell    Interactive lookup shell
//
// Examples:
//
//	# Resolve a code returned by the library
//	griddyn-status lookup 8
//
//	# Check the binding against an installed header
//	griddyn-status verify -header /usr/include/griddyn/griddyn_export.h
//
//	# Show only failed calls of a trace
//	griddyn-status trace -outcome failure run.gtrace
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/griddyn/griddyn-go/cmd/griddyn-status/commands"
	"github.com/griddyn/griddyn-go/cmd/griddyn-status/interactive"
	"github.com/griddyn/griddyn-go/pkg/log"
)

const usage = `griddyn-status - GridDyn status table tool

Usage:
  griddyn-status <command> [flags] [args]

Commands:
  list     Print the status table
  lookup   Resolve status values or names
  verify   Check the table against a C header or exported table
  trace    View a native call trace file
  decode   Decode a CBOR call result
  shell    Interactive lookup shell

Use "griddyn-status <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "list":
		runList(args)
	case "lookup":
		runLookup(args)
	case "verify":
		runVerify(args)
	case "trace":
		runTrace(args)
	case "decode":
		runDecode(args)
	case "shell":
		runShell(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func newFlagSet(name, synopsis, usageLine string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "griddyn-status %s - %s\n\nUsage:\n  griddyn-status %s\n\nFlags:\n", name, synopsis, usageLine)
		fs.PrintDefaults()
	}
	return fs
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func runList(args []string) {
	fs := newFlagSet("list", "Print the status table", "list [flags]")
	format := fs.String("format", commands.FormatTable, "Output format (table, json, yaml, cbor)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *output != "" {
		if err := commands.RunListFile(*format, *output); err != nil {
			fail(err)
		}
		return
	}

	if err := commands.RunList(*format, os.Stdout); err != nil {
		fail(err)
	}
}

func runLookup(args []string) {
	fs := newFlagSet("lookup", "Resolve status values or names", "lookup <value|name>...")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if err := commands.RunLookup(fs.Args(), os.Stdout); err != nil {
		os.Exit(1)
	}
}

func runVerify(args []string) {
	fs := newFlagSet("verify", "Check the table against a C header or exported table", "verify (-header <path> | -table <path>) [flags]")
	header := fs.String("header", "", "C header declaring the status enum")
	enum := fs.String("enum", "", "Enum name in the header (default: compiled enum)")
	ver := fs.String("version", "", "API version the header declares (default: compiled ABI)")
	table := fs.String("table", "", "CBOR status table written by \"list -format cbor\"")
	strict := fs.Bool("strict", false, "Fail on native statuses the binding does not define")
	skipVersion := fs.Bool("skip-version", false, "Skip the API version check")
	verbose := fs.Bool("v", false, "Log the check at debug level")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := commands.VerifyOptions{
		Header:      *header,
		Enum:        *enum,
		Version:     *ver,
		Table:       *table,
		Strict:      *strict,
		SkipVersion: *skipVersion,
	}
	if err := commands.RunVerify(opts, os.Stdout, logger); err != nil {
		fail(err)
	}
}

func runTrace(args []string) {
	fs := newFlagSet("trace", "View a native call trace file", "trace [flags] <file.gtrace>")
	call := fs.String("call", "", "Filter by call name")
	outcome := fs.String("outcome", "", "Filter by outcome (success, failure, unknown, skipped)")
	code := fs.Int("code", -1, "Filter by raw status code")
	since := fs.String("since", "", "Only events at or after this RFC3339 time")
	until := fs.String("until", "", "Only events before this RFC3339 time")
	summary := fs.Bool("summary", false, "Print only the summary")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	filter := log.Filter{Call: *call}

	if *outcome != "" {
		o, err := commands.ParseOutcomeFlag(*outcome)
		if err != nil {
			fail(err)
		}
		filter.Outcome = &o
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "code" {
			filter.Code = code
		}
	})

	if *since != "" {
		t, err := time.Parse(time.RFC3339, *since)
		if err != nil {
			fail(fmt.Errorf("invalid -since: %w", err))
		}
		filter.TimeStart = &t
	}

	if *until != "" {
		t, err := time.Parse(time.RFC3339, *until)
		if err != nil {
			fail(fmt.Errorf("invalid -until: %w", err))
		}
		filter.TimeEnd = &t
	}

	if err := commands.RunTrace(fs.Arg(0), filter, *summary, os.Stdout); err != nil {
		fail(err)
	}
}

func runDecode(args []string) {
	fs := newFlagSet("decode", "Decode a CBOR call result", "decode [-hex <bytes>] [file]")
	hexInput := fs.String("hex", "", "Hex-encoded CBOR result")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	var data []byte
	var err error
	switch {
	case *hexInput != "":
		data, err = commands.DecodeHex(*hexInput)
	case fs.NArg() > 0:
		data, err = os.ReadFile(fs.Arg(0))
	default:
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fail(err)
	}

	if err := commands.RunDecode(data, os.Stdout); err != nil {
		fail(err)
	}
}

func runShell(args []string) {
	fs := newFlagSet("shell", "Interactive lookup shell", "shell")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	sh, err := interactive.New()
	if err != nil {
		fail(err)
	}
	sh.Run(ctx)
}
