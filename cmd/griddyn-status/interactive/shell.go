// Package interactive provides the interactive status lookup shell.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/griddyn/griddyn-go/cmd/griddyn-status/commands"
	"github.com/griddyn/griddyn-go/pkg/status"
)

// Shell handles interactive mode for griddyn-status.
type Shell struct {
	rl *readline.Instance
}

// New creates a new interactive shell with tab completion of status names.
func New() (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "status> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Shell{rl: rl}, nil
}

func completer() *readline.PrefixCompleter {
	names := make([]readline.PrefixCompleterInterface, 0, status.Count)
	for _, s := range status.All() {
		names = append(names, readline.PcItem(s.String()))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("lookup", names...),
		readline.PcItem("list"),
		readline.PcItem("check"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)
}

// Run starts the interactive command loop. It returns when the context is
// done, on EOF, or after "exit".
func (s *Shell) Run(ctx context.Context) {
	defer s.rl.Close()

	out := s.rl.Stdout()
	printHelp(out)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(out, "Exiting...")
			return
		}

		if quit := Execute(line, out); quit {
			return
		}
	}
}

// Execute runs a single shell command and reports whether the shell should exit.
func Execute(line string, w io.Writer) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		printHelp(w)

	case "list", "ls":
		if err := commands.RunList(commands.FormatTable, w); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
		}

	case "lookup", "l":
		if len(args) == 0 {
			fmt.Fprintln(w, "Usage: lookup <value|name>...")
			return false
		}
		// Failures are already printed per argument.
		_ = commands.RunLookup(args, w)

	case "check", "c":
		cmdCheck(args, w)

	case "exit", "quit", "q":
		return true

	default:
		// A bare value or name is a lookup.
		_ = commands.RunLookup(parts, w)
	}
	return false
}

// cmdCheck shows the error a native call returning the code would produce.
func cmdCheck(args []string, w io.Writer) {
	if len(args) != 1 {
		fmt.Fprintln(w, "Usage: check <code>")
		return
	}
	code, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(w, "Error: invalid code %q\n", args[0])
		return
	}
	if err := status.Check(code); err != nil {
		fmt.Fprintf(w, "%d -> error: %v\n", code, err)
		return
	}
	fmt.Fprintf(w, "%d -> ok\n", code)
}

func printHelp(w io.Writer) {
	fmt.Fprint(w, `Commands:
  lookup, l <value|name>...  Resolve status values or names
  check, c <code>            Show the error a native call returning code yields
  list, ls                   Print the status table
  help, ?                    Show this help
  exit, quit, q              Leave the shell
A bare value or name is looked up directly.
`)
}
