package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/griddyn/griddyn-go/pkg/status"
)

// Lookup resolves arg as a raw status value when it is an integer and as a
// display or native name otherwise.
func Lookup(arg string) (status.Status, error) {
	if v, err := strconv.Atoi(arg); err == nil {
		return status.FromValue(v)
	}
	return status.Parse(arg)
}

// RunLookup resolves each argument and writes one line per status. Unknown
// arguments are reported on the same stream and returned together.
func RunLookup(args []string, w io.Writer) error {
	if len(args) == 0 {
		return errors.New("at least one value or name required")
	}

	var errs []error
	for _, arg := range args {
		s, err := Lookup(arg)
		if err != nil {
			fmt.Fprintf(w, "%s: %v\n", arg, err)
			errs = append(errs, err)
			continue
		}
		fmt.Fprintln(w, describe(s))
	}
	return errors.Join(errs...)
}

// describe renders one status on a single line.
func describe(s status.Status) string {
	return fmt.Sprintf("%d %s (%s): %s", s.Value(), s, s.NativeName(), s.Description())
}
