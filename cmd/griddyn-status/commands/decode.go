package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/griddyn/griddyn-go/pkg/wire"
)

// DecodeHex decodes a hex string, ignoring whitespace and an optional 0x prefix.
func DecodeHex(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return data, nil
}

// RunDecode decodes a CBOR call result and writes it to w.
// Results carrying a status outside the table are rejected.
func RunDecode(data []byte, w io.Writer) error {
	r, err := wire.DecodeResult(data)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Call:   %s\n", r.Call)
	fmt.Fprintf(w, "Status: %s\n", describe(r.Status))
	if r.Detail != "" {
		fmt.Fprintf(w, "Detail: %s\n", r.Detail)
	}
	return nil
}
