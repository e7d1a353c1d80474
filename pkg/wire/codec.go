package wire

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder mode for wire messages.
// Configured for deterministic encoding with integer keys.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for wire messages.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	// Lenient for forward compatibility: peers may add keys.
	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// Marshal encodes a value to CBOR bytes.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR bytes into a value.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// NewEncoder creates a new CBOR encoder that writes to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return encMode.NewEncoder(w)
}

// NewDecoder creates a new CBOR decoder that reads from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return decMode.NewDecoder(r)
}

// EncodeResult encodes a call result to CBOR bytes.
func EncodeResult(r *Result) ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("invalid result: %w", err)
	}
	return Marshal(r)
}

// DecodeResult decodes CBOR bytes into a call result.
func DecodeResult(data []byte) (*Result, error) {
	var r Result
	if err := Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("invalid result: %w", err)
	}
	return &r, nil
}

// EncodeTable encodes a status table to CBOR bytes.
func EncodeTable(t *Table) ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid table: %w", err)
	}
	return Marshal(t)
}

// DecodeTable decodes CBOR bytes into a status table.
func DecodeTable(data []byte) (*Table, error) {
	var t Table
	if err := Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to decode table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid table: %w", err)
	}
	return &t, nil
}
