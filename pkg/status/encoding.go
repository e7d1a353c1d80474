package status

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// MarshalText encodes the display name.
func (s Status) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, &UnknownStatusCodeError{Value: int(s)}
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a display or native name.
func (s *Status) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalCBOR encodes the native integer value.
func (s Status) MarshalCBOR() ([]byte, error) {
	if !s.IsValid() {
		return nil, &UnknownStatusCodeError{Value: int(s)}
	}
	return cbor.Marshal(int(s))
}

// UnmarshalCBOR decodes a native integer value, rejecting unknown codes.
func (s *Status) UnmarshalCBOR(data []byte) error {
	var v int
	if err := cbor.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("failed to decode status: %w", err)
	}
	decoded, err := FromValue(v)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

var (
	_ cbor.Marshaler   = Status(0)
	_ cbor.Unmarshaler = (*Status)(nil)
)
