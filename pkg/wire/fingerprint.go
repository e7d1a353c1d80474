package wire

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a BLAKE2b-256 digest of the table's enum name and its
// native name/value pairs, hex encoded. Two tables with equal fingerprints
// map every code identically. Entry order and descriptions do not count.
// Invalid tables are rejected since duplicate names would collapse.
func (t *Table) Fingerprint() (string, error) {
	if err := t.Validate(); err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	entries := make(map[string]int, len(t.Entries))
	for _, e := range t.Entries {
		entries[e.NativeName] = e.Value
	}
	canon := struct {
		Enum    string         `cbor:"1,keyasint"`
		Entries map[string]int `cbor:"2,keyasint"`
	}{t.Enum, entries}

	data, err := Marshal(canon)
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
