package wire

import (
	"errors"
	"fmt"

	"github.com/griddyn/griddyn-go/pkg/cenum"
	"github.com/griddyn/griddyn-go/pkg/status"
)

// TableEntry is one status of an advertised table.
type TableEntry struct {
	Name        string `cbor:"1,keyasint" json:"name" yaml:"name"`
	Value       int    `cbor:"2,keyasint" json:"value" yaml:"value"`
	NativeName  string `cbor:"3,keyasint" json:"nativeName" yaml:"nativeName"`
	Description string `cbor:"4,keyasint,omitempty" json:"description,omitempty" yaml:"description,omitempty"`
}

// Table is a status table as advertised by a peer or exported by this
// binding.
type Table struct {
	Enum    string       `cbor:"1,keyasint" json:"enum" yaml:"enum"`
	ABI     string       `cbor:"2,keyasint" json:"abi" yaml:"abi"`
	Entries []TableEntry `cbor:"3,keyasint" json:"entries" yaml:"entries"`
}

// LocalTable returns the table compiled into this binding.
func LocalTable() *Table {
	all := status.All()
	t := &Table{
		Enum:    status.NativeEnum,
		ABI:     status.NativeABI,
		Entries: make([]TableEntry, 0, len(all)),
	}
	for _, s := range all {
		t.Entries = append(t.Entries, TableEntry{
			Name:        s.String(),
			Value:       s.Value(),
			NativeName:  s.NativeName(),
			Description: s.Description(),
		})
	}
	return t
}

// Validate checks that entries are named and that names and values are
// unique.
func (t *Table) Validate() error {
	if len(t.Entries) == 0 {
		return errors.New("table has no entries")
	}
	names := make(map[string]bool, len(t.Entries))
	values := make(map[int]string, len(t.Entries))
	for _, e := range t.Entries {
		if e.Name == "" || e.NativeName == "" {
			return fmt.Errorf("entry with value %d has no name", e.Value)
		}
		if names[e.NativeName] {
			return fmt.Errorf("duplicate name %q", e.NativeName)
		}
		names[e.NativeName] = true
		if prev, dup := values[e.Value]; dup {
			return fmt.Errorf("value %d used by %q and %q", e.Value, prev, e.NativeName)
		}
		values[e.Value] = e.NativeName
	}
	return nil
}

// Version returns the native API version the table was built against.
func (t *Table) Version() string {
	return t.ABI
}

// Constant returns the value of the entry with the given native name.
// Together with Version it lets a decoded table stand in for the native
// library when verifying the binding.
func (t *Table) Constant(nativeName string) (int, bool) {
	for _, e := range t.Entries {
		if e.NativeName == nativeName {
			return e.Value, true
		}
	}
	return 0, false
}

// Constants returns every entry as an enumerator in table order, so
// strict verification also sees statuses the binding does not define.
func (t *Table) Constants() []cenum.Enumerator {
	out := make([]cenum.Enumerator, 0, len(t.Entries))
	for _, e := range t.Entries {
		out = append(out, cenum.Enumerator{Name: e.NativeName, Value: e.Value, Explicit: true})
	}
	return out
}
