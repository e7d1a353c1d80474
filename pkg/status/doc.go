// Package status classifies the integer result codes returned by the
// GridDyn C API.
//
// Every native call reports a griddyn_status value. The constants in this
// package mirror that enum and are generated from the native header (or
// its YAML mirror in api/griddyn_status.yaml), so a Status compares equal
// to the native integer by plain conversion.
//
// # Lookup
//
// FromValue converts a raw code into a Status and fails with
// ErrUnknownStatusCode when the code is not part of the table. An unknown
// code almost always means the binding and the loaded library disagree on
// the ABI, so it is never mapped to a default:
//
//	s, err := status.FromValue(code)
//	if err != nil {
//	    return err // errors.Is(err, status.ErrUnknownStatusCode)
//	}
//
// Check combines the lookup with the success test and is the usual entry
// point after a native call:
//
//	if err := status.Check(code); err != nil {
//	    return fmt.Errorf("griddynRunSolve: %w", err)
//	}
//
// # Encoding
//
// Status implements encoding.TextMarshaler (display name, used by JSON and
// YAML) and the CBOR marshaler interfaces (raw integer). Decoding rejects
// names and values outside the table.
package status

//go:generate go run ../../cmd/griddyn-statusgen -defs ../../api/griddyn_status.yaml -output status_gen.go
