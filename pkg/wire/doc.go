// Package wire defines the CBOR encoding of GridDyn call results and of the
// status table itself.
//
// Co-simulation peers (FNCS/HELICS federates, remote runners) exchange call
// results and advertise the status table they were built against. Both use
// CBOR (RFC 8949) with integer keys; a status is always encoded as its raw
// native integer.
//
// # Result
//
//	{
//	  1: call,     // text: native function name
//	  2: status,   // int: griddyn_status value
//	  3: detail    // text, optional
//	}
//
// # Table
//
//	{
//	  1: enum,     // text: C enum name
//	  2: abi,      // text: native API version
//	  3: entries   // array of {1: name, 2: value, 3: nativeName, 4: description}
//	}
//
// Decoding a Result rejects status values outside the local table, so an
// ABI mismatch between peers surfaces as a decode error.
package wire
