// Package log traces calls into the GridDyn native library.
//
// Every call made through a binding.Invoker produces one Event: the call
// name, the raw status code it returned, how that code was classified and
// how long the call took. This trace is separate from operational logging
// (slog); it is a complete machine-readable record for debugging ABI
// mismatches and failing simulations.
//
// # Basic Usage
//
//	// For development: log to console via slog
//	cfg.Logger = log.NewSlogAdapter(slog.Default())
//
//	// For production: append to a binary trace file
//	cfg.Logger, _ = log.NewFileLogger("/var/log/griddyn/calls.gtrace")
//
//	// Both, plus Prometheus counters
//	cfg.Logger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	    metrics.NewCollector(prometheus.DefaultRegisterer),
//	)
//
// # File Format
//
// Trace files are a stream of CBOR-encoded events with integer keys. The
// griddyn-status trace command reads them back.
package log
