// Package log provides structured capture logging for edge data clients.
//
// This package defines the Logger interface and Event types for capturing
// client activity against the edge data runtime: connection state changes,
// reads and writes of data points, batched syncs, inbound data change events
// and runtime diagnostics. It is separate from operational logging (slog) -
// the capture log is a complete machine-readable trace for debugging and
// replay analysis.
//
// # Basic Usage
//
// Applications configure capture by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.CaptureLogger = log.NewSlogAdapter(slog.Default())
//
//	// For production: write to binary file
//	cfg.CaptureLogger, _ = log.NewFileLogger("/var/log/siapp/edgedata.elog")
//
//	// Both: use MultiLogger
//	cfg.CaptureLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
// Each Event carries exactly one payload:
//   - StateChangeEvent: connection state transitions
//   - DataEvent: a data point read, written or received as an event
//   - SyncEvent: a batched sync read or sync write
//   - MessageEvent: a log message from the client or the runtime
//   - ErrorEventData: a failed operation
//
// # File Format
//
// Capture files use CBOR encoding with .elog extension. The edgedata-log CLI
// tool provides viewing, filtering, and export capabilities.
package log
