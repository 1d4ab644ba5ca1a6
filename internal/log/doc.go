// Package log provides scan-oriented logging functionality built on top of
// the standard slog package.
//
// This package extends slog to provide:
//   - Digit grouping for large numeric attributes (1234567 -> 1,234,567)
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// # Readability
//
// Scan logging is dominated by large numbers: range bounds, chunk counts,
// numbers scanned. The NumberHandler reformats any integer attribute of
// 10,000 or more with thousands separators so that a bound like
// 100000000000 can be read at a glance. Small integers such as worker
// counts and chunk indexes are left untouched.
//
// # Usage
//
//	// Create a scan logger
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	// Use as a standard slog.Logger
//	logger.Info("starting scan",
//	    "low", uint64(100000000), // logged as low=100,000,000
//	    "workers", 8,             // logged as workers=8
//	)
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log
