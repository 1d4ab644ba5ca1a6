package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and the CLI layer and
// provide specific information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances at each call site. This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages. Using errors.New() here rather than fmt.Errorf()
// because we don't need to include dynamic values in these messages.
var (
	// ErrNoRange is returned when no scan range is specified.
	// This error occurs when neither positional <low> <high> arguments nor
	// the --range flag provide a range. Validate cannot detect the missing
	// range itself because 0 is a legal bound, so the CLI layer returns this
	// before validation.
	ErrNoRange = errors.New("no range specified: provide <low> <high> or use --range")

	// ErrConflictingRangeSources is returned when both positional arguments
	// and --range are specified. Only one range source can be used at a time.
	ErrConflictingRangeSources = errors.New("conflicting range sources: positional <low> <high> and --range cannot be used together")

	// ErrRangeNotFound is returned when --range names a range that does not
	// exist in the configuration file. Callers wrap this with the name that
	// was requested.
	ErrRangeNotFound = errors.New("named range not found in configuration file")

	// ErrInvalidRange is returned when the lower bound exceeds the upper bound.
	// Both bounds are inclusive, so equal bounds describe a single number
	// and are valid.
	ErrInvalidRange = errors.New("invalid range: low must not exceed high")

	// ErrInvalidChunkSize is returned when the chunk size is not positive.
	// A chunk size of zero would partition the range into no chunks,
	// effectively stopping the scan.
	ErrInvalidChunkSize = errors.New("invalid chunk size: must be positive")

	// ErrInvalidWorkers is returned when the worker count is not positive.
	// A worker count of zero would mean no concurrent scans.
	ErrInvalidWorkers = errors.New("invalid workers: must be positive")

	// ErrConflictingReportFormats is returned when more than one of --json,
	// --markdown, and --summary is specified. Only one output format can be
	// used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json, --markdown, and --summary cannot be used together")
)
