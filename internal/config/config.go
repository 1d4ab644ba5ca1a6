package config

import (
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These values are chosen to give good throughput on typical ranges
// without tuning; all of them can be overridden via CLI flags or the
// configuration file.
const (
	// DefaultChunkSize of 100 numbers per chunk keeps per-chunk scheduling
	// overhead negligible while still producing enough chunks for even load
	// balancing across workers. Fang detection cost grows with digit count,
	// so small chunks also keep slow regions from serializing the scan.
	DefaultChunkSize = 100

	// AppName is the application name used for XDG directory paths.
	AppName = "fangscan"
)

// Config holds all configuration options for fangscan.
// This struct is designed to be populated from CLI flags and passed through
// the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., ScanConfig, ReportConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
// If the configuration grows significantly, consider refactoring into sub-structs.
type Config struct {
	// Low is the inclusive lower bound of the range to scan.
	Low uint64

	// High is the inclusive upper bound of the range to scan.
	// The entire uint64 domain is accepted; detection works by division
	// rather than multiplication, so values near the top of the domain
	// cannot overflow.
	High uint64

	// RangeName is the name of a range defined in the configuration file.
	// When set, Low, High, ChunkSize, and Workers are resolved from the
	// named range instead of positional arguments.
	RangeName string

	// ChunkSize is the maximum count of numbers per work chunk.
	// Smaller chunks balance load better; larger chunks reduce scheduling
	// overhead. A value of 0 is invalid and rejected by Validate.
	ChunkSize int

	// Workers is the number of chunks scanned concurrently.
	// Detection is CPU bound, so values above the core count gain nothing.
	Workers int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .fangscan in the current directory,
	// the XDG config directory, and then the user's home directory.
	ConfigFilePath string

	// Ranges holds named range definitions loaded from the config file.
	// This is populated by LoadConfigFile and consulted when RangeName is set.
	Ranges *File

	// JSONReport enables JSON report output instead of plain result lines.
	// When true, outputs the full scan report as indented JSON.
	// Mutually exclusive with MarkdownReport and SummaryReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of plain result lines.
	// When true, outputs GitHub Flavored Markdown with tables, alerts, and pie charts.
	// Mutually exclusive with JSONReport and SummaryReport.
	MarkdownReport bool

	// SummaryReport enables the human-readable summary report instead of
	// plain result lines. Mutually exclusive with JSONReport and MarkdownReport.
	SummaryReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use cases.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero (chunk size, workers).
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		ChunkSize: DefaultChunkSize,
		Workers:   DefaultWorkers(),
	}
}

// DefaultWorkers returns the default worker count.
// Detection is CPU bound, so the core count is the useful ceiling. This is
// a function rather than a constant because the value depends on the host.
func DefaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// XDGConfigDir returns the XDG config directory for fangscan.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/fangscan
// On macOS: ~/Library/Application Support/fangscan
// On Windows: %APPDATA%\fangscan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any scanning begins.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// Low must not exceed High; an empty range cannot be expressed and an
	// inverted one is always a user mistake
	if c.Low > c.High {
		return ErrInvalidRange
	}

	// ChunkSize must be positive; zero would make no chunks
	if c.ChunkSize <= 0 {
		return ErrInvalidChunkSize
	}

	// Workers must be positive; zero would mean no scanning
	if c.Workers <= 0 {
		return ErrInvalidWorkers
	}

	// Report formats are mutually exclusive
	formats := 0
	if c.JSONReport {
		formats++
	}
	if c.MarkdownReport {
		formats++
	}
	if c.SummaryReport {
		formats++
	}
	if formats > 1 {
		return ErrConflictingReportFormats
	}

	return nil
}
