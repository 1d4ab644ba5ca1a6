package config

// RangeConfig holds a single named scan range from the configuration file.
// This lets users keep frequently scanned ranges under short names instead
// of retyping bounds.
type RangeConfig struct {
	// Low is the inclusive lower bound of the range.
	Low uint64 `yaml:"low"`

	// High is the inclusive upper bound of the range.
	High uint64 `yaml:"high"`

	// ChunkSize overrides the chunk size for this range.
	// If zero, the file-level default or the built-in default is used.
	ChunkSize int `yaml:"chunkSize,omitempty"`

	// Workers overrides the worker count for this range.
	// If zero, the file-level default or the built-in default is used.
	Workers int `yaml:"workers,omitempty"`
}

// Defaults contains default scan settings applied to all named ranges
// unless overridden in the range-specific configuration.
type Defaults struct {
	// ChunkSize is the default chunk size for ranges that don't set one.
	ChunkSize int `yaml:"chunkSize,omitempty"`

	// Workers is the default worker count for ranges that don't set one.
	Workers int `yaml:"workers,omitempty"`
}

// File represents the structure of the .fangscan configuration file.
type File struct {
	// Ranges maps range names to their definitions.
	// Keys are the names accepted by the --range flag (e.g., "four-digit").
	Ranges map[string]RangeConfig `yaml:"ranges,omitempty"`

	// Defaults contains default scan settings applied to all ranges
	// unless overridden in the range-specific configuration.
	Defaults Defaults `yaml:"defaults,omitempty"`
}

// GetRangeConfig returns the configuration for a named range.
// It merges the range-specific configuration with defaults and reports
// whether the name exists; absence is an error at the CLI layer, so the
// caller needs to distinguish it from a zero-valued range.
func (cf *File) GetRangeConfig(name string) (RangeConfig, bool) {
	rc, ok := cf.Ranges[name]
	if !ok {
		return RangeConfig{}, false
	}

	// Fill unset fields from defaults
	if rc.ChunkSize == 0 {
		rc.ChunkSize = cf.Defaults.ChunkSize
	}
	if rc.Workers == 0 {
		rc.Workers = cf.Defaults.Workers
	}

	return rc, true
}
