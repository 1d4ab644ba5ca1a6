package model

import (
	"fmt"
	"time"
)

// FangPair is one factorization of a vampire number into two fangs.
// Fang1 is always the smaller-or-equal member, so every unordered pair
// has exactly one representation.
type FangPair struct {
	// Fang1 is the smaller fang.
	Fang1 uint64 `json:"fang1"`

	// Fang2 is the larger fang.
	Fang2 uint64 `json:"fang2"`
}

// Finding is the detection result for a single number.
type Finding struct {
	// Number is the integer the detector examined.
	Number uint64 `json:"number"`

	// Pairs contains every fang pair of Number, in the order the factor
	// search discovered them (descending larger fang, which is ascending
	// smaller fang). Empty means Number is not a vampire number.
	Pairs []FangPair `json:"pairs,omitempty"`
}

// IsVampire reports whether the finding contains at least one fang pair.
func (f Finding) IsVampire() bool {
	return len(f.Pairs) > 0
}

// Lines renders the finding as report lines, one per fang pair, in the
// form "<number> <fang1> <fang2>".
func (f Finding) Lines() []string {
	lines := make([]string, 0, len(f.Pairs))
	for _, p := range f.Pairs {
		lines = append(lines, fmt.Sprintf("%d %d %d", f.Number, p.Fang1, p.Fang2))
	}
	return lines
}

// ScanReport is the main scan result structure.
// It contains the findings of one range scan together with the parameters
// and progress counters needed to interpret them.
//
// Design decision: We use a single flat struct rather than splitting
// parameters, progress, and results into sub-structs. It keeps JSON output
// a single object and mirrors how the report is consumed: one scan, one
// document.
type ScanReport struct {
	// === Scan Parameters ===

	// Low is the inclusive lower bound of the scanned range.
	Low uint64 `json:"low"`

	// High is the inclusive upper bound of the scanned range.
	High uint64 `json:"high"`

	// ChunkSize is the maximum count of numbers per chunk used for this scan.
	ChunkSize int `json:"chunk_size"`

	// Workers is the concurrency limit used for this scan.
	Workers int `json:"workers"`

	// === Timing ===

	// StartedAt is the timestamp when the scan began.
	StartedAt time.Time `json:"started_at"`

	// Elapsed is the wall-clock duration of the scan in nanoseconds.
	Elapsed time.Duration `json:"elapsed_ns"`

	// === Progress ===

	// NumbersScanned counts the integers actually run through the detector.
	// It is lower than the range span when the scan is interrupted.
	NumbersScanned uint64 `json:"numbers_scanned"`

	// ChunkCount is the number of chunks the range was partitioned into.
	ChunkCount int `json:"chunk_count"`

	// FailedChunks counts chunks that did not complete, either because a
	// worker failed or because the scan was cancelled mid-chunk.
	FailedChunks int `json:"failed_chunks,omitempty"`

	// === Results ===

	// Findings contains every vampire number found, in ascending order.
	Findings []Finding `json:"findings,omitempty"`

	// Summary aggregates the findings for quick review.
	Summary *Summary `json:"summary,omitempty"`

	// === Scan State ===

	// Interrupted is true if the scan was cancelled before completing.
	// Findings collected before the interruption are still present.
	Interrupted bool `json:"interrupted"`

	// Error contains any error that occurred during scanning.
	// Only set if the scan failed or partially failed.
	Error error `json:"-"` // Excluded from JSON

	// ErrorMessage is the string representation of Error for serialization.
	ErrorMessage string `json:"error,omitempty"` //nolint:tagliatelle // error is conventional
}

// NewScanReport creates a new report for the given inclusive range.
func NewScanReport(low, high uint64) *ScanReport {
	return &ScanReport{
		Low:       low,
		High:      high,
		StartedAt: time.Now(),
	}
}

// AddFinding appends a finding to the report.
// Callers append in ascending numeric order; the report does not re-sort.
func (r *ScanReport) AddFinding(finding Finding) {
	r.Findings = append(r.Findings, finding)
}

// VampireCount returns the number of vampire numbers found.
func (r *ScanReport) VampireCount() int {
	return len(r.Findings)
}

// PairCount returns the total number of fang pairs across all findings.
func (r *ScanReport) PairCount() int {
	total := 0
	for _, f := range r.Findings {
		total += len(f.Pairs)
	}
	return total
}

// HasFindings reports whether the scan found any vampire numbers.
func (r *ScanReport) HasFindings() bool {
	return len(r.Findings) > 0
}

// Lines renders the report as plain text lines, one per fang pair,
// ascending by number. A report with no findings yields no lines.
func (r *ScanReport) Lines() []string {
	lines := make([]string, 0, r.PairCount())
	for _, f := range r.Findings {
		lines = append(lines, f.Lines()...)
	}
	return lines
}
