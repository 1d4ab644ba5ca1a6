package model

import "strconv"

// Summary holds aggregate statistics over a report's findings.
//
// Design decision: We compute the aggregates once into a separate struct
// rather than in each report writer because every output format (text,
// Markdown, JSON) needs the same numbers and must not disagree.
type Summary struct {
	// NumbersScanned counts the integers run through the detector.
	NumbersScanned uint64 `json:"numbers_scanned"`

	// VampireCount is the number of vampire numbers found.
	VampireCount int `json:"vampire_count"`

	// PairCount is the total number of fang pairs across all findings.
	PairCount int `json:"pair_count"`

	// MultiFangCount is the number of vampire numbers with more than one
	// fang pair.
	MultiFangCount int `json:"multi_fang_count"`

	// Smallest is the smallest vampire number found, zero when none.
	Smallest uint64 `json:"smallest,omitempty"`

	// Largest is the largest vampire number found, zero when none.
	Largest uint64 `json:"largest,omitempty"`

	// ByDigits maps decimal digit count to the number of vampire numbers
	// of that length.
	ByDigits map[int]int `json:"by_digits,omitempty"`
}

// NewSummary creates a Summary from a report's findings.
func NewSummary(report *ScanReport) *Summary {
	s := &Summary{
		NumbersScanned: report.NumbersScanned,
	}

	for _, f := range report.Findings {
		s.VampireCount++
		s.PairCount += len(f.Pairs)
		if len(f.Pairs) > 1 {
			s.MultiFangCount++
		}

		if s.Smallest == 0 || f.Number < s.Smallest {
			s.Smallest = f.Number
		}
		if f.Number > s.Largest {
			s.Largest = f.Number
		}

		if s.ByDigits == nil {
			s.ByDigits = make(map[int]int)
		}
		s.ByDigits[len(strconv.FormatUint(f.Number, 10))]++
	}

	return s
}
