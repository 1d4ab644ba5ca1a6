package vampire

import (
	"github.com/nao1215/fangscan/internal/model"
)

// Detect examines n and returns a finding listing every fang pair of n.
// An empty pair list means n is not a vampire number.
//
// The search walks candidate fangs f descending through the half-length
// range and collects pairs (n/f, f) that pass the exclusion rules, then
// keeps only pairs whose combined digits rearrange exactly into n's
// digits. The complementary factor is obtained by division, so no
// multiplication can overflow; Detect is total over all uint64 values.
func Detect(n uint64) model.Finding {
	finding := model.Finding{Number: n}

	digits := digitCount(n)
	if digits%2 != 0 {
		// Fangs have equal length, so a vampire number needs an even
		// digit count. This also rejects 0 and single-digit numbers.
		return finding
	}

	half := digits / 2
	upper := pow10(half) - 1 // largest half-digit number
	lower := pow10(half - 1) // smallest half-digit number

	// paired holds the members of accepted candidate pairs so the
	// symmetric duplicate {co, f} of an accepted {f, co} is skipped.
	var candidates []model.FangPair
	var paired map[uint64]bool

	for f := upper; f > lower; f-- {
		if n%f != 0 {
			continue
		}
		co := n / f
		if paired[co] {
			continue
		}
		// Trailing-zero exclusion: a pair where both fangs end in 0
		// (such as 210 x 600) is considered degenerate.
		if f%10 == 0 && co%10 == 0 {
			continue
		}
		// Accept each unordered pair exactly once, from its
		// larger-or-equal member's side.
		if co > f {
			continue
		}

		candidates = append(candidates, model.FangPair{Fang1: co, Fang2: f})
		if paired == nil {
			paired = make(map[uint64]bool)
		}
		paired[f] = true
		paired[co] = true
	}

	// Verify candidates: the fangs' combined digit multiset must equal
	// the digit multiset of n. This also eliminates pairs whose
	// complementary factor is shorter than half length.
	target := digitTally(n)
	for _, pair := range candidates {
		if isFangPair(target, pair.Fang1, pair.Fang2) {
			finding.Pairs = append(finding.Pairs, pair)
		}
	}

	return finding
}
