package sequencer

import (
	"github.com/arthur-debert/wordstorm/pkg/variants"
)

// Estimate is the exact number of candidates a run over a rule set yields
// before length filtering.
type Estimate struct {
	Single uint64 `json:"single"`
	Paired uint64 `json:"paired"`
	Weak   uint64 `json:"weak"`
}

// Total sums the phases.
func (e Estimate) Total() uint64 {
	return e.Single + e.Paired + e.Weak
}

// ByPhase returns the count for one phase.
func (e Estimate) ByPhase(p Phase) uint64 {
	switch p {
	case PhaseSingle:
		return e.Single
	case PhasePaired:
		return e.Paired
	case PhaseWeak:
		return e.Weak
	}
	return 0
}

// Count computes the Estimate for rules without generating anything.
func Count(rules *variants.Rules) Estimate {
	words := uint64(len(rules.Vocabulary))
	symbols := uint64(len(rules.Symbols))
	numeric := uint64(len(rules.NumericSuffixes))
	special := uint64(len(rules.SpecialSuffixes))

	perWord := numeric*variants.NumericFormsPerSuffix + symbols*3 + symbols*special*2

	return Estimate{
		Single: words * perWord,
		Paired: pairCount(rules.Vocabulary) * (4 + 2*numeric),
		Weak:   uint64(len(rules.WeakBases)) * uint64(len(rules.WeakRoots)) * 3,
	}
}

// pairCount counts ordered pairs of unequal entries; duplicate entries in
// the vocabulary are equal to each other and skipped like self pairs.
func pairCount(vocabulary []string) uint64 {
	seen := make(map[string]uint64, len(vocabulary))
	for _, w := range vocabulary {
		seen[w]++
	}
	n := uint64(len(vocabulary))
	total := n * n
	for _, c := range seen {
		total -= c * c
	}
	return total
}
