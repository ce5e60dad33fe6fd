package variants

import (
	"strconv"

	"github.com/arthur-debert/wordstorm/pkg/mutators"
)

// Rules holds the static sets a run derives candidates from. A Rules value
// is built once and only read afterwards.
type Rules struct {
	Vocabulary      []string
	Symbols         []rune
	NumericSuffixes []string
	SpecialSuffixes []string
	Substitutions   mutators.Substitutions
	WeakBases       []string
	WeakRoots       []string
}

// NumericRange returns the decimal strings from..to inclusive, in order.
// An inverted range yields nothing.
func NumericRange(from, to int) []string {
	if to < from {
		return nil
	}
	out := make([]string, 0, to-from+1)
	for n := from; n <= to; n++ {
		out = append(out, strconv.Itoa(n))
	}
	return out
}
