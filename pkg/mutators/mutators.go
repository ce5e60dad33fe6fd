package mutators

import (
	"math/rand/v2"
	"strings"
	"unicode"
)

// Mutator applies the randomized string transforms. It owns its random
// source; a Mutator must not be shared between goroutines.
type Mutator struct {
	rand    *rand.Rand
	symbols []rune
}

// New creates a Mutator drawing from r and inserting symbols from symbols.
func New(r *rand.Rand, symbols []rune) *Mutator {
	return &Mutator{
		rand:    r,
		symbols: symbols,
	}
}

// NewSource returns a PCG-backed random source. A zero seed draws one from
// the process-level generator, so runs vary; any other seed replays.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomizeCase picks upper or lower case for every rune with equal odds.
func (m *Mutator) RandomizeCase(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if m.rand.IntN(2) == 1 {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// InsertRandomSymbol inserts one symbol at an interior position. Text
// shorter than two runes comes back unchanged.
func (m *Mutator) InsertRandomSymbol(text string) string {
	runes := []rune(text)
	if len(runes) < 2 || len(m.symbols) == 0 {
		return text
	}
	index := 1 + m.rand.IntN(len(runes)-1)
	sym := m.symbols[m.rand.IntN(len(m.symbols))]

	out := make([]rune, 0, len(runes)+1)
	out = append(out, runes[:index]...)
	out = append(out, sym)
	out = append(out, runes[index:]...)
	return string(out)
}
