package variants

import (
	"iter"
	"strings"

	"github.com/arthur-debert/wordstorm/pkg/mutators"
)

// Generator derives candidate families from seed words. Every method returns
// a lazy sequence; ranging over it again re-runs the random mutators, so a
// second pass does not repeat the first.
type Generator struct {
	rules *Rules
	mut   *mutators.Mutator
}

// New creates a Generator over rules using mut for the random transforms.
func New(rules *Rules, mut *mutators.Mutator) *Generator {
	return &Generator{rules: rules, mut: mut}
}

// Rules returns the static sets the generator reads.
func (g *Generator) Rules() *Rules {
	return g.rules
}

// NumericFormsPerSuffix is the number of candidates Numeric emits per suffix.
const NumericFormsPerSuffix = 7

// Numeric appends every numeric suffix to word. Per suffix it yields the
// concatenation, its lower, upper and leet forms, a case mix, and a symbol
// inserted into the concatenation and into the case mix.
func (g *Generator) Numeric(word string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, suffix := range g.rules.NumericSuffixes {
			base := word + suffix
			mixed := g.mut.RandomizeCase(base)
			forms := [NumericFormsPerSuffix]string{
				base,
				strings.ToLower(base),
				strings.ToUpper(base),
				mutators.Leet(base, g.rules.Substitutions),
				mixed,
				g.mut.InsertRandomSymbol(base),
				g.mut.InsertRandomSymbol(mixed),
			}
			for _, form := range forms {
				if !yield(form) {
					return
				}
			}
		}
	}
}

// Symbol places each symbol after word, before word, and at its midpoint.
func (g *Generator) Symbol(word string) iter.Seq[string] {
	return func(yield func(string) bool) {
		runes := []rune(word)
		head, tail := string(runes[:len(runes)/2]), string(runes[len(runes)/2:])
		for _, sym := range g.rules.Symbols {
			s := string(sym)
			if !yield(word + s) {
				return
			}
			if !yield(s + word) {
				return
			}
			if !yield(head + s + tail) {
				return
			}
		}
	}
}

// SpecialYear joins word with each symbol and special suffix in both orders.
func (g *Generator) SpecialYear(word string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, sym := range g.rules.Symbols {
			s := string(sym)
			for _, suffix := range g.rules.SpecialSuffixes {
				if !yield(word + s + suffix) {
					return
				}
				if !yield(word + suffix + s) {
					return
				}
			}
		}
	}
}

// PairCombos yields first+second for every ordered pair of distinct
// vocabulary entries.
func (g *Generator) PairCombos() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, first := range g.rules.Vocabulary {
			for _, second := range g.rules.Vocabulary {
				if first == second {
					continue
				}
				if !yield(first + second) {
					return
				}
			}
		}
	}
}

// Paired expands every pair combo: the combo itself, a symbol insert, a
// case mix and its leet form, then each numeric suffix with and without an
// inserted symbol.
func (g *Generator) Paired() iter.Seq[string] {
	return func(yield func(string) bool) {
		for combo := range g.PairCombos() {
			if !yield(combo) {
				return
			}
			if !yield(g.mut.InsertRandomSymbol(combo)) {
				return
			}
			if !yield(g.mut.RandomizeCase(combo)) {
				return
			}
			if !yield(mutators.Leet(combo, g.rules.Substitutions)) {
				return
			}
			for _, suffix := range g.rules.NumericSuffixes {
				withSuffix := combo + suffix
				if !yield(withSuffix) {
					return
				}
				if !yield(g.mut.InsertRandomSymbol(withSuffix)) {
					return
				}
			}
		}
	}
}

// CommonWeak grafts the weak roots onto the weak bases.
func (g *Generator) CommonWeak() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, base := range g.rules.WeakBases {
			for _, weak := range g.rules.WeakRoots {
				if !yield(base + weak) {
					return
				}
				if !yield(weak + base) {
					return
				}
				if !yield(g.mut.InsertRandomSymbol(base + weak)) {
					return
				}
			}
		}
	}
}
