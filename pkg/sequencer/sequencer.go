package sequencer

import (
	"iter"

	"github.com/arthur-debert/wordstorm/pkg/variants"
)

// Phase names the three passes of a run, in emission order.
type Phase string

const (
	PhaseSingle Phase = "single"
	PhasePaired Phase = "paired"
	PhaseWeak   Phase = "weak"
)

// Phases lists the passes in the order Sequence emits them.
var Phases = []Phase{PhaseSingle, PhasePaired, PhaseWeak}

// Stage is one named pass of the sequence.
type Stage struct {
	Phase Phase
	Seq   iter.Seq[string]
}

// Stages returns the passes of a run: every seed word's numeric, symbol and
// special-year variants, then the paired words, then the weak passwords.
func Stages(g *variants.Generator) []Stage {
	return []Stage{
		{Phase: PhaseSingle, Seq: singleWords(g)},
		{Phase: PhasePaired, Seq: g.Paired()},
		{Phase: PhaseWeak, Seq: g.CommonWeak()},
	}
}

// Sequence flattens Stages into one lazy sequence. A consumer that stops
// ranging stops whichever generator is currently producing.
func Sequence(g *variants.Generator) iter.Seq[string] {
	return Concat(Stages(g)...)
}

// Concat chains the stage sequences in order.
func Concat(stages ...Stage) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, stage := range stages {
			for candidate := range stage.Seq {
				if !yield(candidate) {
					return
				}
			}
		}
	}
}

func singleWords(g *variants.Generator) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, word := range g.Rules().Vocabulary {
			for _, seq := range []iter.Seq[string]{g.Numeric(word), g.Symbol(word), g.SpecialYear(word)} {
				for candidate := range seq {
					if !yield(candidate) {
						return
					}
				}
			}
		}
	}
}
