// Package display turns command results into a headline and labeled rows
// shared by the text and terminal renderers.
package display

import (
	"fmt"
	"time"

	"github.com/arthur-debert/wordstorm/pkg/commands/generate"
	"github.com/arthur-debert/wordstorm/pkg/commands/stats"
	"github.com/arthur-debert/wordstorm/pkg/paths"
	"github.com/arthur-debert/wordstorm/pkg/sequencer"
	"github.com/dustin/go-humanize"
)

// Kind tags a headline or row with its semantic style.
type Kind string

const (
	KindPlain   Kind = "Value"
	KindSuccess Kind = "Success"
	KindWarning Kind = "Warning"
	KindPath    Kind = "Path"
	KindMuted   Kind = "Muted"
)

// Row is one labeled value.
type Row struct {
	Label string
	Value string
	Kind  Kind
}

// Summary is what a renderer prints for a result.
type Summary struct {
	Headline string
	Kind     Kind
	Rows     []Row
}

// GenerateSummary describes a generation run.
func GenerateSummary(r *generate.GenerateResult) Summary {
	output := r.Output
	if paths.IsStdout(output) {
		output = "stdout"
	}

	s := Summary{
		Headline: fmt.Sprintf("Successfully generated %s passwords → %s", humanize.Comma(r.Written), output),
		Kind:     KindSuccess,
	}
	if r.Written < r.Accepted {
		s.Headline = fmt.Sprintf("Generated %s of %s passwords → %s", humanize.Comma(r.Written), humanize.Comma(r.Accepted), output)
		s.Kind = KindWarning
	}

	s.Rows = []Row{
		{Label: "Output", Value: output, Kind: KindPath},
		{Label: "Size", Value: humanize.Bytes(uint64(r.Bytes)), Kind: KindPlain},
		{Label: "Seed", Value: fmt.Sprintf("%d", r.Seed), Kind: KindPlain},
		{Label: "Discarded (too short)", Value: humanize.Comma(r.Discarded), Kind: KindMuted},
		{Label: "Last phase", Value: string(r.Phase), Kind: KindPlain},
		{Label: "Elapsed", Value: r.Duration.Round(time.Millisecond).String(), Kind: KindMuted},
	}
	if r.Exhausted {
		s.Rows = append(s.Rows, Row{
			Label: "Note",
			Value: "candidate sequence ran out before the target count",
			Kind:  KindWarning,
		})
	}
	return s
}

// StatsSummary describes the candidate space of a configuration.
func StatsSummary(r *stats.StatsResult) Summary {
	reach := "never, the sequence runs out first"
	kind := KindWarning
	if r.ReachPhase != "" {
		reach = string(r.ReachPhase) + " phase"
		kind = KindPlain
	}

	return Summary{
		Headline: fmt.Sprintf("%s candidates before length filtering", humanize.Comma(int64(r.Estimate.Total()))),
		Kind:     KindSuccess,
		Rows: []Row{
			{Label: "Seed words", Value: humanize.Comma(int64(r.Words)), Kind: KindPlain},
			{Label: "Symbols", Value: humanize.Comma(int64(r.Symbols)), Kind: KindPlain},
			{Label: "Numeric suffixes", Value: humanize.Comma(int64(r.NumericSuffixes)), Kind: KindPlain},
			{Label: "Special suffixes", Value: humanize.Comma(int64(r.SpecialSuffixes)), Kind: KindPlain},
			{Label: "Leet substitutions", Value: humanize.Comma(int64(r.Substitutions)), Kind: KindPlain},
			{Label: "Weak bases x roots", Value: fmt.Sprintf("%d x %d", r.WeakBases, r.WeakRoots), Kind: KindPlain},
			{Label: "Single-word candidates", Value: phaseCount(r.Estimate, sequencer.PhaseSingle), Kind: KindPlain},
			{Label: "Paired candidates", Value: phaseCount(r.Estimate, sequencer.PhasePaired), Kind: KindPlain},
			{Label: "Weak candidates", Value: phaseCount(r.Estimate, sequencer.PhaseWeak), Kind: KindPlain},
			{Label: "Target", Value: humanize.Comma(r.Target), Kind: KindPlain},
			{Label: "Target reached in", Value: reach, Kind: kind},
		},
	}
}

func phaseCount(e sequencer.Estimate, p sequencer.Phase) string {
	return humanize.Comma(int64(e.ByPhase(p)))
}

// Summarize picks the summary for a known result type.
func Summarize(result interface{}) (Summary, bool) {
	switch v := result.(type) {
	case *generate.GenerateResult:
		return GenerateSummary(v), true
	case *stats.StatsResult:
		return StatsSummary(v), true
	case Summary:
		return v, true
	}
	return Summary{}, false
}
