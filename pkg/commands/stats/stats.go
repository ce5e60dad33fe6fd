package stats

import (
	"github.com/arthur-debert/wordstorm/pkg/config"
	"github.com/arthur-debert/wordstorm/pkg/errors"
	"github.com/arthur-debert/wordstorm/pkg/logging"
	"github.com/arthur-debert/wordstorm/pkg/sequencer"
)

// StatsOptions defines the options for the Stats command.
type StatsOptions struct {
	Config *config.Config
}

// StatsResult describes the candidate space of a configuration.
type StatsResult struct {
	Words           int `json:"words"`
	Symbols         int `json:"symbols"`
	NumericSuffixes int `json:"numeric_suffixes"`
	SpecialSuffixes int `json:"special_suffixes"`
	Substitutions   int `json:"substitutions"`
	WeakBases       int `json:"weak_bases"`
	WeakRoots       int `json:"weak_roots"`

	Estimate sequencer.Estimate `json:"estimate"`
	Target   int64              `json:"target"`
	// ReachPhase is the phase holding the Target-th raw candidate, empty
	// when the sequence is shorter than Target. The length filter is not
	// applied, so a real run may reach Target later or not at all.
	ReachPhase sequencer.Phase `json:"reach_phase"`
}

// Stats counts the candidates a run would produce, without generating any.
func Stats(opts StatsOptions) (*StatsResult, error) {
	log := logging.GetLogger("commands.stats")
	log.Debug().Str("command", "Stats").Msg("Executing command")

	if opts.Config == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no configuration given")
	}

	rules, err := opts.Config.Rules()
	if err != nil {
		return nil, err
	}

	est := sequencer.Count(rules)
	result := &StatsResult{
		Words:           len(rules.Vocabulary),
		Symbols:         len(rules.Symbols),
		NumericSuffixes: len(rules.NumericSuffixes),
		SpecialSuffixes: len(rules.SpecialSuffixes),
		Substitutions:   len(rules.Substitutions),
		WeakBases:       len(rules.WeakBases),
		WeakRoots:       len(rules.WeakRoots),
		Estimate:        est,
		Target:          opts.Config.Target,
		ReachPhase:      reachPhase(est, opts.Config.Target),
	}

	log.Info().Str("command", "Stats").Uint64("total", est.Total()).Msg("Command finished")
	return result, nil
}

func reachPhase(est sequencer.Estimate, target int64) sequencer.Phase {
	if target <= 0 {
		return ""
	}
	var seen uint64
	for _, phase := range sequencer.Phases {
		seen += est.ByPhase(phase)
		if seen >= uint64(target) {
			return phase
		}
	}
	return ""
}
