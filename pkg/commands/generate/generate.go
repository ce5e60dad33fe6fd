package generate

import (
	"context"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/arthur-debert/wordstorm/pkg/collector"
	"github.com/arthur-debert/wordstorm/pkg/config"
	"github.com/arthur-debert/wordstorm/pkg/errors"
	"github.com/arthur-debert/wordstorm/pkg/logging"
	"github.com/arthur-debert/wordstorm/pkg/mutators"
	"github.com/arthur-debert/wordstorm/pkg/paths"
	"github.com/arthur-debert/wordstorm/pkg/sequencer"
	"github.com/arthur-debert/wordstorm/pkg/sink"
	"github.com/arthur-debert/wordstorm/pkg/variants"
)

// GenerateOptions holds options for a generation run
type GenerateOptions struct {
	Config *config.Config
	// Stdout receives the lines when the output is "-". Defaults to os.Stdout.
	Stdout io.Writer
	// Progress receives the accepted count periodically.
	Progress      func(accepted int64)
	ProgressEvery int64
}

// GenerateResult describes a finished run
type GenerateResult struct {
	Output    string          `json:"output"`
	Seed      uint64          `json:"seed"`
	Accepted  int64           `json:"accepted"`
	Discarded int64           `json:"discarded"`
	Exhausted bool            `json:"exhausted"`
	Phase     sequencer.Phase `json:"phase"`
	// Written counts lines known to be in the output; it trails Accepted
	// only when a write failed.
	Written   int64           `json:"written"`
	Bytes     int64           `json:"bytes"`
	Duration  time.Duration   `json:"duration"`
}

// Generate writes candidates to the configured output until the target
// count is reached or the sequence is exhausted. The output is closed on
// every return path; lines written before a failure stay in place.
func Generate(ctx context.Context, opts GenerateOptions) (result *GenerateResult, err error) {
	logger := logging.GetLogger("commands.generate")
	done := logging.LogOperationStart(logger, "generate")
	defer done()

	cfg := opts.Config
	if cfg == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no configuration given")
	}

	rules, err := cfg.Rules()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64() | 1
	}

	output, err := paths.ResolveOutput(cfg.Output)
	if err != nil {
		return nil, err
	}

	out, err := openSink(output, opts.Stdout)
	if err != nil {
		return nil, err
	}

	result = &GenerateResult{Output: output, Seed: seed}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		result.Written = out.Lines()
		result.Bytes = out.Bytes()
	}()

	gen := variants.New(rules, mutators.New(mutators.NewSource(seed), rules.Symbols))

	logger.Info().
		Str("output", output).
		Uint64("seed", seed).
		Int("words", len(rules.Vocabulary)).
		Uint64("candidates", sequencer.Count(rules).Total()).
		Msg("Starting generation")

	res, err := collector.Run(ctx, sequencer.Stages(gen), out, collector.Options{
		Target:        cfg.Target,
		MinLength:     cfg.MinLength,
		Progress:      opts.Progress,
		ProgressEvery: opts.ProgressEvery,
	})

	result.Accepted = res.Accepted
	result.Discarded = res.Discarded
	result.Exhausted = res.Exhausted
	result.Phase = res.Phase
	result.Duration = res.Duration

	return result, err
}

func openSink(output string, stdout io.Writer) (*sink.Sink, error) {
	if paths.IsStdout(output) {
		if stdout == nil {
			stdout = os.Stdout
		}
		return sink.NewStream(stdout), nil
	}
	return sink.OpenFile(output)
}
