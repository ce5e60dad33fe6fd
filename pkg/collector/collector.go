package collector

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/arthur-debert/wordstorm/pkg/errors"
	"github.com/arthur-debert/wordstorm/pkg/logging"
	"github.com/arthur-debert/wordstorm/pkg/sequencer"
	"github.com/arthur-debert/wordstorm/pkg/sink"
)

// DefaultProgressEvery is how many accepted lines pass between progress
// callbacks when Options.ProgressEvery is zero.
const DefaultProgressEvery = 100_000

// Options control a collection run.
type Options struct {
	// Target is the maximum number of accepted lines.
	Target int64
	// MinLength is the minimum candidate length in runes.
	MinLength int
	// Progress, when set, is called with the accepted count every
	// ProgressEvery accepted lines and once at the end.
	Progress      func(accepted int64)
	ProgressEvery int64
}

// Result reports a finished run.
type Result struct {
	Accepted  int64
	Discarded int64
	// Exhausted is true when the sequence ended before Target was reached.
	Exhausted bool
	// Phase is the phase being pulled when the run stopped.
	Phase    sequencer.Phase
	Duration time.Duration
}

// Run pulls candidates from stages until Target lines are accepted or the
// stages run dry, writing each accepted candidate to out. Run never closes
// out. Write failures come back as I/O errors; panics raised while pulling
// or writing and context cancellation come back as unexpected errors.
func Run(ctx context.Context, stages []sequencer.Stage, out sink.LineWriter, opts Options) (res Result, err error) {
	logger := logging.GetLogger("collector")
	start := time.Now()

	if opts.Target <= 0 {
		return res, errors.Newf(errors.ErrInvalidInput, "target count must be positive, got %d", opts.Target)
	}
	if opts.MinLength < 0 {
		return res, errors.Newf(errors.ErrInvalidInput, "minimum length must not be negative, got %d", opts.MinLength)
	}
	every := opts.ProgressEvery
	if every <= 0 {
		every = DefaultProgressEvery
	}

	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf(errors.ErrUnexpected, "generation failed: %v", r).
				WithDetail("accepted", res.Accepted)
		}
		res.Duration = time.Since(start)
		if opts.Progress != nil {
			opts.Progress(res.Accepted)
		}
	}()

	logger.Info().
		Int64("target", opts.Target).
		Int("minLength", opts.MinLength).
		Msg("Collection started")

	stopped := false
	for _, stage := range stages {
		res.Phase = stage.Phase
		logger.Debug().Str("phase", string(stage.Phase)).Int64("accepted", res.Accepted).Msg("Phase started")

		for candidate := range stage.Seq {
			if err := ctx.Err(); err != nil {
				return res, errors.Wrap(err, errors.ErrCancelled, "generation interrupted").
					WithDetail("accepted", res.Accepted)
			}

			if utf8.RuneCountInString(candidate) < opts.MinLength {
				res.Discarded++
				continue
			}

			if err := out.WriteLine(candidate); err != nil {
				if !errors.IsIO(err) {
					err = errors.Wrap(err, errors.ErrFileWrite, "failed to write candidate")
				}
				logger.Error().Err(err).Int64("accepted", res.Accepted).Msg("Write failed")
				return res, err
			}
			res.Accepted++

			if res.Accepted%every == 0 && opts.Progress != nil {
				opts.Progress(res.Accepted)
			}

			if res.Accepted >= opts.Target {
				stopped = true
				break
			}
		}
		if stopped {
			break
		}
	}

	res.Exhausted = !stopped
	logger.Info().
		Int64("accepted", res.Accepted).
		Int64("discarded", res.Discarded).
		Bool("exhausted", res.Exhausted).
		Str("phase", string(res.Phase)).
		Msg("Collection finished")

	return res, nil
}
