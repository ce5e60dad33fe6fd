package wordstorm

import (
	"fmt"

	"github.com/arthur-debert/wordstorm/pkg/errors"
)

// Exit codes returned by the wordstorm binary.
const (
	ExitFailure     = 1
	ExitInterrupted = 130
)

// FormatError renders err for the terminal, prefixed by its kind.
func FormatError(err error) string {
	prefix := MsgErrPrefix
	switch {
	case errors.IsIO(err):
		prefix = MsgErrIOPrefix
	case errors.IsErrorCode(err, errors.ErrCancelled):
		prefix = MsgErrCancelledPrefix
	}
	return fmt.Sprintf("%s: %v", prefix, err)
}

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	if errors.IsErrorCode(err, errors.ErrCancelled) {
		return ExitInterrupted
	}
	return ExitFailure
}
