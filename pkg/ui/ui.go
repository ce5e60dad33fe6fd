// Package ui renders command results as rich terminal output, plain text
// or JSON.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/wordstorm/pkg/errors"
	"github.com/arthur-debert/wordstorm/pkg/ui/json"
	"github.com/arthur-debert/wordstorm/pkg/ui/terminal"
	"github.com/arthur-debert/wordstorm/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders a command result
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		// Buffers and pipes handed in as writers get plain text
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
