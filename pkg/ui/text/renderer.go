// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/wordstorm/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders a command result as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	s, ok := display.Summarize(result)
	if !ok {
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}

	if _, err := fmt.Fprintln(r.output, s.Headline); err != nil {
		return err
	}
	for _, row := range s.Rows {
		if _, err := fmt.Fprintf(r.output, "  %-24s %s\n", row.Label+":", row.Value); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
