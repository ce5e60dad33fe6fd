// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/wordstorm/pkg/ui/display"
	"github.com/arthur-debert/wordstorm/pkg/ui/styles"
)

// Renderer provides rich terminal output using the semantic styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders a command result with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	s, ok := display.Summarize(result)
	if !ok {
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}

	headline := styles.GetStyle(string(s.Kind)).Render(s.Headline)
	if _, err := fmt.Fprintln(r.output, headline); err != nil {
		return err
	}

	label := styles.GetStyle("Label")
	for _, row := range s.Rows {
		line := "  " + label.Render(row.Label) + styles.GetStyle(string(row.Kind)).Render(row.Value)
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, styles.GetStyle("Error").Render(fmt.Sprintf("Error: %v", err)))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.GetStyle("Muted").Render(msg))
	return err
}
