package wordstorm

import (
	"io"

	"github.com/pterm/pterm"
)

// progressBar drives a pterm progress bar from the accepted-count callback
// of a run. A nil *progressBar is a no-op.
type progressBar struct {
	bar  *pterm.ProgressbarPrinter
	last int64
}

func startProgress(w io.Writer, total int64) *progressBar {
	if total <= 0 {
		return nil
	}
	bar, err := pterm.DefaultProgressbar.
		WithTotal(int(total)).
		WithTitle(MsgProgressTitle).
		WithWriter(w).
		WithRemoveWhenDone(true).
		Start()
	if err != nil {
		return nil
	}
	return &progressBar{bar: bar}
}

// progressEvery spreads about two hundred updates over total lines.
func progressEvery(total int64) int64 {
	return max(total/200, 1)
}

func (p *progressBar) update(accepted int64) {
	if p == nil {
		return
	}
	if delta := accepted - p.last; delta > 0 {
		p.bar.Add(int(delta))
		p.last = accepted
	}
}

func (p *progressBar) stop() {
	if p == nil {
		return
	}
	_, _ = p.bar.Stop()
}
