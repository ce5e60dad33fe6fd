package wordstorm

import (
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

// renderBanner returns the start-up banner with the usage disclaimer.
func renderBanner() string {
	title, err := pterm.DefaultBigText.
		WithLetters(putils.LettersFromString("WordStorm")).
		Srender()
	if err != nil {
		title = "WordStorm\n"
	}
	disclaimer := pterm.DefaultBox.WithTitle("Disclaimer").Sprint(MsgDisclaimer)
	return title + "\n" + MsgBannerTagline + "\n\n" + disclaimer + "\n\n"
}
