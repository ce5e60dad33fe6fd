package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/wordstorm/cmd/wordstorm"
	"github.com/arthur-debert/wordstorm/pkg/ui/styles"
)

func main() {
	rootCmd := wordstorm.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(wordstorm.FormatError(err)))
		os.Exit(wordstorm.ExitCode(err))
	}
}
