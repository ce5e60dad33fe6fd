package wordstorm

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Generate targeted password candidate wordlists"
	MsgStatsShort      = "Count the candidates a configuration produces"
	MsgGenConfigShort  = "Print or write a configuration file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."

	// Status messages
	MsgConfigWritten = "Wrote configuration to %s\n"
	MsgConfigSkipped = "%s already exists, use --force to overwrite\n"
	MsgVersionFormat = "wordstorm version %s\n  commit: %s\n  built:  %s\n"
	MsgProgressTitle = "Generating"
	MsgBannerTagline = "⚡ WordStorm - Custom Password List Generator ⚡"

	// Error prefixes
	MsgErrPrefix          = "Error"
	MsgErrIOPrefix        = "I/O error"
	MsgErrCancelledPrefix = "Interrupted"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file, TOML or YAML (default: wordstorm.toml in the XDG config dir)"
	MsgFlagOutput    = "Output file, or - for stdout"
	MsgFlagCount     = "Number of passwords to generate"
	MsgFlagMinLength = "Skip candidates shorter than this many characters"
	MsgFlagSeed      = "Seed for the random mutations, 0 picks one"
	MsgFlagFormat    = "Summary format: auto, term, text or json"
	MsgFlagProgress  = "Show a progress bar when stderr is a terminal"
	MsgFlagBanner    = "Show the banner when stderr is a terminal"
	MsgFlagWrite     = "Write config to a file instead of stdout"
	MsgFlagForce     = "Overwrite an existing config file"
	MsgFlagEffective = "Render the effective configuration instead of the commented defaults"
	MsgFlagAs        = "Format for --effective: toml or yaml"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/stats-long.txt
	msgStatsLongRaw string
	MsgStatsLong    = strings.TrimSpace(msgStatsLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/genconfig-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimRight(msgGenConfigExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/disclaimer.txt
	msgDisclaimerRaw string
	MsgDisclaimer    = strings.TrimSpace(msgDisclaimerRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
