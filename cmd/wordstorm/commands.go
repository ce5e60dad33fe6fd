package wordstorm

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/wordstorm/internal/version"
	"github.com/arthur-debert/wordstorm/pkg/cobrax/topics"
	"github.com/arthur-debert/wordstorm/pkg/commands/generate"
	"github.com/arthur-debert/wordstorm/pkg/commands/genconfig"
	"github.com/arthur-debert/wordstorm/pkg/commands/stats"
	"github.com/arthur-debert/wordstorm/pkg/config"
	"github.com/arthur-debert/wordstorm/pkg/logging"
	"github.com/arthur-debert/wordstorm/pkg/paths"
	"github.com/arthur-debert/wordstorm/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// globalFlags are shared by generation and by the subcommands that read
// the effective configuration.
type globalFlags struct {
	verbosity  int
	configFile string
	output     string
	count      int64
	minLength  int
	seed       uint64
	format     string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		flags    globalFlags
		progress bool
		banner   bool
	)

	rootCmd := &cobra.Command{
		Use:     "wordstorm",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(flags.verbosity)
			logging.LogCommand(cmd.CommandPath(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, &flags, progress, banner)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVarP(&flags.configFile, "config", "c", "", MsgFlagConfig)
	pf.StringVarP(&flags.output, "output", "o", "", MsgFlagOutput)
	pf.Int64VarP(&flags.count, "count", "n", 0, MsgFlagCount)
	pf.IntVar(&flags.minLength, "min-length", 0, MsgFlagMinLength)
	pf.Uint64Var(&flags.seed, "seed", 0, MsgFlagSeed)
	pf.StringVar(&flags.format, "format", "auto", MsgFlagFormat)

	rootCmd.Flags().BoolVar(&progress, "progress", true, MsgFlagProgress)
	rootCmd.Flags().BoolVar(&banner, "banner", true, MsgFlagBanner)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newStatsCmd(&flags))
	rootCmd.AddCommand(newGenConfigCmd(&flags))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(newTopicsCmd())

	// Initialize topic-based help system from the embedded topics
	opts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if err := topics.InitializeWithOptions(rootCmd, helpTopics(), opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// loadConfig layers the explicitly set flags over the other config sources
func loadConfig(cmd *cobra.Command, flags *globalFlags) (*config.Config, error) {
	overrides := make(map[string]interface{})
	set := func(flag, key string, value interface{}) {
		if cmd.Flags().Changed(flag) {
			overrides[key] = value
		}
	}
	set("output", "output", flags.output)
	set("count", "target", flags.count)
	set("min-length", "min_length", flags.minLength)
	set("seed", "seed", flags.seed)

	return config.Load(config.LoadOptions{
		File:      flags.configFile,
		Paths:     paths.New(),
		Overrides: overrides,
	})
}

func runGenerate(cmd *cobra.Command, flags *globalFlags, progress, banner bool) error {
	format, err := ui.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	interactive := isTerminal(stderr) && format != ui.FormatJSON
	if banner && interactive {
		fmt.Fprint(stderr, renderBanner())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := generate.GenerateOptions{
		Config: cfg,
		Stdout: cmd.OutOrStdout(),
	}

	var bar *progressBar
	if progress && interactive {
		total := cfg.Target
		if st, err := stats.Stats(stats.StatsOptions{Config: cfg}); err == nil {
			total = min(total, int64(st.Estimate.Total()))
		}
		bar = startProgress(stderr, total)
		if bar != nil {
			opts.Progress = bar.update
			opts.ProgressEvery = progressEvery(total)
		}
	}

	result, err := generate.Generate(ctx, opts)
	bar.stop()
	if err != nil {
		if result != nil {
			log.Warn().
				Int64("accepted", result.Accepted).
				Int64("written", result.Written).
				Str("output", result.Output).
				Msg("Generation stopped early")
		}
		return err
	}

	// Lines own stdout when streaming; the summary moves to stderr.
	summaryOut := cmd.OutOrStdout()
	if paths.IsStdout(result.Output) {
		summaryOut = stderr
	}
	renderer, err := ui.NewRenderer(format, summaryOut)
	if err != nil {
		return err
	}
	return renderer.RenderResult(result)
}

func newStatsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Short:   MsgStatsShort,
		Long:    MsgStatsLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ui.ParseFormat(flags.format)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			result, err := stats.Stats(stats.StatsOptions{Config: cfg})
			if err != nil {
				return err
			}

			renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderResult(result)
		},
	}
}

func newGenConfigCmd(flags *globalFlags) *cobra.Command {
	var (
		write     bool
		force     bool
		effective bool
		as        string
	)

	cmd := &cobra.Command{
		Use:     "gen-config [path]",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := genconfig.GenConfigOptions{
				Format: as,
				Write:  write,
				Force:  force,
				Paths:  paths.New(),
			}
			if len(args) == 1 {
				opts.Path = args[0]
				opts.Write = true
			}

			if effective {
				cfg, err := loadConfig(cmd, flags)
				if err != nil {
					return err
				}
				opts.Config = cfg
			}

			result, err := genconfig.GenConfig(opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !opts.Write {
				fmt.Fprint(out, result.ConfigContent)
				return nil
			}
			for _, p := range result.FilesWritten {
				fmt.Fprintf(out, MsgConfigWritten, p)
			}
			for _, p := range result.FilesSkipped {
				fmt.Fprintf(out, MsgConfigSkipped, p)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	cmd.Flags().BoolVar(&effective, "effective", false, MsgFlagEffective)
	cmd.Flags().StringVar(&as, "as", config.FormatTOML, MsgFlagAs)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Hidden:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "WORDSTORM",
				Section: "1",
				Source:  "wordstorm " + version.Version,
				Manual:  "wordstorm manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Name() == "help" {
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, []string{"topics"})
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, []string{"topics"})
					return nil
				}
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
