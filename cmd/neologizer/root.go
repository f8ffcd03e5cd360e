package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cliffjones/neologizer/pkg/environment"
	"github.com/cliffjones/neologizer/pkg/logger"
	"github.com/cliffjones/neologizer/pkg/neologizer"
	"github.com/cliffjones/neologizer/pkg/requestid"
)

// app carries what PersistentPreRunE prepares for the subcommands.
type app struct {
	cfg AppConfig
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "neologizer",
		Short: "Invent new words that look like the words of a text",
		Long: `neologizer learns which letters follow each other in a source text and
walks those transitions at random to build words that are not in the text.

Settings come from NEOLOGIZER_* environment variables (and a .env file), a
YAML profile given with --profile, and command line flags, in that order.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			a.cfg = cfg

			level, _ := cmd.Flags().GetString("log-level")
			if level == "" {
				level = cfg.LogLevel
			}
			if level == "" && cmd.Name() != "serve" {
				// keep one-shot commands quiet unless asked
				level = "warn"
			}

			a.log = logger.New(
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithEnvironment(environment.Parse(cfg.Env), "neologizer"),
				logger.WithLevelName(level),
				logger.WithFormat(logger.Format(cfg.LogFormat)),
				logger.WithContextExtractors(requestid.LoggerExtractor()),
			)
			return nil
		},
	}

	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newRunCmd(a, neologizer.ModeGenerate),
		newRunCmd(a, neologizer.ModeConvert),
		newServeCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "neologizer version %s\n", version)
		},
	}
}
