// Package cli wires the squaremat command tree.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/squaremat/internal/config"
	"github.com/katalvlaran/squaremat/internal/logger"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by subcommands once PersistentPreRunE has run.
type app struct {
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	var debug bool
	a := &app{log: logger.Discard()}

	cmd := &cobra.Command{
		Use:          "squaremat",
		Short:        "squaremat: dense square-matrix playground",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			l, err := logger.New(logger.FromEnv(cfg, debug), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.log = l
			a.log.Debug("cli.initialized", "command", cmd.Name(), "level", cfg.LogLevel, "format", cfg.LogFormat)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")
	cmd.AddCommand(
		demoCmd(a),
		detCmd(a),
		powCmd(a),
		versionCmd(),
	)
	return cmd
}
