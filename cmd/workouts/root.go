package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/akarl16/cycling-workouts/internal/config"
)

// commandContext carries shared state into subcommands: flag storage plus the
// lazily loaded configuration.
type commandContext struct {
	configFlag  *string
	verboseFlag *bool

	cfg *config.Config
}

// ensureConfig loads the config once. An empty --config means defaults plus
// environment overrides.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := config.LoadOrDefault(*c.configFlag)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	return cfg, nil
}

// logger returns a text slog logger. Without --verbose, log output is
// discarded so command output stays clean for piping.
func (c *commandContext) logger() *slog.Logger {
	w := io.Writer(io.Discard)
	if c.verboseFlag != nil && *c.verboseFlag {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func newRootCommand() *cobra.Command {
	var configFlag string
	var verboseFlag bool

	ctx := &commandContext{configFlag: &configFlag, verboseFlag: &verboseFlag}

	rootCmd := &cobra.Command{
		Use:           "workouts",
		Short:         "Cycling workout library tools",
		Long:          "Validate, convert, and serve cycling workout JSON documents.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log progress to stderr")

	rootCmd.AddCommand(newValidateCommand(ctx))
	rootCmd.AddCommand(newRecordsCommand(ctx))
	rootCmd.AddCommand(newConvertCommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newMCPCommand(ctx))

	return rootCmd
}
