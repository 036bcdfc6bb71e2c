package main

import (
	"github.com/spf13/cobra"

	"github.com/akarl16/cycling-workouts/internal/library"
	"github.com/akarl16/cycling-workouts/internal/mcpserver"
)

func newMCPCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the workout library over MCP on stdio",
		Long: `Run a Model Context Protocol server on stdin/stdout exposing the workout
library: list/get/validate tools plus catalog and schema resources.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			lib := library.New(cfg.Library.Root, ctx.logger())
			s := mcpserver.New(lib, cfg.MCP.ServerName, Version, ctx.logger())
			return mcpserver.ServeStdio(s)
		},
	}
}
