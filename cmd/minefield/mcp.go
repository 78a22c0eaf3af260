package main

import (
	"github.com/spf13/cobra"

	"github.com/vancomm/minefield/internal/mcptools"
)

func newMCPCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Expose the game as MCP tools over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			// stdout carries the protocol.
			logger := stderrLogger()

			s, err := opts.newSession(cmd, logger)
			if err != nil {
				logger.Error("failed to start game", "error", err)
				return err
			}

			return mcptools.New(s, logger, version).Serve()
		},
	}
}
