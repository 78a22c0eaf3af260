package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "minefield",
		Short: "Play minesweeper in a terminal, over HTTP or as MCP tools",
		Long: `minefield runs a single minesweeper game.

The game can be served over HTTP and WebSocket, played in the terminal or
exposed to a model as MCP tools on stdio.`,
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.difficulty, "difficulty", "d", "", "easy, normal or hard (env: MINEFIELD_DIFFICULTY)")
	rootCmd.PersistentFlags().Uint64Var(&opts.seed, "seed", 0, "Seed for mine placement (env: MINEFIELD_SEED)")

	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newPlayCmd(opts))
	rootCmd.AddCommand(newMCPCmd(opts))

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
