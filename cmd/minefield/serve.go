package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vancomm/minefield/internal/app"
	"github.com/vancomm/minefield/internal/config"
)

func newServeCmd(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the game over HTTP and WebSocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := stderrLogger()

			s, err := opts.newSession(cmd, logger)
			if err != nil {
				logger.Error("failed to start game", "error", err)
				return err
			}

			a, err := app.New(logger, s)
			if err != nil {
				logger.Error("failed to create app", "error", err)
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			if err := a.Start(ctx, addr); err != nil {
				logger.Error("server stopped", "error", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", config.Addr(), "Listen address (env: APP_ADDR)")

	return cmd
}
