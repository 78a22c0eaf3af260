package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/mines"
	"github.com/vancomm/minefield/internal/session"
)

type options struct {
	difficulty string
	seed       uint64
}

// gameConfig layers flags that were set over the environment.
func (o *options) gameConfig(cmd *cobra.Command) (*config.Game, error) {
	cfg, err := config.NewGame()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("difficulty") {
		if cfg.Difficulty, err = mines.ParseDifficulty(o.difficulty); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("seed") {
		seed := o.seed
		cfg.Seed = &seed
	}
	return cfg, nil
}

func (o *options) newSession(cmd *cobra.Command, logger *slog.Logger) (*session.Session, error) {
	cfg, err := o.gameConfig(cmd)
	if err != nil {
		return nil, err
	}
	return session.New(cfg.Difficulty, cfg.Rand(), logger)
}

func newLogger(w io.Writer) *slog.Logger {
	var logger *slog.Logger
	if config.Development() {
		logger = slog.New(
			tint.NewHandler(w, &tint.Options{Level: slog.LevelDebug}),
		)
	} else {
		logger = slog.New(slog.NewJSONHandler(w, nil))
	}
	mines.Log = logger
	return logger
}

func stderrLogger() *slog.Logger {
	return newLogger(os.Stderr)
}
