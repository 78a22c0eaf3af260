package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/spf13/cobra"

	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/console"
)

func newFileLogger(cfg *config.LogFile, level logrus.Level) (*logrus.Logger, error) {
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to open log file %s: %w", cfg.Path, err)
	}

	log := logrus.New()
	log.SetLevel(level)
	log.SetOutput(io.Discard)
	log.AddHook(hook)
	return log, nil
}

func newPlayCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Long: `Play in the terminal, reading one command per line.

The terminal is used for the board, so logs go to a rotating file
(env: MINEFIELD_LOG_FILE, MINEFIELD_LOG_MAX_SIZE_MB).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logCfg, err := config.NewLogFile()
			if err != nil {
				return err
			}

			level := logrus.InfoLevel
			if config.Development() {
				level = logrus.DebugLevel
			}
			log, err := newFileLogger(logCfg, level)
			if err != nil {
				return err
			}

			// The engine and session log through slog; route them into the
			// same file as the console.
			logger := newLogger(log.WriterLevel(logrus.InfoLevel))

			s, err := opts.newSession(cmd, logger)
			if err != nil {
				return err
			}

			log.WithField("difficulty", s.Snapshot().Difficulty.String()).Info("console started")
			return console.New(s, log).Run(os.Stdin, os.Stdout)
		},
	}
}
