package config

import (
	"fmt"
	"os"
	"strconv"
)

// LogFile configures the rotating log written by the terminal console,
// which cannot log to the terminal it draws on.
type LogFile struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func lookupNonEmpty(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	return v, ok && v != ""
}

func lookupInt(key string, fallback int) (int, error) {
	s, ok := lookupNonEmpty(key)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %s to int: %w", key, err)
	}
	return n, nil
}

func NewLogFile() (*LogFile, error) {
	path, ok := lookupNonEmpty("MINEFIELD_LOG_FILE")
	if !ok {
		path = "minefield.log"
	}

	maxSize, err := lookupInt("MINEFIELD_LOG_MAX_SIZE_MB", 10)
	if err != nil {
		return nil, err
	}
	maxBackups, err := lookupInt("MINEFIELD_LOG_MAX_BACKUPS", 3)
	if err != nil {
		return nil, err
	}
	maxAge, err := lookupInt("MINEFIELD_LOG_MAX_AGE_DAYS", 7)
	if err != nil {
		return nil, err
	}

	return &LogFile{
		Path:       path,
		MaxSizeMB:  maxSize,
		MaxBackups: maxBackups,
		MaxAgeDays: maxAge,
	}, nil
}
