// Package logging configures the process-wide structured logger. The
// terminal is owned by the UI, so logs always go to a file.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// DefaultPath returns the log file location used when the config does
// not name one. It sits next to the config file.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "basket", "basket.log")
}

// Setup opens the log file at path, installs a text handler on it as
// the slog default and returns the logger together with a close func
// for shutdown. An empty path means DefaultPath. With debug false the
// file only receives Info and above.
func Setup(path string, debug bool) (*slog.Logger, func() error, error) {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, f.Close, nil
}
