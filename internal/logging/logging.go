// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// =============================================================================
// LOGGER CONSTRUCTION
// =============================================================================

// DefaultLogFile is the log file name inside the config directory.
const DefaultLogFile = "booky.log"

// NewFileLogger returns a JSON logger appending to path, creating
// parent directories as needed. The returned closer flushes and closes
// the file; callers defer it for the process lifetime.
func NewFileLogger(path, level string) (zerolog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := zerolog.New(f).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
	return logger, f, nil
}

// NewConsoleLogger returns a human-readable logger on stderr for
// line-mode commands.
func NewConsoleLogger(level string) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// parseLevel maps a level name to a zerolog level, defaulting to info
// on anything unrecognized.
func parseLevel(level string) zerolog.Level {
	l, err := zerolog.ParseLevel(level)
	if err != nil || l == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return l
}
