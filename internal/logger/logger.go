// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package logger

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps a slog.Logger so that packages share one logging type.
type Logger struct {
	*slog.Logger
}

// New returns a Logger writing text records to stderr.
func New(level slog.Level) *Logger {
	return NewLogger(level, os.Stderr)
}

// NewLogger returns a Logger writing text records of at least the given level to w.
func NewLogger(level slog.Level, w io.Writer) *Logger {
	return &Logger{slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))}
}

// With returns a Logger that includes the given attributes in each record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{l.Logger.With(args...)}
}

// Err returns an slog attribute for the given error.
func Err(err error) slog.Attr {
	return slog.Any("error", err)
}
