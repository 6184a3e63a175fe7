// icon-cfg - ICON build configurator
// Copyright (C) 2025 The icon-cfg Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/leonelquinteros/gotext"
)

// Logger routes records up to INFO to stdout and everything above to
// stderr, so the configure output and its diagnostics stay separable.
type Logger struct {
	lOut *log.Logger
	lErr *log.Logger
}

func setupOutLogger(w io.Writer) *log.Logger {
	logger := log.New(w)
	logger.SetStyles(log.DefaultStyles())
	return logger
}

func setupErrorLogger(w io.Writer) *log.Logger {
	styles := log.DefaultStyles()
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString(gotext.Get("ERROR")).
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("204")).
		Foreground(lipgloss.Color("0"))
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString(gotext.Get("WARN")).
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("192")).
		Foreground(lipgloss.Color("0"))
	logger := log.New(w)
	logger.SetStyles(styles)
	return logger
}

func New() *Logger {
	return NewWithWriters(os.Stdout, os.Stderr)
}

func NewWithWriters(out, errOut io.Writer) *Logger {
	return &Logger{
		lOut: setupOutLogger(out),
		lErr: setupErrorLogger(errOut),
	}
}

func (l *Logger) SetLevel(level slog.Level) {
	l.lOut.SetLevel(log.Level(level))
	l.lErr.SetLevel(log.Level(level))
}

func (l *Logger) Enabled(ctx context.Context, level slog.Level) bool {
	if level <= slog.LevelInfo {
		return l.lOut.Enabled(ctx, level)
	}
	return l.lErr.Enabled(ctx, level)
}

func (l *Logger) Handle(ctx context.Context, rec slog.Record) error {
	if rec.Level <= slog.LevelInfo {
		return l.lOut.Handle(ctx, rec)
	}
	return l.lErr.Handle(ctx, rec)
}

func (l *Logger) WithAttrs(attrs []slog.Attr) slog.Handler {
	sl := *l
	sl.lOut = l.lOut.With(attrsToArgs(attrs)...)
	sl.lErr = l.lErr.With(attrsToArgs(attrs)...)
	return &sl
}

func (l *Logger) WithGroup(name string) slog.Handler {
	sl := *l
	sl.lOut = l.lOut.WithPrefix(name)
	sl.lErr = l.lErr.WithPrefix(name)
	return &sl
}

func attrsToArgs(attrs []slog.Attr) []any {
	args := make([]any, 0, len(attrs)*2)
	for _, a := range attrs {
		args = append(args, a.Key, a.Value.Any())
	}
	return args
}

// ParseLevel maps a config level name to a slog level. Unknown names
// fall back to INFO.
func ParseLevel(name string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetupDefault() *Logger {
	l := New()
	slog.SetDefault(slog.New(l))
	return l
}
