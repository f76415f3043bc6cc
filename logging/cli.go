// SPDX-License-Identifier: MIT

// Package logging provides the slog handler used by the congeneric CLI:
// one coloured line per record, written to stderr so reports on stdout stay clean.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

const (
	colorGreen = "\033[32m"
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
)

// CLIHandler is a slog.Handler that renders "[group] message: k=v k=v".
// Error records are red, everything else green. Handlers derived through
// WithAttrs/WithGroup share one lock, so lines never interleave.
type CLIHandler struct {
	mu     *sync.Mutex
	writer io.Writer
	level  slog.Leveler
	prefix string
	attrs  []slog.Attr
	color  bool
}

// NewCLIHandler returns a coloured handler writing to w at the given level.
func NewCLIHandler(w io.Writer, level slog.Leveler) *CLIHandler {
	return &CLIHandler{mu: &sync.Mutex{}, writer: w, level: level, color: true}
}

// WithoutColor returns a copy of h that emits plain text.
func (h *CLIHandler) WithoutColor() *CLIHandler {
	c := h.clone()
	c.color = false

	return c
}

func (h *CLIHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *CLIHandler) Handle(_ context.Context, r slog.Record) error {
	msg := r.Message
	if h.prefix != "" {
		msg = "[" + h.prefix + "] " + msg
	}

	attrs := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		attrs = append(attrs, formatAttr(a))
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, formatAttr(a))
		return true
	})
	if len(attrs) > 0 {
		msg = msg + ": " + strings.Join(attrs, " ")
	}

	if h.color {
		if r.Level >= slog.LevelError {
			msg = colorRed + msg + colorReset
		} else {
			msg = colorGreen + msg + colorReset
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.writer, msg)
	return err
}

func (h *CLIHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	c := h.clone()
	c.attrs = append(c.attrs, attrs...)

	return c
}

func (h *CLIHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := h.clone()
	if c.prefix != "" {
		c.prefix += "." + name
	} else {
		c.prefix = name
	}

	return c
}

func (h *CLIHandler) clone() *CLIHandler {
	c := *h
	c.attrs = append([]slog.Attr(nil), h.attrs...)

	return &c
}

func formatAttr(a slog.Attr) string {
	return fmt.Sprintf("%s=%v", a.Key, a.Value.Resolve())
}

// NewCLILogger returns a logger writing to stderr at the parsed level.
func NewCLILogger(level string) *slog.Logger {
	return NewLogger(os.Stderr, level)
}

// NewLogger returns a logger writing to w at the parsed level.
func NewLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(NewCLIHandler(w, ParseLogLevel(level)))
}

// SetDefaultCLILogger installs a CLI logger as the slog default.
func SetDefaultCLILogger(level string) {
	slog.SetDefault(NewCLILogger(level))
}

// ParseLogLevel converts a string log level to slog.Level.
// Defaults to slog.LevelInfo for unrecognized strings.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
