// logging.go - slog wrapper used throughout the machine.

/*
logging.go - Logger

A thin wrapper around log/slog, grounded on the S370 project's
util/logger.LogHandler: a custom slog.Handler that timestamps every line,
always mirrors Warn/Error (and Debug when enabled) to stderr, and optionally
tees everything to a log file. The machine never talks to slog directly -
every component that logs takes a *Logger so the destination and verbosity
are configured once, in main.go.
*/

package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// logHandler is a slog.Handler that timestamps plainly and always surfaces
// warnings and errors on stderr regardless of the configured level.
type logHandler struct {
	out   io.Writer
	inner slog.Handler
	mu    *sync.Mutex
	debug bool
}

func (h *logHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *logHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &logHandler{out: h.out, inner: h.inner.WithAttrs(attrs), mu: h.mu, debug: h.debug}
}

func (h *logHandler) WithGroup(name string) slog.Handler {
	return &logHandler{out: h.out, inner: h.inner.WithGroup(name), mu: h.mu, debug: h.debug}
}

func (h *logHandler) Handle(ctx context.Context, r slog.Record) error {
	parts := []string{r.Time.Format("2006/01/02 15:04:05"), r.Level.String() + ":", r.Message}
	r.Attrs(func(a slog.Attr) bool {
		parts = append(parts, a.Key+"="+a.Value.String())
		return true
	})
	line := strings.Join(parts, " ") + "\n"

	h.mu.Lock()
	defer h.mu.Unlock()

	var err error
	if h.out != nil {
		_, err = h.out.Write([]byte(line))
	}
	if h.debug || r.Level >= slog.LevelWarn {
		_, _ = os.Stderr.Write([]byte(line))
	}
	return err
}

// Logger is the machine-wide logging facade.
type Logger struct {
	*slog.Logger
}

// NewLogger returns a Logger that writes to out (may be nil to disable file
// output) and mirrors warnings/errors to stderr. debug also mirrors
// info/debug-level records to stderr.
func NewLogger(out io.Writer, debug bool) *Logger {
	h := &logHandler{out: out, mu: &sync.Mutex{}, debug: debug}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h.inner = slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level})
	return &Logger{Logger: slog.New(h)}
}

// NewDiscardLogger returns a Logger that drops everything; used by tests and
// by callers that have not wired a destination yet.
func NewDiscardLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}
