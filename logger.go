// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler is a slog.Handler that drops every record.
// Enabled reports false so callers skip building attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the package logger. It is swapped atomically so SetLogger
// may race with draw calls on other goroutines.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by paint and its backends.
// paint is silent by default. Passing nil restores the silent logger.
// The logger is also handed to gg, so rasterizer and GPU upload messages
// end up in the same place.
//
// Levels:
//   - [slog.LevelDebug]: skipped draws (unresolved images, empty paths), cache evictions
//   - [slog.LevelInfo]: image loading
//   - [slog.LevelWarn]: backend fill/stroke failures, failed image loads
//
// Example:
//
//	paint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	gg.SetLogger(l)
}

// Logger returns the current package logger.
// Backend packages call it so they share one configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
