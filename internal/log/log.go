// Package log provides the slog loggers used across the module.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"
)

// newHandler renders errors logged under the "error" key as a group
// of message, type and stacktrace.
var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
)

// Def is a default logger.
var Def = slog.New(newHandler(
	console.NewHandler(os.Stdout, &console.HandlerOptions{
		AddSource:  true,
		Level:      slog.LevelDebug,
		TimeFormat: time.RFC3339Nano,
	}),
))

// Dev is a developer logger.
var Dev = slog.New(newHandler(
	devslog.NewHandler(os.Stdout, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		},
		SortKeys:   true,
		TimeFormat: time.RFC3339Nano,
	}),
))

// New returns a console logger writing uncolored records of level lvl and above to w.
// A nil lvl means [slog.LevelInfo].
func New(w io.Writer, lvl slog.Leveler) *slog.Logger {
	if lvl == nil {
		lvl = slog.LevelInfo
	}
	return slog.New(newHandler(
		console.NewHandler(w, &console.HandlerOptions{
			Level:      lvl,
			NoColor:    true,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})
