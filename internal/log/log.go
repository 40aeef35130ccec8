// Package log provides the ambient structured-logging handlers used by the
// uri package, grounded on gosip/internal/log: a console handler for
// interactive use and a developer handler for local debugging, both
// wrapped through a formatter handler so error values print as messages
// rather than "%+v" dumps.
package log

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
)

// Def is a console logger at Warn level; the uri package's default is Noop,
// so Def is used only when a caller passes it to SetLogger.
var Def = slog.New(newHandler(
	console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level: slog.LevelWarn,
	}),
))

// Dev is a verbose developer logger suitable for debugging grammar
// failures and reallocation traffic.
var Dev = slog.New(newHandler(
	devslog.NewHandler(os.Stderr, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{Level: slog.LevelDebug},
		SortKeys:       true,
		TimeFormat:     time.RFC3339Nano,
	}),
))

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (noopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler       { return h }
func (h noopHandler) WithGroup(string) slog.Handler            { return h }

// Noop discards everything; it is the uri package's compiled-in default so
// that importing this library never prints anything unless a caller opts
// in with SetLogger.
var Noop = slog.New(noopHandler{})
