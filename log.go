package uri

import (
	"log/slog"

	urilog "github.com/kyuri-go/uri/internal/log"
)

// logger is the package-wide logging sink; it defaults to a no-op handler
// so importing this library is silent unless a caller opts in.
var logger = urilog.Noop

// SetLogger installs l as the package-wide destination for diagnostic
// logging: one Debug record, with the new serialized length, each time a
// URI commits a parse or mutation. Passing nil restores the default no-op
// logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		logger = urilog.Noop
		return
	}
	logger = l
}
