package scenic

import (
	"log/slog"

	"github.com/colibri-cam/scenic-driver-skia/internal/logx"
)

// SetLogger configures the logger for scenic and all its sub-packages.
// By default the engine produces no log output.
//
// SetLogger is safe for concurrent use: it stores the new logger
// atomically. Pass nil to restore the default silent behavior.
//
// Log levels used by the engine:
//   - [slog.LevelDebug]: execution degradations (missing image, font
//     or script references)
//   - [slog.LevelWarn]: script nesting beyond the depth limit
func SetLogger(l *slog.Logger) {
	logx.Set(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logx.Logger()
}
