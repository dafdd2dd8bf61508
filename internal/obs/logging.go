// Package obs contains observability utilities such as logging.
package obs

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// NewLogger returns a JSON logger writing to w at the named level ("debug", "info", ...).
// Unknown levels fall back to warn. Every line carries the run_id of this process.
func NewLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
}
