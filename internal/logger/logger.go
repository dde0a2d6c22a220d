// Package logger configures the structured logger used by the CLI layer.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates a console logger writing to stderr, so log lines never mix
// with report output on stdout.
func New() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Logger()
}
