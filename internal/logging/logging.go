// Package logging builds the process-wide structured logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to stderr, keeping stdout free for
// pipeline output.
func New() zerolog.Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter returns a console logger writing to w.
func NewWithWriter(w io.Writer) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(out).With().Timestamp().Logger()
}
