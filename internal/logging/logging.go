package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Verbose switches diagnostic logging on.
type Verbose bool

// New returns a logger writing to out. Without verbose it discards everything.
func New(out io.Writer, verbose Verbose) zerolog.Logger {
	level := zerolog.Disabled
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// ProvideLogger logs to stderr, stdout carries the command output.
func ProvideLogger(verbose Verbose) zerolog.Logger {
	return New(os.Stderr, verbose)
}
