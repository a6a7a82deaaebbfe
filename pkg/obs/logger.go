// Package obs initialises process-wide structured logging.
package obs

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

// InitLogger sets the global level and writes logs to stderr.
// An unparseable level falls back to info.
func InitLogger(level string) {
	initLogger(level, os.Stderr, useConsole())
}

func initLogger(level string, out io.Writer, console bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if console {
		out = zerolog.ConsoleWriter{Out: out}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
}

// useConsole reports whether to pretty print: in development, or when a
// person is watching stderr.
func useConsole() bool {
	if os.Getenv("STRMATCH_ENV") == "dev" {
		return true
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// Logger returns a new logger with the given component name
func Logger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
