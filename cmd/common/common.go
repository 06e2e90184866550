package common

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger returns a logger that writes human-readable lines to stderr.
// Unknown or empty levels fall back to info.
func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

func ExitIfError(logger zerolog.Logger, msg string, err error) {
	if err != nil {
		logger.Fatal().Err(err).Msg(msg)
	}
}
