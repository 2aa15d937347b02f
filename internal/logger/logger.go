// Package logger configures the application's zerolog logger.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New returns the process logger. Pretty console output when PAWTRAIL_ENV is
// "dev" or unset, JSON otherwise.
func New() zerolog.Logger {
	environment := strings.TrimSpace(os.Getenv("PAWTRAIL_ENV"))
	if environment == "" {
		environment = "dev"
	}

	var logger zerolog.Logger
	if environment == "dev" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	return logger.With().Timestamp().Str("service", "pawtrail-api").Logger()
}
