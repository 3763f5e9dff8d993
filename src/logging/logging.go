// Package logging configures zerolog for the command line tools.
package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup initializes a zerolog.Logger based on the requested format and
// level and installs it as the global logger (the egfr package emits its
// unrecognized-race warning through the global logger).
//
// format can be "text" (human-friendly console) or "json" (structured);
// level is one of debug|info|warn|error and defaults to info.
func Setup(format, level string) zerolog.Logger {
	var l zerolog.Logger
	if format == "text" {
		l = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
	} else {
		l = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	l = l.Level(ParseLevel(level))
	log.Logger = l
	return l
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
