// Package utils holds small cross-cutting helpers.
package utils

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/RBaldassarre/worldaquatics-export/constants"
)

// SetupLogger configures the global zerolog logger: human-readable
// console output on stderr and the level named by the LOG_LEVEL
// setting. Unknown names fall back to INFO.
func SetupLogger(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(parseLevel(level))
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case constants.LogLevelDebug:
		return zerolog.DebugLevel
	case constants.LogLevelInfo:
		return zerolog.InfoLevel
	case constants.LogLevelWarn:
		return zerolog.WarnLevel
	case constants.LogLevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
