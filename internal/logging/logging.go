package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LevelEnvVar overrides the verbosity passed to SetupLogger when set.
const LevelEnvVar = "SEARCHPATH_LOG_LEVEL"

// SetupLogger configures the global logger based on verbosity level.
// Output goes to out (stderr when nil) through a console writer.
func SetupLogger(verbosity int, out io.Writer) {
	if out == nil {
		out = os.Stderr
	}
	if lvl, ok := levelFromEnv(); ok {
		verbosity = lvl
	}

	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 2:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
	}
	log.Logger = zerolog.New(consoleWriter).With().Timestamp().Logger()

	// Add caller information for debug and trace levels
	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Msg("Logger initialized")
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func levelFromEnv() (int, bool) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(LevelEnvVar))) {
	case "warn", "warning":
		return 0, true
	case "info":
		return 1, true
	case "debug":
		return 2, true
	case "trace":
		return 3, true
	}
	return 0, false
}
