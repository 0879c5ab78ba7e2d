package infra

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the service logger. Development gets debug level and a
// human-readable console writer, everything else emits JSON at info.
func NewLogger(appEnv string) zerolog.Logger {
	var out = zerolog.New(os.Stdout)
	level := zerolog.InfoLevel
	if appEnv == "development" {
		level = zerolog.DebugLevel
		out = out.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
	return out.Level(level).With().Timestamp().Str("service", "slotcheck").Logger()
}

// Logger aliases zerolog.Logger so other packages can take a logger without
// importing the third-party module directly.
type Logger = zerolog.Logger
