// Package logging wraps zerolog construction so every component logs with a
// consistent shape and a shared level.
package logging

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var base = zerolog.New(os.Stderr).With().Timestamp().Logger()

// SetLevel adjusts the global log level, defaulting to info on an
// unparseable value
func SetLevel(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// New returns a sublogger tagged with the owning component
func New(component string) zerolog.Logger {
	return base.With().Str("component", component).Logger()
}

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}
