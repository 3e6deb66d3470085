// Package logx configures the process-wide zerolog logger.
package logx

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/megamart/commerce-core/internal/config"
)

// Init sets up the global logger for the given environment. Development
// gets a human-readable console writer at debug level; production keeps
// the default JSON writer at info level.
func Init(env config.Environment) {
	if env.IsProduction() {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
		return
	}
	log.Logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Caller().Logger()
	log.Logger = log.Logger.Level(zerolog.DebugLevel)
}

// New returns a logger tagged with the component name. Stores take one of
// these so their persistence warnings are attributable.
func New(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// Nop returns a disabled logger for tests that do not care about output.
func Nop() zerolog.Logger {
	return zerolog.New(os.Stderr).Level(zerolog.Disabled)
}
