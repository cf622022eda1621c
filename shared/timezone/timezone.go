// Package timezone keeps the application location used to stamp notifications.
// The location is taken from APP_TIMEZONE via Init; until then UTC is used.
package timezone

import (
	"sync/atomic"
	"time"

	"gymroom/config"

	"github.com/rs/zerolog/log"
)

var appLocation atomic.Pointer[time.Location]

// Init loads the configured location, falling back to UTC on empty or unknown names.
func Init(cfg *config.Config) {
	name := cfg.App.Timezone
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		appLocation.Store(time.UTC)

		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Bangkok', 'UTC'")
		appLocation.Store(time.UTC)

		return
	}

	appLocation.Store(loc)
	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if loc := appLocation.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return t.In(GetLocation()).Format(layout)
}
