package timezone

import (
	"hotel/config"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultZone = "UTC"

var appLocation = time.UTC

func init() {
	appLocation = Load(config.Get().App.Timezone)
}

// Load resolves an IANA zone name, falling back to UTC when it is empty or
// unknown to the host.
func Load(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Str("fallback", defaultZone).
			Msg("Failed to load timezone, use an IANA name such as Asia/Jakarta")

		return time.UTC
	}

	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")

	return loc
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	return time.Now().In(appLocation)
}

// ToAppTime converts t to the application timezone.
func ToAppTime(t time.Time) time.Time {
	return t.In(appLocation)
}

func GetLocation() *time.Location {
	return appLocation
}

// Parse reads value as wall clock time of the application timezone.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, appLocation) //nolint:wrapcheck
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// DateOf returns the calendar date t falls on in the application timezone,
// as midnight UTC. Stay dates are compared in this form, so a guest booking
// at 23:30 local time still sees today as today.
func DateOf(t time.Time) time.Time {
	y, m, d := ToAppTime(t).Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today is DateOf(now).
func Today() time.Time {
	return DateOf(time.Now())
}
