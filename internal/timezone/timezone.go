package timezone

import "time"

const (
	DefaultTimezone = "America/Sao_Paulo"

	// DateLayout is the ISO calendar date stored in exames.data.
	DateLayout = "2006-01-02"
)

// Location resolves tz, falling back to DefaultTimezone and then UTC.
func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// Clock returns the current time. Use cases take one so tests can pin it.
type Clock func() time.Time

// In returns a clock reading wall time in tz.
func In(tz string) Clock {
	loc := Location(tz)
	return func() time.Time {
		return time.Now().In(loc)
	}
}

func NowIn(tz string) time.Time {
	return In(tz)()
}

// Today formats the clock's current day as an ISO date.
func (c Clock) Today() string {
	return c().Format(DateLayout)
}
