package sun

import (
	"fmt"
	"strings"
	"time"
)

// Event is a solar event an Oracle can search for.
type Event string

const (
	Rising  Event = "sunrise"
	Setting Event = "sunset"
)

// searchDays bounds how far ahead an Oracle looks for the next event.
const searchDays = 3

// Oracle answers "when does the sun next rise/set after this instant" for an
// observer. Returned times are absolute; callers choose the display zone.
type Oracle interface {
	Name() string
	NextRising(obs Observer, after time.Time) (time.Time, error)
	NextSetting(obs Observer, after time.Time) (time.Time, error)
}

// Ephemeris names accepted by NewOracle.
const (
	EphemerisSunCalc = "suncalc"
	EphemerisSunrise = "sunrise"
)

// NewOracle returns the oracle registered under name.
func NewOracle(name string) (Oracle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case EphemerisSunCalc, "":
		return NewSunCalcOracle(), nil
	case EphemerisSunrise:
		return NewSunriseOracle(), nil
	default:
		return nil, fmt.Errorf("unknown ephemeris %q, must be one of: %s, %s", name, EphemerisSunCalc, EphemerisSunrise)
	}
}

// probeFunc returns the event an ephemeris reports for the solar day
// around t, or the zero time when there is none.
type probeFunc func(t time.Time) time.Time

// nextAfter walks forward one day at a time, starting a day early so an
// event that the ephemeris files under the previous date is not missed, and
// returns the first reported event strictly after after. Events reported
// for consecutive days are increasing, so the first match is the next one.
func nextAfter(ev Event, after time.Time, probe probeFunc) (time.Time, error) {
	limit := after.Add(searchDays * 24 * time.Hour)
	for i := -1; i <= searchDays; i++ {
		t := probe(after.Add(time.Duration(i) * 24 * time.Hour))
		if t.IsZero() {
			continue
		}
		if t.After(after) && !t.After(limit) {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &NoEventError{Event: ev, After: after, Days: searchDays}
}
