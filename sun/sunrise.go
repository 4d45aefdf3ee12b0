package sun

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// SunriseOracle computes rise and set with github.com/nathan-osman/go-sunrise.
// It is a second, independent ephemeris that is handy for cross-checking.
type SunriseOracle struct{}

func NewSunriseOracle() *SunriseOracle {
	return &SunriseOracle{}
}

func (o *SunriseOracle) Name() string {
	return EphemerisSunrise
}

func (o *SunriseOracle) NextRising(obs Observer, after time.Time) (time.Time, error) {
	return o.next(Rising, obs, after)
}

func (o *SunriseOracle) NextSetting(obs Observer, after time.Time) (time.Time, error) {
	return o.next(Setting, obs, after)
}

func (o *SunriseOracle) next(ev Event, obs Observer, after time.Time) (time.Time, error) {
	if err := checkStandard(obs); err != nil {
		return time.Time{}, err
	}
	return nextAfter(ev, after, func(t time.Time) time.Time {
		// go-sunrise works on UTC calendar dates
		y, m, d := t.UTC().Date()
		rise, set := sunrise.SunriseSunset(obs.Latitude, obs.Longitude, y, m, d)
		if ev == Rising {
			return rise
		}
		return set
	})
}
