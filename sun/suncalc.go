package sun

import (
	"time"

	"github.com/sixdouglas/suncalc"
)

// SunCalcOracle computes rise and set with github.com/sixdouglas/suncalc.
type SunCalcOracle struct{}

// NewSunCalcOracle creates the default oracle.
func NewSunCalcOracle() *SunCalcOracle {
	return &SunCalcOracle{}
}

func (o *SunCalcOracle) Name() string {
	return EphemerisSunCalc
}

// NextRising returns the first sunrise strictly after after.
func (o *SunCalcOracle) NextRising(obs Observer, after time.Time) (time.Time, error) {
	return o.next(Rising, obs, after)
}

// NextSetting returns the first sunset strictly after after.
func (o *SunCalcOracle) NextSetting(obs Observer, after time.Time) (time.Time, error) {
	return o.next(Setting, obs, after)
}

func (o *SunCalcOracle) next(ev Event, obs Observer, after time.Time) (time.Time, error) {
	if err := checkStandard(obs); err != nil {
		return time.Time{}, err
	}
	return nextAfter(ev, after, func(t time.Time) time.Time {
		times := suncalc.GetTimes(t, obs.Latitude, obs.Longitude)
		if ev == Rising {
			return times["sunrise"].Value
		}
		return times["sunset"].Value
	})
}
