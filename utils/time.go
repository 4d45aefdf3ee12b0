// Package utils provides utility functions for the sun calendar.
package utils //nolint:revive // utils is a common and acceptable package name

import "time"

// LocalMidnight returns the first instant of the given day in loc. The offset
// comes from the zone rules for that day, so DST days get their own offset.
// Where the clocks spring forward at 00:00, midnight does not exist and
// time.Date resolves it into the previous day; the end of that zone period
// is then the first instant of the requested day.
func LocalMidnight(year int, month time.Month, day int, loc *time.Location) time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, loc)
	wantY, wantM, wantD := time.Date(year, month, day, 12, 0, 0, 0, time.UTC).Date()
	if y, m, d := t.Date(); y == wantY && m == wantM && d == wantD {
		return t
	}
	_, end := t.ZoneBounds()
	if end.IsZero() {
		return t
	}
	return end
}
