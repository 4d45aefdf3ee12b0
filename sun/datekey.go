package sun

import (
	"fmt"
	"time"

	"github.com/devskill-org/sun-calendar/utils"
)

// DateKeyLayout is the canonical textual form of a DateKey.
const DateKeyLayout = "2006-01-02"

// DateKey identifies a calendar day independent of any time zone.
type DateKey struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDateKey returns the key for the given date, normalizing out-of-range
// values the same way time.Date does (e.g. January 32 becomes February 1).
func NewDateKey(year int, month time.Month, day int) DateKey {
	return DateKeyOf(time.Date(year, month, day, 12, 0, 0, 0, time.UTC))
}

// DateKeyOf returns the calendar date of t in t's own location.
func DateKeyOf(t time.Time) DateKey {
	y, m, d := t.Date()
	return DateKey{Year: y, Month: m, Day: d}
}

// ParseDateKey parses a YYYY-MM-DD string.
func ParseDateKey(s string) (DateKey, error) {
	t, err := time.Parse(DateKeyLayout, s)
	if err != nil {
		return DateKey{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateKeyOf(t), nil
}

func (k DateKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", k.Year, int(k.Month), k.Day)
}

// IsZero reports whether k is the zero key.
func (k DateKey) IsZero() bool {
	return k == DateKey{}
}

// Midnight returns the first instant of the day in loc, honoring DST rules.
func (k DateKey) Midnight(loc *time.Location) time.Time {
	return utils.LocalMidnight(k.Year, k.Month, k.Day, loc)
}

// AddDays returns the key n days after k (n may be negative).
func (k DateKey) AddDays(n int) DateKey {
	return NewDateKey(k.Year, k.Month, k.Day+n)
}

// Weekday returns the day of the week of k.
func (k DateKey) Weekday() time.Weekday {
	return time.Date(k.Year, k.Month, k.Day, 12, 0, 0, 0, time.UTC).Weekday()
}

// Compare returns -1, 0 or +1 depending on whether k is before, equal to or
// after other.
func (k DateKey) Compare(other DateKey) int {
	switch {
	case k.Year != other.Year:
		return cmpInt(k.Year, other.Year)
	case k.Month != other.Month:
		return cmpInt(int(k.Month), int(other.Month))
	default:
		return cmpInt(k.Day, other.Day)
	}
}

// Before reports whether k is strictly before other.
func (k DateKey) Before(other DateKey) bool {
	return k.Compare(other) < 0
}

// After reports whether k is strictly after other.
func (k DateKey) After(other DateKey) bool {
	return k.Compare(other) > 0
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
