package sun

import (
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"
)

// SunTimes is one day's sunrise and sunset.
type SunTimes struct {
	Sunrise time.Time
	Sunset  time.Time
}

// IsZero reports whether either event is missing.
func (s SunTimes) IsZero() bool {
	return s.Sunrise.IsZero() || s.Sunset.IsZero()
}

// Table maps every day of a date range to its SunTimes. It is read-only once
// returned by a Builder.
type Table struct {
	times       map[DateKey]SunTimes
	first, last DateKey
}

// Get returns the entry for key. It is safe to call on a nil Table.
func (t *Table) Get(key DateKey) (SunTimes, bool) {
	if t == nil {
		return SunTimes{}, false
	}
	st, ok := t.times[key]
	return st, ok
}

// Len returns the number of days in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.times)
}

// First returns the earliest date covered.
func (t *Table) First() DateKey {
	return t.first
}

// Last returns the latest date covered.
func (t *Table) Last() DateKey {
	return t.last
}

// Keys returns all dates in ascending order.
func (t *Table) Keys() []DateKey {
	if t == nil {
		return nil
	}
	keys := make([]DateKey, 0, len(t.times))
	for k := range t.times {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, DateKey.Compare)
	return keys
}

// Builder computes sun time tables for one observer and time zone.
type Builder struct {
	oracle   Oracle
	observer Observer
	location *time.Location
	logger   *zap.Logger

	// UseUTC keeps results in UTC instead of converting them to the
	// builder's location.
	UseUTC bool
}

// NewBuilder creates a table builder. A nil logger disables logging.
func NewBuilder(oracle Oracle, observer Observer, location *time.Location, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		oracle:   oracle,
		observer: observer,
		location: location,
		logger:   logger,
	}
}

// BuildYear builds the table for January 1 through December 31 of year.
func (b *Builder) BuildYear(year int) (*Table, error) {
	return b.Build(NewDateKey(year, time.January, 1), NewDateKey(year, time.December, 31))
}

// Build computes sun times for every date in [start, end].
func (b *Builder) Build(start, end DateKey) (*Table, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, &ValidationError{Field: "date_range", Message: fmt.Sprintf("start %s is after end %s", start, end)}
	}

	b.logger.Info("Building sun times table",
		zap.String("start", start.String()),
		zap.String("end", end.String()),
		zap.String("observer", b.observer.String()),
		zap.String("timezone", b.location.String()),
		zap.String("ephemeris", b.oracle.Name()))

	table := &Table{
		times: make(map[DateKey]SunTimes),
		first: start,
		last:  end,
	}
	for d := start; !d.After(end); d = d.AddDays(1) {
		st, err := b.at(d)
		if err != nil {
			return nil, err
		}
		if _, dup := table.times[d]; dup {
			return nil, fmt.Errorf("duplicate date %s in table", d)
		}
		table.times[d] = st
	}

	b.logger.Info("Sun times table built", zap.Int("days", table.Len()))
	return table, nil
}

// At computes the sun times for a single date.
func (b *Builder) At(d DateKey) (SunTimes, error) {
	if err := b.check(); err != nil {
		return SunTimes{}, err
	}
	return b.at(d)
}

func (b *Builder) check() error {
	if b.oracle == nil {
		return &ValidationError{Field: "oracle", Message: "cannot be nil"}
	}
	if b.location == nil {
		return &ValidationError{Field: "timezone", Message: "cannot be nil"}
	}
	return b.observer.Validate()
}

func (b *Builder) at(d DateKey) (SunTimes, error) {
	// The oracle works on absolute time, so the search starts from local
	// midnight as resolved by the zone rules for d, not a fixed offset.
	ref := d.Midnight(b.location).UTC()

	rise, err := b.oracle.NextRising(b.observer, ref)
	if err != nil {
		return SunTimes{}, &DateError{Date: d, Err: err}
	}
	set, err := b.oracle.NextSetting(b.observer, ref)
	if err != nil {
		return SunTimes{}, &DateError{Date: d, Err: err}
	}

	out := time.UTC
	if !b.UseUTC {
		out = b.location
	}
	st := SunTimes{Sunrise: rise.In(out), Sunset: set.In(out)}

	b.logger.Debug("Computed sun times",
		zap.String("date", d.String()),
		zap.Time("reference", ref),
		zap.Time("sunrise", st.Sunrise),
		zap.Time("sunset", st.Sunset))
	return st, nil
}
