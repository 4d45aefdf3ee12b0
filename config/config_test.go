package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()

	assert.Equal(t, "32.7,-117.1", c.Location)
	assert.Equal(t, time.Now().Year(), c.Year)
	assert.Equal(t, "US/Pacific", c.Timezone)
	assert.Equal(t, "sun_calendar.html", c.Output)
	assert.Equal(t, "calendar.css", c.Stylesheet)
	assert.Equal(t, 3, c.Width)
	assert.Equal(t, "sunday", c.FirstWeekday)
	assert.Equal(t, "suncalc", c.Ephemeris)
	assert.NoError(t, c.Validate())
}

func TestLoadConfigFromReader(t *testing.T) {
	yamlConfig := `
location: "59.91, 10.75"
year: 2025
timezone: Europe/Oslo
first_weekday: Mon
width: 4
`
	c, err := LoadConfigFromReader(strings.NewReader(yamlConfig))
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, "59.91, 10.75", c.Location)
	assert.Equal(t, 2025, c.Year)
	assert.Equal(t, "Europe/Oslo", c.Timezone)
	assert.Equal(t, 4, c.Width)
	// untouched keys keep defaults
	assert.Equal(t, "sun_calendar.html", c.Output)
	assert.Equal(t, "info", c.LogLevel)

	wd, err := c.Weekday()
	require.NoError(t, err)
	assert.Equal(t, time.Monday, wd)
}

func TestLoadConfigFromReader_Empty(t *testing.T) {
	c, err := LoadConfigFromReader(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Timezone, c.Timezone)
}

func TestLoadConfigFromReader_UnknownKey(t *testing.T) {
	_, err := LoadConfigFromReader(strings.NewReader("latitude: 12\n"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sun.yaml")
	require.NoError(t, os.WriteFile(path, []byte("year: 2024\nutc: true\n"), 0644))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2024, c.Year)
	assert.True(t, c.UTC)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"bad location format", func(c *Config) { c.Location = "32.7" }, "invalid location"},
		{"latitude out of range", func(c *Config) { c.Location = "91,0" }, "latitude must be between"},
		{"longitude not a number", func(c *Config) { c.Location = "10,east" }, "invalid longitude"},
		{"year zero", func(c *Config) { c.Year = 0 }, "year must be between"},
		{"unknown timezone", func(c *Config) { c.Timezone = "Mars/Olympus_Mons" }, "invalid timezone"},
		{"empty timezone", func(c *Config) { c.Timezone = "" }, "timezone cannot be empty"},
		{"empty output", func(c *Config) { c.Output = " " }, "output cannot be empty"},
		{"empty stylesheet", func(c *Config) { c.Stylesheet = "" }, "stylesheet cannot be empty"},
		{"width zero", func(c *Config) { c.Width = 0 }, "width must be between"},
		{"width too large", func(c *Config) { c.Width = 13 }, "width must be between"},
		{"bad weekday", func(c *Config) { c.FirstWeekday = "someday" }, "invalid first_weekday"},
		{"bad ephemeris", func(c *Config) { c.Ephemeris = "pyephem" }, "invalid ephemeris"},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }, "invalid log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParseLocation(t *testing.T) {
	lat, lng, err := ParseLocation("32.7,-117.1")
	require.NoError(t, err)
	assert.Equal(t, 32.7, lat)
	assert.Equal(t, -117.1, lng)

	lat, lng, err = ParseLocation(" -33.87 , 151.21 ")
	require.NoError(t, err)
	assert.Equal(t, -33.87, lat)
	assert.Equal(t, 151.21, lng)

	for _, bad := range []string{"", "1,2,3", "north,south", "NaN,0", "0,-181"} {
		_, _, err := ParseLocation(bad)
		assert.Error(t, err, "expected error for %q", bad)
	}
}

func TestParseYear(t *testing.T) {
	y, err := ParseYear("2024")
	require.NoError(t, err)
	assert.Equal(t, 2024, y)

	_, err = ParseYear("twenty")
	assert.Error(t, err)
}

func TestConfig_Weekday(t *testing.T) {
	tests := map[string]time.Weekday{
		"sunday":   time.Sunday,
		"Monday":   time.Monday,
		"SAT":      time.Saturday,
		" wed ":    time.Wednesday,
		"thursday": time.Thursday,
	}
	for in, want := range tests {
		c := DefaultConfig()
		c.FirstWeekday = in
		got, err := c.Weekday()
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
