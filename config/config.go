// Package config holds the sun calendar run configuration.
package config

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"

	"github.com/devskill-org/sun-calendar/calendar"
)

// Config represents the configuration for one calendar run
type Config struct {
	// Observer and calendar settings
	Location string `yaml:"location"` // Observer position as "lat,long"
	Year     int    `yaml:"year"`     // Calendar year
	Timezone string `yaml:"timezone"` // IANA time zone name for display

	// Output settings
	Output       string `yaml:"output"`        // Path of the generated HTML file
	Stylesheet   string `yaml:"stylesheet"`    // Stylesheet href embedded in the page
	Width        int    `yaml:"width"`         // Months per calendar row
	FirstWeekday string `yaml:"first_weekday"` // Day each week row starts with

	// Computation settings
	Ephemeris string `yaml:"ephemeris"` // Sun position library: suncalc or sunrise
	UTC       bool   `yaml:"utc"`       // Show times in UTC instead of Timezone

	// Logging settings
	LogLevel string `yaml:"log_level"` // Log level: debug, info, warn, error
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Location:     "32.7,-117.1", // San Diego
		Year:         time.Now().Year(),
		Timezone:     "US/Pacific",
		Output:       calendar.DefaultOutput,
		Stylesheet:   calendar.DefaultStylesheet,
		Width:        calendar.DefaultWidth,
		FirstWeekday: "sunday",
		Ephemeris:    "suncalc",
		UTC:          false,
		LogLevel:     "info",
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader. Keys missing
// from the document keep their defaults. The result is not validated so
// callers can apply overrides first.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	config := DefaultConfig()

	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode config YAML: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if _, _, err := ParseLocation(c.Location); err != nil {
		return fmt.Errorf("invalid location: %w", err)
	}

	if c.Year < 1 || c.Year > 9999 {
		return fmt.Errorf("year must be between 1 and 9999, got: %d", c.Year)
	}

	if _, err := c.TimeLocation(); err != nil {
		return err
	}

	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("output cannot be empty")
	}

	if strings.TrimSpace(c.Stylesheet) == "" {
		return fmt.Errorf("stylesheet cannot be empty")
	}

	if c.Width < 1 || c.Width > 12 {
		return fmt.Errorf("width must be between 1 and 12, got: %d", c.Width)
	}

	if _, err := c.Weekday(); err != nil {
		return err
	}

	validEphemerides := map[string]bool{
		"suncalc": true,
		"sunrise": true,
	}
	if !validEphemerides[strings.ToLower(c.Ephemeris)] {
		return fmt.Errorf("invalid ephemeris: %s, must be one of: suncalc, sunrise", c.Ephemeris)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level: %s, must be one of: debug, info, warn, error", c.LogLevel)
	}

	return nil
}

// ParseLocation parses a "lat,long" string in decimal degrees.
func ParseLocation(s string) (lat, lng float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("location must be lat,long, got: %q", s)
	}

	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q: %w", parts[0], err)
	}
	lng, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q: %w", parts[1], err)
	}

	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return 0, 0, fmt.Errorf("latitude must be between -90 and 90, got: %f", lat)
	}
	if math.IsNaN(lng) || lng < -180 || lng > 180 {
		return 0, 0, fmt.Errorf("longitude must be between -180 and 180, got: %f", lng)
	}
	return lat, lng, nil
}

// ParseYear parses a year given on the command line.
func ParseYear(s string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid year %q: %w", s, err)
	}
	return year, nil
}

// TimeLocation resolves Timezone through the time zone database.
func (c *Config) TimeLocation() (*time.Location, error) {
	if strings.TrimSpace(c.Timezone) == "" {
		return nil, fmt.Errorf("timezone cannot be empty")
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Weekday parses FirstWeekday; full names and three-letter abbreviations
// are accepted in any case.
func (c *Config) Weekday() (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(c.FirstWeekday))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("invalid first_weekday: %s", c.FirstWeekday)
}

// String returns a string representation of the config
func (c *Config) String() string {
	data, _ := yaml.Marshal(c)
	return string(data)
}
