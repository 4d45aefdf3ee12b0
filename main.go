// Package main provides the sun calendar entry point and CLI interface.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/devskill-org/sun-calendar/calendar"
	"github.com/devskill-org/sun-calendar/config"
	"github.com/devskill-org/sun-calendar/sun"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// flags holds the raw command line values before they are folded into a
// config.Config.
type flags struct {
	configFile   string
	location     string
	year         string
	timezone     string
	output       string
	stylesheet   string
	width        int
	firstWeekday string
	ephemeris    string
	utc          bool
	verbose      bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	defaults := config.DefaultConfig()

	var (
		cfg    *config.Config
		logger *zap.Logger
	)

	cmd := &cobra.Command{
		Use:   "sun-calendar",
		Short: "Generate an HTML calendar of sunrise and sunset times",
		Long: `Generates a calendar of sunrise and sunset times for a given location, year,
and time zone. The calendar is written as a single HTML page that links an
external stylesheet (calendar.css by default).

Examples:
  # San Diego, current year
  sun-calendar

  # Oslo, 2025, weeks starting on Monday
  sun-calendar -l 59.91,10.75 -y 2025 -z Europe/Oslo --first-weekday monday`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = f.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			logger, err = newLogger(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg, logger)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.configFile, "config", "c", "", "YAML configuration file")
	fs.StringVarP(&f.location, "loc", "l", defaults.Location, "location as lat,long")
	fs.StringVarP(&f.year, "year", "y", strconv.Itoa(defaults.Year), "year")
	fs.StringVarP(&f.timezone, "tz", "z", defaults.Timezone, "timezone")
	fs.StringVarP(&f.output, "output", "o", defaults.Output, "output HTML file")
	fs.StringVar(&f.stylesheet, "css", defaults.Stylesheet, "stylesheet href")
	fs.IntVar(&f.width, "width", defaults.Width, "months per row")
	fs.StringVar(&f.firstWeekday, "first-weekday", defaults.FirstWeekday, "first day of the week")
	fs.StringVar(&f.ephemeris, "ephemeris", defaults.Ephemeris, "sun position library: suncalc or sunrise")
	fs.BoolVar(&f.utc, "utc", defaults.UTC, "show times in UTC instead of the time zone")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// resolve layers defaults, the optional config file and explicitly set flags.
func (f *flags) resolve(fs *pflag.FlagSet) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if f.configFile != "" {
		var err error
		if cfg, err = config.LoadConfig(f.configFile); err != nil {
			return nil, err
		}
	}

	if fs.Changed("loc") {
		cfg.Location = f.location
	}
	if fs.Changed("year") {
		year, err := config.ParseYear(f.year)
		if err != nil {
			return nil, err
		}
		cfg.Year = year
	}
	if fs.Changed("tz") {
		cfg.Timezone = f.timezone
	}
	if fs.Changed("output") {
		cfg.Output = f.output
	}
	if fs.Changed("css") {
		cfg.Stylesheet = f.stylesheet
	}
	if fs.Changed("width") {
		cfg.Width = f.width
	}
	if fs.Changed("first-weekday") {
		cfg.FirstWeekday = f.firstWeekday
	}
	if fs.Changed("ephemeris") {
		cfg.Ephemeris = f.ephemeris
	}
	if fs.Changed("utc") {
		cfg.UTC = f.utc
	}
	if f.verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zc.Build()
}

// run builds the year's table and writes the calendar. Nothing is written
// unless every day could be computed.
func run(cfg *config.Config, logger *zap.Logger) error {
	lat, lng, err := config.ParseLocation(cfg.Location)
	if err != nil {
		return err
	}
	observer, err := sun.NewObserver(lat, lng)
	if err != nil {
		return err
	}
	loc, err := cfg.TimeLocation()
	if err != nil {
		return err
	}
	oracle, err := sun.NewOracle(cfg.Ephemeris)
	if err != nil {
		return err
	}
	weekday, err := cfg.Weekday()
	if err != nil {
		return err
	}

	logger.Debug("Configuration loaded", zap.String("config", cfg.String()))

	builder := sun.NewBuilder(oracle, observer, loc, logger)
	builder.UseUTC = cfg.UTC

	start := time.Now()
	table, err := builder.BuildYear(cfg.Year)
	if err != nil {
		return err
	}
	logger.Debug("Table build finished", zap.Duration("elapsed", time.Since(start)))

	renderer := calendar.NewRenderer(calendar.Options{
		Grid:       calendar.WeekGrid{FirstWeekday: weekday},
		Width:      cfg.Width,
		Stylesheet: cfg.Stylesheet,
		Logger:     logger,
	})
	return renderer.WriteFile(cfg.Output, table, cfg.Year)
}
