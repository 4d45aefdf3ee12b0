package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/devskill-org/sun-calendar/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(new(strings.Builder))
	cmd.SetErr(new(strings.Builder))
	return cmd.Execute()
}

func TestRootCmd_WritesCalendar(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sun_calendar.html")

	err := execute(t, "-l", "32.7,-117.1", "-y", "2024", "-z", "US/Pacific", "-o", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	doc := string(data)

	assert.Contains(t, doc, "Sunrise/Sunset Calendar for 2024")
	assert.Equal(t, 1, strings.Count(doc, `<link rel="stylesheet"`))
	assert.Equal(t, 12, strings.Count(doc, `<table class="monthCalendar"`))
	// every day of the leap year has both times
	assert.Equal(t, 366, strings.Count(doc, `<span class="sunrise">`))
	assert.Equal(t, 366, strings.Count(doc, `<span class="sunset">`))
}

func TestRootCmd_ConfigFileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "oslo.html")
	cfgPath := filepath.Join(dir, "sun.yaml")
	yamlConfig := "location: \"59.91,10.75\"\n" +
		"year: 2023\n" +
		"timezone: Europe/Oslo\n" +
		"stylesheet: oslo.css\n" +
		"ephemeris: sunrise\n" +
		"output: " + out + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(yamlConfig), 0644))

	// the flag wins over the file
	err := execute(t, "--config", cfgPath, "--year", "2025", "--first-weekday", "monday")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	doc := string(data)
	assert.Contains(t, doc, "Sunrise/Sunset Calendar for 2025")
	assert.Contains(t, doc, `href="oslo.css"`)
	assert.Contains(t, doc, `<tr><td class="weekdayName">M</td>`)
	assert.Equal(t, 365, strings.Count(doc, `<span class="sunrise">`))
}

func TestRootCmd_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad location", []string{"-l", "32.7"}, "invalid location"},
		{"bad year", []string{"-y", "next"}, "invalid year"},
		{"unknown zone", []string{"-z", "Nowhere/Special"}, "invalid timezone"},
		{"bad ephemeris", []string{"--ephemeris", "pyephem"}, "invalid ephemeris"},
		{"positional argument", []string{"extra"}, "unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "out.html")
			err := execute(t, append(tt.args, "-o", out)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)

			_, statErr := os.Stat(out)
			assert.True(t, os.IsNotExist(statErr), "no output expected on failure")
		})
	}
}

func TestRun_PolarNightWritesNothing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "svalbard.html")
	cfg := config.DefaultConfig()
	cfg.Location = "78.22,15.65"
	cfg.Timezone = "Arctic/Longyearbyen"
	cfg.Year = 2024
	cfg.Output = out
	require.NoError(t, cfg.Validate())

	err := run(cfg, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no sunrise")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}
