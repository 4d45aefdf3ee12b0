// Package calendar renders sun time tables as an HTML year calendar.
package calendar

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"go.uber.org/zap"

	"github.com/devskill-org/sun-calendar/sun"
)

const (
	// TimeFormat renders 6:42am / 7:15pm: 12-hour clock, no leading zero,
	// lowercase suffix.
	TimeFormat = "3:04pm"

	DefaultWidth      = 3
	DefaultStylesheet = "calendar.css"
	DefaultOutput     = "sun_calendar.html"
)

//go:embed templates/calendar.html
var templateFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/calendar.html"))

// Lookup is the read side of a sun times table.
type Lookup interface {
	Get(key sun.DateKey) (sun.SunTimes, bool)
}

// Options configures a Renderer. Zero values select the defaults.
type Options struct {
	Grid       Grid
	Width      int    // months per row, negative values mean 1
	Stylesheet string // href of the external stylesheet
	Title      string // fmt pattern taking the year
	Logger     *zap.Logger
}

// Renderer turns a sun times table into an HTML year calendar.
type Renderer struct {
	grid       Grid
	width      int
	stylesheet string
	title      string
	logger     *zap.Logger
}

func NewRenderer(opts Options) *Renderer {
	r := &Renderer{
		grid:       opts.Grid,
		width:      opts.Width,
		stylesheet: opts.Stylesheet,
		title:      opts.Title,
		logger:     opts.Logger,
	}
	if r.grid == nil {
		r.grid = SundayFirst
	}
	if r.width == 0 {
		r.width = DefaultWidth
	} else if r.width < 1 {
		r.width = 1
	}
	if r.stylesheet == "" {
		r.stylesheet = DefaultStylesheet
	}
	if r.title == "" {
		r.title = "Sunrise/Sunset Calendar for %d"
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	return r
}

type pageView struct {
	Title      string
	Stylesheet string
	Rows       [][]monthView
}

type monthView struct {
	Name     string
	Weekdays []string
	Weeks    [][]dayView
}

type dayView struct {
	Padding bool
	Day     int
	Sunrise string
	Sunset  string
}

// Render returns the complete HTML document for year.
func (r *Renderer) Render(table Lookup, year int) (string, error) {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, r.page(table, year)); err != nil {
		return "", fmt.Errorf("failed to render calendar for %d: %w", year, err)
	}
	return buf.String(), nil
}

// WriteFile renders the calendar and replaces path with it atomically.
func (r *Renderer) WriteFile(path string, table Lookup, year int) error {
	doc, err := r.Render(table, year)
	if err != nil {
		return err
	}
	if err := WriteFileAtomic(path, []byte(doc), FilePermissions); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	r.logger.Info("Calendar written",
		zap.String("path", path),
		zap.Int("year", year),
		zap.Int("bytes", len(doc)))
	return nil
}

func (r *Renderer) page(table Lookup, year int) pageView {
	page := pageView{
		Title:      fmt.Sprintf(r.title, year),
		Stylesheet: r.stylesheet,
	}
	for first := time.January; first <= time.December; first += time.Month(r.width) {
		var row []monthView
		for m := first; m < first+time.Month(r.width) && m <= time.December; m++ {
			row = append(row, r.month(table, year, m))
		}
		page.Rows = append(page.Rows, row)
	}
	return page
}

func (r *Renderer) month(table Lookup, year int, month time.Month) monthView {
	mv := monthView{Name: month.String()}
	for _, wd := range r.grid.Weekdays() {
		mv.Weekdays = append(mv.Weekdays, wd.String()[:1])
	}
	for _, week := range r.grid.MonthWeeks(year, month) {
		days := make([]dayView, 0, len(week))
		for _, day := range week {
			days = append(days, r.day(table, year, month, day))
		}
		mv.Weeks = append(mv.Weeks, days)
	}
	return mv
}

func (r *Renderer) day(table Lookup, year int, month time.Month, day int) dayView {
	if day == 0 {
		return dayView{Padding: true}
	}
	dv := dayView{Day: day}
	if table == nil {
		return dv
	}
	st, ok := table.Get(sun.DateKey{Year: year, Month: month, Day: day})
	if !ok || st.IsZero() {
		return dv
	}
	dv.Sunrise = FormatClock(st.Sunrise)
	dv.Sunset = FormatClock(st.Sunset)
	return dv
}

// FormatClock formats t as e.g. "6:42am".
func FormatClock(t time.Time) string {
	return t.Format(TimeFormat)
}
