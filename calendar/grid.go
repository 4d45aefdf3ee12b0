package calendar

import "time"

// Grid lays out the days of a month as weeks.
type Grid interface {
	// MonthWeeks returns the days of month as rows of seven slots. Slots
	// belonging to the previous or next month hold 0.
	MonthWeeks(year int, month time.Month) [][7]int
	// Weekdays returns the column order of every row.
	Weekdays() [7]time.Weekday
}

// WeekGrid is a Grid whose rows start on FirstWeekday.
type WeekGrid struct {
	FirstWeekday time.Weekday
}

// SundayFirst is the default grid.
var SundayFirst = WeekGrid{FirstWeekday: time.Sunday}

func (g WeekGrid) Weekdays() [7]time.Weekday {
	var days [7]time.Weekday
	for i := range days {
		days[i] = (g.FirstWeekday + time.Weekday(i)) % 7
	}
	return days
}

func (g WeekGrid) MonthWeeks(year int, month time.Month) [][7]int {
	first := time.Date(year, month, 1, 12, 0, 0, 0, time.UTC)
	// Day 0 of the next month is the last day of this one
	daysInMonth := time.Date(year, month+1, 0, 12, 0, 0, 0, time.UTC).Day()
	offset := (int(first.Weekday()) - int(g.FirstWeekday%7) + 7) % 7

	var weeks [][7]int
	var week [7]int
	slot := offset
	for day := 1; day <= daysInMonth; day++ {
		week[slot] = day
		slot++
		if slot == 7 {
			weeks = append(weeks, week)
			week = [7]int{}
			slot = 0
		}
	}
	if slot > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}
