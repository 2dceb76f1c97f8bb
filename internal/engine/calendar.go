package engine

import (
	"errors"
	"time"
)

// ErrInvalidRange is returned when a requested range ends before it starts.
var ErrInvalidRange = errors.New("range end is before range start")

// DayFormat is the calendar-day key format used throughout the engine.
const DayFormat = "2006-01-02"

// WeekStart selects which weekday opens a week when grouping days.
type WeekStart int

const (
	WeekStartMonday WeekStart = iota
	WeekStartSunday
)

// DayOf truncates t to midnight of its calendar day in loc.
// All bucketing for one computation must use the same location, otherwise
// events near midnight drift across day boundaries between calls.
func DayOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DayKey returns the calendar-day key ("2006-01-02") for t in loc.
func DayKey(t time.Time, loc *time.Location) string {
	return DayOf(t, loc).Format(DayFormat)
}

// EnumerateDays returns every calendar day from from to to inclusive, in loc,
// oldest first. The sequence is dense: a range with no events still yields one
// entry per day. Returns ErrInvalidRange when to falls before from.
func EnumerateDays(from, to time.Time, loc *time.Location) ([]time.Time, error) {
	start := DayOf(from, loc)
	end := DayOf(to, loc)
	if end.Before(start) {
		return nil, ErrInvalidRange
	}

	days := make([]time.Time, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days, nil
}

// StartOfWeek returns the most recent week-start day at or before day.
func StartOfWeek(day time.Time, ws WeekStart) time.Time {
	weekday := int(day.Weekday()) // 0=Sunday
	var back int
	switch ws {
	case WeekStartSunday:
		back = weekday
	default:
		// Monday start: treat Sunday as day 7 so Mon=1..Sun=7
		if weekday == 0 {
			weekday = 7
		}
		back = weekday - 1
	}
	return day.AddDate(0, 0, -back)
}

// ParseWeekStart maps a configuration value to a WeekStart.
func ParseWeekStart(name string) (WeekStart, error) {
	switch name {
	case "", "monday":
		return WeekStartMonday, nil
	case "sunday":
		return WeekStartSunday, nil
	}
	return WeekStartMonday, errors.New("week start must be \"monday\" or \"sunday\"")
}
