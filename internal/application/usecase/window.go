// internal/application/usecase/window.go
package usecase

import (
	"fmt"
	"time"
)

// MonthWindow expands a "YYYY-MM" month to the full-calendar-week query
// window: the Sunday on/before the 1st through the Saturday on/after the
// last day of the month. Both bounds sit at local midnight, so client
// calendar grids never show a partial week at the edges.
func MonthWindow(yearMonth string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01", yearMonth, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid yearMonth %q: %w", yearMonth, err)
	}
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)

	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, 6-int(last.Weekday()))
	return start, end, nil
}

// DayWindow is the 24-hour window of a single "YYYY-MM-DD" date, inclusive
// at both ends with millisecond resolution.
func DayWindow(date string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	end := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), time.Local)
	return start, end, nil
}
