// internal/application/usecase/window_test.go
package usecase

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		name      string
		yearMonth string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			// 2024-05-01 is a Wednesday, 2024-05-31 a Friday.
			name:      "mid-week month edges expand to the surrounding weekend",
			yearMonth: "2024-05",
			wantStart: date(2024, time.April, 28),
			wantEnd:   date(2024, time.June, 1),
		},
		{
			// 2024-09-01 is already a Sunday; only the tail expands.
			name:      "month starting on Sunday keeps its first day",
			yearMonth: "2024-09",
			wantStart: date(2024, time.September, 1),
			wantEnd:   date(2024, time.October, 5),
		},
		{
			// 2026-02 runs Sunday the 1st through Saturday the 28th; no
			// expansion on either side.
			name:      "perfectly aligned month",
			yearMonth: "2026-02",
			wantStart: date(2026, time.February, 1),
			wantEnd:   date(2026, time.February, 28),
		},
		{
			name:      "december expands into the next year",
			yearMonth: "2025-12",
			wantStart: date(2025, time.November, 30),
			wantEnd:   date(2026, time.January, 3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := MonthWindow(tt.yearMonth)
			if err != nil {
				t.Fatalf("MonthWindow(%q) error: %v", tt.yearMonth, err)
			}
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
			if start.Weekday() != time.Sunday {
				t.Errorf("start falls on %v, want Sunday", start.Weekday())
			}
			if end.Weekday() != time.Saturday {
				t.Errorf("end falls on %v, want Saturday", end.Weekday())
			}
		})
	}
}

func TestMonthWindowInvalid(t *testing.T) {
	for _, in := range []string{"", "2024", "2024-5", "05-2024", "2024-13"} {
		if _, _, err := MonthWindow(in); err == nil {
			t.Errorf("MonthWindow(%q): expected error", in)
		}
	}
}

func TestDayWindow(t *testing.T) {
	start, end, err := DayWindow("2024-05-10")
	if err != nil {
		t.Fatalf("DayWindow error: %v", err)
	}
	wantStart := date(2024, time.May, 10)
	wantEnd := time.Date(2024, time.May, 10, 23, 59, 59, int(999*time.Millisecond), time.Local)
	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", end, wantEnd)
	}
}

func TestDayWindowInvalid(t *testing.T) {
	for _, in := range []string{"", "2024-05", "10-05-2024", "2024-05-32"} {
		if _, _, err := DayWindow(in); err == nil {
			t.Errorf("DayWindow(%q): expected error", in)
		}
	}
}
