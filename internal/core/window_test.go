package core

import (
	"testing"
	"time"

	"pgregory.net/rapid"
)

func TestMonthWindow_LastDay(t *testing.T) {
	cases := []struct {
		year    int
		month   time.Month
		lastDay int
	}{
		{2024, time.February, 29}, // leap year
		{2023, time.February, 28},
		{2024, time.April, 30},
		{2024, time.January, 31},
		{2024, time.December, 31},
		{1900, time.February, 28}, // century non-leap
		{2000, time.February, 29}, // 400-year leap
	}
	for _, tc := range cases {
		ref := time.Date(tc.year, tc.month, 10, 15, 30, 0, 0, time.UTC)
		w := MonthWindow(ref)
		if w.Start.Day() != 1 || w.Start.Month() != tc.month {
			t.Errorf("%d-%s: start = %v, want first of month", tc.year, tc.month, w.Start)
		}
		if w.End.Day() != tc.lastDay || w.End.Month() != tc.month {
			t.Errorf("%d-%s: end = %v, want day %d", tc.year, tc.month, w.End, tc.lastDay)
		}
		if w.End.Hour() != 23 || w.End.Minute() != 59 || w.End.Second() != 59 {
			t.Errorf("%d-%s: end = %v, want end of day", tc.year, tc.month, w.End)
		}
	}
}

func TestWeekWindow_AlwaysMondayThroughSunday(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ref := time.Date(
			rapid.IntRange(1970, 2100).Draw(t, "year"),
			time.Month(rapid.IntRange(1, 12).Draw(t, "month")),
			rapid.IntRange(1, 28).Draw(t, "day"),
			rapid.IntRange(0, 23).Draw(t, "hour"),
			rapid.IntRange(0, 59).Draw(t, "minute"),
			0, 0, time.UTC)

		w := WeekWindow(ref)
		if w.Start.Weekday() != time.Monday {
			t.Fatalf("week start %v is a %s, want Monday", w.Start, w.Start.Weekday())
		}
		if w.End.Weekday() != time.Sunday {
			t.Fatalf("week end %v is a %s, want Sunday", w.End, w.End.Weekday())
		}
		if !w.Contains(ref) {
			t.Fatalf("week %v does not contain its reference %v", w, ref)
		}
		if got := w.End.Sub(w.Start); got >= 7*24*time.Hour || got < 6*24*time.Hour {
			t.Fatalf("week span %v out of range", got)
		}
	})
}

func TestDayWindow(t *testing.T) {
	ref := time.Date(2024, 3, 15, 14, 45, 12, 0, time.UTC)
	w := DayWindow(ref)
	if !w.Contains(ref) {
		t.Error("day window should contain its reference")
	}
	if w.Contains(ref.AddDate(0, 0, 1)) {
		t.Error("day window should not contain the next day")
	}
	if !w.Contains(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Error("day window should include midnight")
	}
	if !w.Contains(time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC)) {
		t.Error("day window should include end of day")
	}
}

func TestWindowContains_BoundsInclusive(t *testing.T) {
	w := MonthWindow(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	if !w.Contains(w.Start) {
		t.Error("start bound should be inclusive")
	}
	if !w.Contains(w.End) {
		t.Error("end bound should be inclusive")
	}
}
