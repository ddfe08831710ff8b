package core

import "time"

// MaxDate is the upper bound used when a query omits its to-date.
var MaxDate = time.Date(9999, time.December, 31, 23, 59, 59, 999999000, time.UTC)

// Window is an inclusive [Start, End] instant range.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

func (w Window) String() string {
	return w.Start.Format("2006-01-02") + ".." + w.End.Format("2006-01-02")
}

// DayWindow returns [00:00:00, 23:59:59.999999] of the day containing ref.
func DayWindow(ref time.Time) Window {
	start := startOfDay(ref)
	return Window{Start: start, End: endOfDay(start)}
}

// WeekWindow returns the Monday-through-Sunday week containing ref,
// [Monday 00:00:00, Sunday 23:59:59.999999].
func WeekWindow(ref time.Time) Window {
	start := ref
	for start.Weekday() != time.Monday {
		start = start.AddDate(0, 0, -1)
	}
	start = startOfDay(start)
	return Window{Start: start, End: endOfDay(start.AddDate(0, 0, 6))}
}

// MonthWindow returns the calendar month containing ref. The last day of
// the month is first-of-next-month minus one day, which handles variable
// month lengths and leap years.
func MonthWindow(ref time.Time) Window {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	last := first.AddDate(0, 1, 0).AddDate(0, 0, -1)
	return Window{Start: first, End: endOfDay(last)}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999000, t.Location())
}
