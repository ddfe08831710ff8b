// Package core owns the expense domain model plus the date/time
// normalization and window arithmetic the query engine is built on.
//
// The backing store serializes dates and times either as literal text or as
// spreadsheet serial numbers (day counts from the 1899-12-30 epoch, with the
// fractional part encoding time-of-day). Everything downstream works on the
// canonical string forms "2006-01-02" and "15:04".
package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// sheetEpoch is the conventional spreadsheet serial-number epoch.
var sheetEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// serialThreshold guards against reinterpreting small integers as dates.
// Inherited from the external data format contract; do not "improve" it.
const serialThreshold = 1000

// NormalizeDate converts a stored date cell to canonical "2006-01-02" form.
// A cell whose full content parses as a number greater than 1000 is decoded
// as a serial day count; anything else is literal text, trimmed. Hyphenated
// date strings never parse as floats, so "2024-01-05" stays untouched.
// Empty input yields "" (unknown date).
func NormalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil && n > serialThreshold {
		d := sheetEpoch.Add(time.Duration(n * float64(24*time.Hour)))
		return d.UTC().Format("2006-01-02")
	}
	return s
}

// NormalizeTime converts a stored time cell to canonical "15:04" form.
// A cell parsing as a number in [0, 1) is a fraction of a day, rounded to
// the nearest minute; anything else is literal text, trimmed. Empty input
// yields "" (no time recorded).
func NormalizeTime(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil && n >= 0 && n < 1 {
		total := int(math.Round(n * 24 * 60))
		return fmt.Sprintf("%02d:%02d", total/60, total%60)
	}
	return s
}

// Instant combines a canonical date and optional clock time into the value
// used for range comparisons. A missing time means midnight. An empty date
// yields the zero time (sorts before every real bound). A malformed date is
// an error; callers skip such rows. A malformed or out-of-range clock is
// ignored, keeping midnight.
func Instant(date, clock string) (time.Time, error) {
	d := strings.TrimSpace(date)
	if d == "" {
		return time.Time{}, nil
	}
	if len(d) > 10 {
		d = d[:10]
	}
	t, err := time.Parse("2006-01-02", d)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", date, err)
	}
	if parts := strings.Split(strings.TrimSpace(clock), ":"); len(parts) >= 2 {
		h, errH := strconv.Atoi(parts[0])
		m, errM := strconv.Atoi(parts[1])
		if errH == nil && errM == nil && h >= 0 && h <= 23 && m >= 0 && m <= 59 {
			t = t.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
		}
	}
	return t, nil
}
