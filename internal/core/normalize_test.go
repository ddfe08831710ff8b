package core

import (
	"fmt"
	"testing"
	"time"

	"pgregory.net/rapid"
)

func TestNormalizeDate_SerialNumber(t *testing.T) {
	// Serial 44927 is 2023-01-01 by the 1899-12-30 epoch convention.
	cases := []struct {
		raw  string
		want string
	}{
		{"44927", "2023-01-01"},
		{"45000", "2023-03-15"},
		{"45000.5", "2023-03-15"},
		{"45352", "2024-03-01"},
	}
	for _, tc := range cases {
		if got := NormalizeDate(tc.raw); got != tc.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeDate_LiteralText(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"2024-01-05", "2024-01-05"}, // hyphenated date must never decode as a serial
		{"  2024-01-05  ", "2024-01-05"},
		{"900", "900"},  // at or below the threshold stays literal
		{"1000", "1000"},
		{"", ""},
		{"   ", ""},
		{"not a date", "not a date"},
	}
	for _, tc := range cases {
		if got := NormalizeDate(tc.raw); got != tc.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeTime_DayFraction(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"0", "00:00"},
		{"0.5", "12:00"},
		{"0.4375", "10:30"},
		{"0.999", "23:59"},
	}
	for _, tc := range cases {
		if got := NormalizeTime(tc.raw); got != tc.want {
			t.Errorf("NormalizeTime(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeTime_LiteralText(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"10:30", "10:30"},
		{" 10:30 ", "10:30"},
		{"1", "1"}, // outside [0,1), stays literal
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeTime(tc.raw); got != tc.want {
			t.Errorf("NormalizeTime(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalize_IdempotentOnCanonicalForms(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		y := rapid.IntRange(1970, 2100).Draw(t, "year")
		m := rapid.IntRange(1, 12).Draw(t, "month")
		d := rapid.IntRange(1, 28).Draw(t, "day")
		date := fmt.Sprintf("%04d-%02d-%02d", y, m, d)
		if got := NormalizeDate(date); got != date {
			t.Fatalf("NormalizeDate(%q) = %q, not idempotent", date, got)
		}

		h := rapid.IntRange(0, 23).Draw(t, "hour")
		min := rapid.IntRange(0, 59).Draw(t, "minute")
		clock := fmt.Sprintf("%02d:%02d", h, min)
		if got := NormalizeTime(clock); got != clock {
			t.Fatalf("NormalizeTime(%q) = %q, not idempotent", clock, got)
		}
	})
}

func TestInstant(t *testing.T) {
	t.Run("date only is midnight", func(t *testing.T) {
		got, err := Instant("2024-03-15", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("date and time", func(t *testing.T) {
		got, err := Instant("2024-03-15", "10:30")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("malformed clock keeps midnight", func(t *testing.T) {
		for _, clock := range []string{"24:00", "ten", "10", "10:xx"} {
			got, err := Instant("2024-03-15", clock)
			if err != nil {
				t.Fatalf("unexpected error for clock %q: %v", clock, err)
			}
			want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
			if !got.Equal(want) {
				t.Errorf("clock %q: got %v, want midnight", clock, got)
			}
		}
	})

	t.Run("empty date is the zero instant", func(t *testing.T) {
		got, err := Instant("", "10:30")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.IsZero() {
			t.Errorf("got %v, want zero time", got)
		}
	})

	t.Run("malformed date is an error", func(t *testing.T) {
		if _, err := Instant("not-a-date", ""); err == nil {
			t.Fatal("expected error for malformed date")
		}
	})

	t.Run("timestamp prefix is honored", func(t *testing.T) {
		got, err := Instant("2024-03-15T08:00:00Z", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})
}
