package worktime

import (
	"testing"
)

func TestMinutesBetween(t *testing.T) {
	cases := []struct {
		checkIn  string
		checkOut string
		want     int
	}{
		{"08:00", "17:30", 570},
		{"08:00", "12:00", 240},
		{"00:00", "00:00", 0},
		{"09:15", "09:15", 0},
		{"22:00", "06:00", 480},  // overnight shift wraps past midnight
		{"23:59", "00:01", 2},
		{"", "17:00", 0},
		{"08:00", "", 0},
		{"", "", 0},
		{"8am", "17:00", 0},
		{"25:00", "17:00", 0},
		{"08:61", "17:00", 0},
	}
	for _, c := range cases {
		got := MinutesBetween(c.checkIn, c.checkOut)
		if got != c.want {
			t.Errorf("MinutesBetween(%q, %q) = %d, want %d", c.checkIn, c.checkOut, got, c.want)
		}
	}
}

func TestMinutesBetweenNeverNegative(t *testing.T) {
	clocks := []string{"00:00", "06:30", "12:00", "18:45", "23:59"}
	for _, in := range clocks {
		for _, out := range clocks {
			if got := MinutesBetween(in, out); got < 0 {
				t.Errorf("MinutesBetween(%q, %q) = %d, want non-negative", in, out, got)
			}
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{570, "9h 30m"},
		{480, "8h"},
		{61, "1h 1m"},
		{60, "1h"},
		{59, "0h 59m"},
		{0, "-"},
		{-10, "-"},
	}
	for _, c := range cases {
		got := FormatDuration(c.minutes)
		if got != c.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", c.minutes, got, c.want)
		}
	}
}

func TestMinutesToHours(t *testing.T) {
	cases := []struct {
		minutes int
		want    float64
	}{
		{570, 9.5},
		{240, 4},
		{250, 4.17},
		{0, 0},
	}
	for _, c := range cases {
		got := MinutesToHours(c.minutes)
		if got != c.want {
			t.Errorf("MinutesToHours(%d) = %v, want %v", c.minutes, got, c.want)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "08:00", "23:59", "7:05"}
	invalid := []string{"", "24:00", "12:60", "12", "ab:cd", "12:3x"}
	for _, s := range valid {
		if !IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = true, want false", s)
		}
	}
}
