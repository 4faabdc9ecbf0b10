package worktime

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ParseClock parses a "HH:MM" wall-clock string into minutes since midnight.
func ParseClock(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q: expected HH:MM", clock)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", clock, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", clock, err)
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock value %q out of range", clock)
	}

	return hours*60 + minutes, nil
}

// IsValidClock reports whether s is a well-formed "HH:MM" wall-clock string.
func IsValidClock(s string) bool {
	_, err := ParseClock(s)
	return err == nil
}

// MinutesBetween returns the elapsed minutes between two "HH:MM" wall-clock
// values. A check-out earlier than the check-in means the shift crossed
// midnight, so the difference wraps by 24 hours. Missing or malformed input
// contributes nothing.
func MinutesBetween(checkIn, checkOut string) int {
	if checkIn == "" || checkOut == "" {
		return 0
	}

	in, err := ParseClock(checkIn)
	if err != nil {
		return 0
	}
	out, err := ParseClock(checkOut)
	if err != nil {
		return 0
	}

	diff := out - in
	if diff < 0 {
		diff += minutesPerDay
	}
	return diff
}

// FormatDuration renders a minute total as "9h 30m", dropping the minute
// component when it is zero. Non-positive totals render as "-".
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "-"
	}
	h := minutes / 60
	m := minutes % 60
	if m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dh", h)
}

// MinutesToHours converts integral minutes to hours rounded to two decimal
// places for presentation. Raw minute totals stay integral everywhere else.
func MinutesToHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*100) / 100
}
