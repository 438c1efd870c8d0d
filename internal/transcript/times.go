package transcript

import (
	"fmt"
	"time"
)

// Format strings shared by the CLI, path builders, and filename parsing.
const (
	ClockFormat        = "15:04:05"
	DateFormat         = "2006-01-02"
	DateFormatCompact  = "20060102"
	ClockFormatCompact = "150405"
)

// ParseClock parses a strict HH:MM:SS value.
func ParseClock(value string) (time.Time, error) {
	t, err := time.Parse(ClockFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: use HH:MM:SS (e.g. 18:06:13)", value)
	}
	return t, nil
}

// ParseDate parses a strict YYYY-MM-DD value.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD (e.g. 2025-01-27)", value)
	}
	return t, nil
}

// Anchor combines a calendar date and a time-of-day into one absolute instant.
func Anchor(date, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(),
		0, time.UTC,
	)
}

// secondsFromMidnight reports how far into its day a time-of-day value falls.
func secondsFromMidnight(h, m, s int) time.Duration {
	return time.Duration(h*3600+m*60+s) * time.Second
}
