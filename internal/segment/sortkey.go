package segment

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"tapescript/internal/transcript"
)

// UnrecognizedFilenameError reports a path whose base name matches neither
// segment naming convention.
type UnrecognizedFilenameError struct {
	Path string
}

func (e *UnrecognizedFilenameError) Error() string {
	return fmt.Sprintf("unrecognized transcript filename %q", e.Path)
}

// Key orders segments by (date, start time). A key without a date sorts
// before every dated key; ties are left to the caller's stable sort so
// discovery order survives.
type Key struct {
	Date    time.Time
	HasDate bool
	Start   time.Duration
}

// Compare returns -1, 0, or 1 ordering k against other.
func (k Key) Compare(other Key) int {
	switch {
	case !k.HasDate && other.HasDate:
		return -1
	case k.HasDate && !other.HasDate:
		return 1
	case k.HasDate && other.HasDate:
		if k.Date.Before(other.Date) {
			return -1
		}
		if k.Date.After(other.Date) {
			return 1
		}
	}
	switch {
	case k.Start < other.Start:
		return -1
	case k.Start > other.Start:
		return 1
	}
	return 0
}

// shape identifies which naming convention a base name follows.
type shape int

const (
	shapeUnknown shape = iota
	shapeFlat          // YYYYMMDD_HHMMSS_HHMMSS
	shapeNested        // HHMMSS-HHMMSS
)

// KeyForPath sniffs the filename shape and parses the ordering key for one
// segment file.
func KeyForPath(path string) (Key, error) {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	switch sniffShape(name) {
	case shapeFlat:
		return parseFlat(path, name)
	case shapeNested:
		return parseNested(path, name)
	default:
		return Key{}, &UnrecognizedFilenameError{Path: path}
	}
}

func sniffShape(name string) shape {
	if fields := strings.Split(name, "_"); len(fields) == 3 &&
		allDigits(fields[0], 8) && allDigits(fields[1], 6) && allDigits(fields[2], 6) {
		return shapeFlat
	}
	if fields := strings.Split(name, "-"); len(fields) == 2 &&
		allDigits(fields[0], 6) && allDigits(fields[1], 6) {
		return shapeNested
	}
	return shapeUnknown
}

func allDigits(value string, length int) bool {
	if len(value) != length {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}

func parseFlat(path, name string) (Key, error) {
	fields := strings.Split(name, "_")
	date, err := time.Parse(transcript.DateFormatCompact, fields[0])
	if err != nil {
		return Key{}, &UnrecognizedFilenameError{Path: path}
	}
	start, ok := parseClockDigits(fields[1])
	if !ok {
		return Key{}, &UnrecognizedFilenameError{Path: path}
	}
	return Key{Date: date, HasDate: true, Start: start}, nil
}

func parseNested(path, name string) (Key, error) {
	fields := strings.Split(name, "-")
	start, ok := parseClockDigits(fields[0])
	if !ok {
		return Key{}, &UnrecognizedFilenameError{Path: path}
	}
	key := Key{Start: start}
	if _, date, ok := DayDirectory(path); ok {
		key.Date = date
		key.HasDate = true
	}
	return key, nil
}

// parseClockDigits converts a six-digit HHMMSS string into elapsed time since
// midnight, rejecting out-of-range components.
func parseClockDigits(value string) (time.Duration, bool) {
	if !allDigits(value, 6) {
		return 0, false
	}
	h := int(value[0]-'0')*10 + int(value[1]-'0')
	m := int(value[2]-'0')*10 + int(value[3]-'0')
	s := int(value[4]-'0')*10 + int(value[5]-'0')
	if h > 23 || m > 59 || s > 59 {
		return 0, false
	}
	return time.Duration(h*3600+m*60+s) * time.Second, true
}

// DayDirectory recovers the day directory and its calendar date for a nested
// segment path. The immediate parent may be a dashed YYYY-MM-DD directory, or
// the path may end in a YYYY/MM/DD ancestry; anything else reports no date.
func DayDirectory(path string) (string, time.Time, bool) {
	dayDir := filepath.Dir(path)
	dayName := filepath.Base(dayDir)

	if date, err := time.Parse(transcript.DateFormat, dayName); err == nil {
		return dayDir, date, true
	}

	monthDir := filepath.Dir(dayDir)
	yearDir := filepath.Dir(monthDir)
	monthName := filepath.Base(monthDir)
	yearName := filepath.Base(yearDir)

	if allDigits(yearName, 4) && allDigits(monthName, 2) && allDigits(dayName, 2) {
		combined := yearName + "-" + monthName + "-" + dayName
		if date, err := time.Parse(transcript.DateFormat, combined); err == nil {
			return dayDir, date, true
		}
	}

	return "", time.Time{}, false
}

// CommonDayDirectory reports the single day directory shared by every path,
// or false when any path lacks day-directory evidence or the paths disagree.
func CommonDayDirectory(paths []string) (string, time.Time, bool) {
	var (
		dir   string
		date  time.Time
		found bool
	)
	for _, path := range paths {
		d, dt, ok := DayDirectory(path)
		if !ok {
			return "", time.Time{}, false
		}
		if !found {
			dir, date, found = d, dt, true
			continue
		}
		if d != dir || !dt.Equal(date) {
			return "", time.Time{}, false
		}
	}
	if !found {
		return "", time.Time{}, false
	}
	return dir, date, true
}
