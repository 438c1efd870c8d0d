package transcript

import (
	"errors"
	"strings"
	"time"
)

// ErrNoTimestamps indicates the input contained no timestamped lines, leaving
// nothing to anchor the adjustment on.
var ErrNoTimestamps = errors.New("no timestamped lines were found in the input")

// Result describes one adjusted document.
type Result struct {
	// Body is the rewritten text. Trailing-newline presence matches the input.
	Body string
	// First and Last are the absolute timestamps of the first and last
	// timestamped lines. Last may fall on a later calendar date than First
	// when the session crossed midnight.
	First time.Time
	Last  time.Time
	// OutOfOrder is set when any timestamped line precedes the one before it.
	OutOfOrder bool
}

// Adjust rewrites every timestamped line in contents against the anchor
// instant. A line is timestamped when its first eight bytes form a strict
// HH:MM:SS value; the value is read as elapsed time since the session start
// and replaced with the recomputed absolute time-of-day. All other lines are
// preserved byte-for-byte.
func Adjust(contents string, anchor time.Time) (*Result, error) {
	body := contents
	trailingNewline := strings.HasSuffix(contents, "\n")
	if trailingNewline {
		body = body[:len(body)-1]
	}

	var (
		lines   []string
		first   time.Time
		last    time.Time
		matched bool
		badOrd  bool
	)
	if body != "" || !trailingNewline {
		lines = strings.Split(body, "\n")
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		h, m, s, ok := sniffClockPrefix(line)
		if !ok {
			out = append(out, line)
			continue
		}
		absolute := anchor.Add(secondsFromMidnight(h, m, s))
		if !matched {
			first = absolute
		} else if absolute.Before(last) {
			badOrd = true
		}
		last = absolute
		matched = true
		out = append(out, absolute.Format(ClockFormat)+line[8:])
	}

	if !matched {
		return nil, ErrNoTimestamps
	}

	adjusted := strings.Join(out, "\n")
	if trailingNewline {
		adjusted += "\n"
	}

	return &Result{
		Body:       adjusted,
		First:      first,
		Last:       last,
		OutOfOrder: badOrd,
	}, nil
}

// sniffClockPrefix validates an 8-byte HH:MM:SS prefix with colons at fixed
// positions and in-range components.
func sniffClockPrefix(line string) (h, m, s int, ok bool) {
	if len(line) < 8 {
		return 0, 0, 0, false
	}
	if line[2] != ':' || line[5] != ':' {
		return 0, 0, 0, false
	}
	for _, idx := range [...]int{0, 1, 3, 4, 6, 7} {
		if line[idx] < '0' || line[idx] > '9' {
			return 0, 0, 0, false
		}
	}
	h = int(line[0]-'0')*10 + int(line[1]-'0')
	m = int(line[3]-'0')*10 + int(line[4]-'0')
	s = int(line[6]-'0')*10 + int(line[7]-'0')
	if h > 23 || m > 59 || s > 59 {
		return 0, 0, 0, false
	}
	return h, m, s, true
}
