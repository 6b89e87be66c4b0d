// Package input turns raw non-blocking terminal reads into time queries.
// It has no dependencies beyond the standard library; bytes come in, lines
// and validated query times come out.
package input

import (
	"errors"
	"strings"
	"time"
)

// nowLiteral asks for the current simulated time instead of a fixed clock.
const nowLiteral = "now"

// ErrBadFormat reports a query line that is neither "now" nor strict HH:MM.
var ErrBadFormat = errors.New(`invalid time: want "now" or "HH:MM"`)

// Accumulator gathers bytes from non-blocking reads until full lines are
// available. Partial input stays buffered across polls.
type Accumulator struct {
	buf []byte
}

// Feed appends raw bytes and returns any completed lines with terminators
// stripped. A nil or empty chunk returns no lines.
func (a *Accumulator) Feed(p []byte) []string {
	var lines []string
	for _, b := range p {
		if b == '\n' {
			lines = append(lines, strings.TrimSuffix(string(a.buf), "\r"))
			a.buf = a.buf[:0]
			continue
		}
		a.buf = append(a.buf, b)
	}
	return lines
}

// Pending returns the buffered partial line, for diagnostics.
func (a *Accumulator) Pending() string {
	return string(a.buf)
}

// ParseQuery validates a submitted line and resolves it to a query time.
// "now" keeps the simulated time as is; HH:MM overrides the hour and minute
// on the simulated date, leaving the other fields untouched.
func ParseQuery(line string, now time.Time) (time.Time, error) {
	if line == nowLiteral {
		return now, nil
	}
	hour, minute, err := parseClock(line)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, now.Second(), 0, now.Location()), nil
}

// parseClock enforces the strict five-character HH:MM grammar: digits in the
// numeric positions, a colon in the middle, hour 0-23, minute 0-59.
func parseClock(s string) (hour, minute int, err error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, 0, ErrBadFormat
	}
	for _, i := range [...]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, 0, ErrBadFormat
		}
	}
	hour = int(s[0]-'0')*10 + int(s[1]-'0')
	minute = int(s[3]-'0')*10 + int(s[4]-'0')
	if hour > 23 || minute > 59 {
		return 0, 0, ErrBadFormat
	}
	return hour, minute, nil
}
