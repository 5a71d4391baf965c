// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package flagdate

import (
	"strconv"
	"strings"
	"time"
)

var months = map[string]time.Month{
	"JANUARY":   time.January,
	"FEBRUARY":  time.February,
	"MARCH":     time.March,
	"APRIL":     time.April,
	"MAY":       time.May,
	"JUNE":      time.June,
	"JULY":      time.July,
	"AUGUST":    time.August,
	"SEPTEMBER": time.September,
	"OCTOBER":   time.October,
	"NOVEMBER":  time.November,
	"DECEMBER":  time.December,
}

// Resolve parses a partial "Month Day" date and attaches a year from the
// reference time. A result more than six months ahead of ref is pulled back
// one year: a "December" order read when now is already January belongs to
// the prior December. Returns false for anything unparseable, including
// sentinels like "TBD"; callers must treat that as "no constraint".
func Resolve(partial string, ref time.Time) (time.Time, bool) {
	fields := strings.Fields(strings.TrimSpace(partial))
	if len(fields) != 2 {
		return time.Time{}, false
	}

	month, ok := months[strings.ToUpper(fields[0])]
	if !ok {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(strings.TrimRight(fields[1], ".,"))
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}

	resolved := time.Date(ref.Year(), month, day, 0, 0, 0, 0, ref.Location())
	// time.Date normalizes out-of-range days (February 30 becomes March 2);
	// treat those as unparseable rather than silently shifting the window.
	if resolved.Day() != day || resolved.Month() != month {
		return time.Time{}, false
	}

	if resolved.After(ref.AddDate(0, 6, 0)) {
		resolved = resolved.AddDate(-1, 0, 0)
	}

	return resolved, true
}

// StartOfDay returns the first instant of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last instant of t's calendar day. An order whose end
// date is December 10 remains active through 23:59:59 on the 10th and
// expires strictly after.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
