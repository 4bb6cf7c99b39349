// Package timeutil converts between clock-time strings ("HH:MM"), local
// calendar dates ("YYYY-MM-DD") and absolute instants.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Today returns the local calendar date of now.
func Today(now time.Time) string {
	return LocalDate(now)
}

// LocalDate returns the local calendar date of an instant. The time of day
// is dropped in the instant's own location so the result never drifts to
// the adjacent UTC day.
func LocalDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseClock parses an "HH:MM" clock time.
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time format, use HH:MM")
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, err
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, err
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time out of range: %s", s)
	}
	return hour, minute, nil
}

// ClockMinutes converts an "HH:MM" clock time to minutes after midnight.
// Malformed input counts as midnight.
func ClockMinutes(clock string) int {
	h, m, err := ParseClock(clock)
	if err != nil {
		return 0
	}
	return h*60 + m
}

// MinutesBetween returns the minutes from clock time a to clock time b
// within the same day. Negative when b precedes a.
func MinutesBetween(a, b string) int {
	return ClockMinutes(b) - ClockMinutes(a)
}

// ClockToday pins a clock time onto the calendar day of now, in now's
// location.
func ClockToday(clock string, now time.Time) time.Time {
	h, m, err := ParseClock(clock)
	if err != nil {
		h, m = 0, 0
	}
	return time.Date(now.Year(), now.Month(), now.Day(), h, m, 0, 0, now.Location())
}

// MinutesSinceStart returns whole minutes elapsed since the given clock
// time today, clamped to >= 0.
func MinutesSinceStart(clockStart string, now time.Time) int {
	start := ClockToday(clockStart, now)
	mins := int(now.Sub(start).Minutes())
	if mins < 0 {
		return 0
	}
	return mins
}

// MinutesRemaining returns whole minutes until the given clock time today,
// clamped to >= 0.
func MinutesRemaining(clockEnd string, now time.Time) int {
	end := ClockToday(clockEnd, now)
	mins := int(end.Sub(now).Minutes())
	if mins < 0 {
		return 0
	}
	return mins
}

// FormatClock formats an instant as a local "HH:MM" display string.
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// FormatDate formats an instant's local calendar date for display.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ChartDate formats a "YYYY-MM-DD" date for a chart axis, e.g. "Jun-23".
func ChartDate(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Jan-02")
}

// HumanDuration renders a minute count for people, e.g. "2 hrs 5 mins".
func HumanDuration(mins int) string {
	h := mins / 60
	m := mins % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%d hr %d mins", h, m)
	case h > 0:
		if h == 1 {
			return "1 hr"
		}
		return fmt.Sprintf("%d hrs", h)
	case m == 1:
		return "1 min"
	default:
		return fmt.Sprintf("%d mins", m)
	}
}
