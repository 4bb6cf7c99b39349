// Package coverage computes how much of the configured daily tracking
// window has been tracked, left untracked, or not yet elapsed.
package coverage

import (
	"time"

	"timewell/activity"
	"timewell/timeutil"
)

// Coverage partitions the tracking window for one viewed date. The three
// fractions sum to 1 and drive the coverage bar's tracked / untracked /
// not-yet-elapsed segments; Elapsed equals Tracked+Untracked.
type Coverage struct {
	TotalMinutes     int
	ElapsedMinutes   int
	TrackedMinutes   int
	RemainingMinutes int

	Tracked   float64
	Untracked float64
	Elapsed   float64
	Unelapsed float64
}

// Compute derives coverage for the activities filed under date. The
// current instant is only consulted when date is today: then elapsed and
// remaining clamp to the window and tracked counts only activities lying
// fully inside it. For past dates the window counts as fully elapsed and
// every completed activity counts as tracked.
func Compute(trackStart, trackEnd string, acts []activity.Activity, date string, now time.Time) Coverage {
	c := Coverage{TotalMinutes: timeutil.MinutesBetween(trackStart, trackEnd)}
	today := date == timeutil.Today(now)

	if today {
		winStart := timeutil.ClockToday(trackStart, now)
		winEnd := timeutil.ClockToday(trackEnd, now)
		c.ElapsedMinutes = clamp(timeutil.MinutesSinceStart(trackStart, now), 0, c.TotalMinutes)
		c.RemainingMinutes = clamp(timeutil.MinutesRemaining(trackEnd, now), 0, c.TotalMinutes-c.ElapsedMinutes)
		for _, a := range acts {
			if a.Date != date || a.EndTime == nil {
				continue
			}
			if a.StartTime.Before(winStart) || a.EndTime.After(winEnd) {
				continue
			}
			c.TrackedMinutes += a.Minutes()
		}
	} else {
		c.ElapsedMinutes = c.TotalMinutes
		c.RemainingMinutes = 0
		for _, a := range acts {
			if a.Date != date || a.EndTime == nil {
				continue
			}
			c.TrackedMinutes += a.Minutes()
		}
	}

	if c.TotalMinutes <= 0 {
		if !today {
			c.Elapsed = 1
			c.Untracked = 1
		} else {
			c.Unelapsed = 1
		}
		return c
	}

	c.Tracked = clamp01(float64(c.TrackedMinutes) / float64(c.TotalMinutes))
	if today {
		c.Elapsed = clamp01(float64(c.ElapsedMinutes) / float64(c.TotalMinutes))
	} else {
		c.Elapsed = 1
	}
	c.Untracked = c.Elapsed - c.Tracked
	if c.Untracked < 0 {
		c.Untracked = 0
	}
	c.Unelapsed = 1 - c.Elapsed
	return c
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
