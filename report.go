package main

import (
	"fmt"
	"strings"
	"time"

	"timewell/activity"
	"timewell/analysis"
	"timewell/coverage"
	"timewell/timeutil"
	"timewell/tracker"
)

// report prints today's activity log, the tracking-window coverage, and a
// per-day aggregate over the last N days.
func report(t *tracker.Tracker, days int) {
	if days < 1 {
		days = 1
	}
	if days > analysis.MaxRangeDays {
		days = analysis.MaxRangeDays
	}
	now := time.Now()
	acts := t.Activities()
	today := timeutil.Today(now)

	fmt.Println(now.Format("Date : Jan 2, 2006 , Monday"))
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("%-13s | %-14s | %-10s | %s\n", "Time Range", "Duration", "Type", "Title")
	fmt.Println(strings.Repeat("-", 60))
	for _, a := range activity.ForDate(acts, today) {
		span := timeutil.FormatClock(a.StartTime) + "-"
		dur := "--"
		if a.EndTime != nil {
			span += timeutil.FormatClock(*a.EndTime)
			dur = timeutil.HumanDuration(a.Minutes())
		} else {
			span += "     "
			dur = "running"
		}
		title := a.TaskTitle
		if title == "" {
			title = "Untitled"
		}
		fmt.Printf("%-13s | %-14s | %-10s | %s\n", span, dur, a.Type, title)
	}
	fmt.Println(strings.Repeat("-", 60))

	s := t.Settings()
	cov := coverage.Compute(s.TrackStart, s.TrackEnd, acts, today, now)
	fmt.Printf("Tracking period %s-%s : %s tracked, %s untracked, %s remaining\n",
		s.TrackStart, s.TrackEnd,
		timeutil.HumanDuration(cov.TrackedMinutes),
		timeutil.HumanDuration(cov.ElapsedMinutes-cov.TrackedMinutes),
		timeutil.HumanDuration(cov.RemainingMinutes))

	r := analysis.LastNDays(days, now)
	fmt.Println()
	fmt.Printf("Last %d days\n", days)
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("%-12s | %-10s | %-10s | %-10s | %s\n", "Date", "Value", "Incidental", "Waste", "Effort")
	fmt.Println(strings.Repeat("-", 60))
	total := 0
	for _, b := range analysis.Aggregate(acts, r) {
		fmt.Printf("%-12s | %-10d | %-10d | %-10d | %d\n",
			b.Date,
			b.ByType[activity.TypeValue],
			b.ByType[activity.TypeIncidental],
			b.ByType[activity.TypeWaste],
			b.Effort)
		total += b.TotalMinutes()
	}
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Total tracked : %s\n", timeutil.HumanDuration(total))
}
