// Package analysis buckets completed activities by calendar date for
// chart consumption.
package analysis

import (
	"time"

	"timewell/activity"
	"timewell/timeutil"
)

// MaxRangeDays caps how many calendar days one analysis range may span.
const MaxRangeDays = 10

// Range is an inclusive local calendar date range.
type Range struct {
	Start string
	End   string
}

// LastNDays returns the range covering the n days ending today.
func LastNDays(n int, now time.Time) Range {
	if n < 1 {
		n = 1
	}
	end := timeutil.Today(now)
	start := timeutil.LocalDate(now.AddDate(0, 0, -(n - 1)))
	return Range{Start: start, End: end}
}

// Days returns the number of calendar days the range spans, or 0 when the
// range is malformed or reversed.
func (r Range) Days() int {
	start, err := time.Parse(timeutil.DateLayout, r.Start)
	if err != nil {
		return 0
	}
	end, err := time.Parse(timeutil.DateLayout, r.End)
	if err != nil {
		return 0
	}
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// Dates returns every date in the range, ascending.
func (r Range) Dates() []string {
	n := r.Days()
	if n == 0 {
		return nil
	}
	start, _ := time.Parse(timeutil.DateLayout, r.Start)
	dates := make([]string, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, start.AddDate(0, 0, i).Format(timeutil.DateLayout))
	}
	return dates
}

// Clamp narrows the range to at most MaxRangeDays, keeping the end date.
func (r Range) Clamp() Range {
	if r.Days() <= MaxRangeDays {
		return r
	}
	end, _ := time.Parse(timeutil.DateLayout, r.End)
	r.Start = end.AddDate(0, 0, -(MaxRangeDays - 1)).Format(timeutil.DateLayout)
	return r
}

// DayTotals is one date's aggregated minutes and effort. Every known
// activity type and well-being area is present, zero when unmatched.
type DayTotals struct {
	Date   string
	ByType map[activity.Type]int
	ByArea map[activity.Area]int
	Effort int
}

// Aggregate computes per-day totals over the range, one bucket per date in
// ascending order. Only activities with an end time whose date falls inside
// the range participate. Absent durations and effort ratings count as 0.
func Aggregate(acts []activity.Activity, r Range) []DayTotals {
	dates := r.Dates()
	buckets := make([]DayTotals, 0, len(dates))
	index := make(map[string]int, len(dates))
	for i, date := range dates {
		day := DayTotals{
			Date:   date,
			ByType: make(map[activity.Type]int, len(activity.Types())),
			ByArea: make(map[activity.Area]int, len(activity.Areas())),
		}
		for _, t := range activity.Types() {
			day.ByType[t] = 0
		}
		for _, a := range activity.Areas() {
			day.ByArea[a] = 0
		}
		buckets = append(buckets, day)
		index[date] = i
	}

	for _, a := range acts {
		if a.EndTime == nil {
			continue
		}
		i, ok := index[a.Date]
		if !ok {
			continue
		}
		if _, known := buckets[i].ByType[a.Type]; known {
			buckets[i].ByType[a.Type] += a.Minutes()
		}
		if _, known := buckets[i].ByArea[a.Area]; known {
			buckets[i].ByArea[a.Area] += a.Minutes()
		}
		buckets[i].Effort += a.Effort()
	}
	return buckets
}

// TotalMinutes sums every known-type minute count in the bucket.
func (d DayTotals) TotalMinutes() int {
	total := 0
	for _, mins := range d.ByType {
		total += mins
	}
	return total
}
