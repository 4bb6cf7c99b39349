package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timewell/activity"
)

func intp(n int) *int { return &n }

func completed(date string, typ activity.Type, area activity.Area, mins, effort int) activity.Activity {
	start := time.Date(2025, 6, 20, 9, 0, 0, 0, time.Local)
	end := start.Add(time.Duration(mins) * time.Minute)
	a := activity.Activity{
		ID:        date + string(typ),
		Date:      date,
		StartTime: start,
		EndTime:   &end,
		Type:      typ,
		Area:      area,
	}
	a.RecomputeDuration()
	if effort > 0 {
		a.EffortRating = intp(effort)
	}
	return a
}

func TestRangeDates(t *testing.T) {
	r := Range{Start: "2025-06-20", End: "2025-06-23"}
	assert.Equal(t, 4, r.Days())
	assert.Equal(t, []string{"2025-06-20", "2025-06-21", "2025-06-22", "2025-06-23"}, r.Dates())

	assert.Empty(t, Range{Start: "2025-06-23", End: "2025-06-20"}.Dates())
	assert.Empty(t, Range{Start: "bad", End: "2025-06-20"}.Dates())
}

func TestLastNDays(t *testing.T) {
	now := time.Date(2025, 6, 23, 12, 0, 0, 0, time.Local)
	r := LastNDays(7, now)
	assert.Equal(t, "2025-06-17", r.Start)
	assert.Equal(t, "2025-06-23", r.End)
	assert.Equal(t, 7, r.Days())
}

func TestClampKeepsEndDate(t *testing.T) {
	r := Range{Start: "2025-06-01", End: "2025-06-23"}.Clamp()
	assert.Equal(t, MaxRangeDays, r.Days())
	assert.Equal(t, "2025-06-23", r.End)
}

func TestAggregateBucketsAscendingAndZeroFilled(t *testing.T) {
	r := Range{Start: "2025-06-20", End: "2025-06-22"}
	acts := []activity.Activity{
		completed("2025-06-20", activity.TypeValue, activity.AreaMental, 30, 5),
		completed("2025-06-20", activity.TypeValue, activity.AreaPhysical, 15, 0),
		completed("2025-06-22", activity.TypeWaste, activity.AreaSocial, 60, 2),
		completed("2025-06-25", activity.TypeValue, activity.AreaMental, 99, 9), // outside range
	}

	buckets := Aggregate(acts, r)
	require.Len(t, buckets, 3)
	assert.Equal(t, "2025-06-20", buckets[0].Date)
	assert.Equal(t, "2025-06-21", buckets[1].Date)
	assert.Equal(t, "2025-06-22", buckets[2].Date)

	assert.Equal(t, 45, buckets[0].ByType[activity.TypeValue])
	assert.Equal(t, 0, buckets[0].ByType[activity.TypeIncidental])
	assert.Equal(t, 0, buckets[0].ByType[activity.TypeWaste])
	assert.Equal(t, 30, buckets[0].ByArea[activity.AreaMental])
	assert.Equal(t, 15, buckets[0].ByArea[activity.AreaPhysical])
	assert.Equal(t, 5, buckets[0].Effort)

	// A day with no activities still reports every category as zero.
	for _, typ := range activity.Types() {
		assert.Equal(t, 0, buckets[1].ByType[typ])
	}
	for _, area := range activity.Areas() {
		assert.Equal(t, 0, buckets[1].ByArea[area])
	}
	assert.Equal(t, 0, buckets[1].Effort)

	assert.Equal(t, 60, buckets[2].ByType[activity.TypeWaste])
	assert.Equal(t, 2, buckets[2].Effort)
}

func TestAggregateIgnoresRunningActivities(t *testing.T) {
	r := Range{Start: "2025-06-20", End: "2025-06-20"}
	open := activity.Activity{
		ID:        "open",
		Date:      "2025-06-20",
		StartTime: time.Date(2025, 6, 20, 9, 0, 0, 0, time.Local),
		Type:      activity.TypeValue,
		Area:      activity.AreaMental,
	}

	buckets := Aggregate([]activity.Activity{open}, r)
	require.Len(t, buckets, 1)
	assert.Equal(t, 0, buckets[0].TotalMinutes())
}

func TestAggregateIsDeterministic(t *testing.T) {
	r := Range{Start: "2025-06-20", End: "2025-06-22"}
	acts := []activity.Activity{
		completed("2025-06-21", activity.TypeIncidental, activity.AreaFamily, 20, 3),
		completed("2025-06-20", activity.TypeValue, activity.AreaMental, 30, 5),
	}
	first := Aggregate(acts, r)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Aggregate(acts, r))
	}
}
