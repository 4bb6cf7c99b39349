// Package activity defines the tracked-activity record and its invariants.
package activity

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"timewell/timeutil"
)

// Type classifies how an activity's time was spent.
type Type string

const (
	TypeValue      Type = "Value"
	TypeIncidental Type = "Incidental"
	TypeWaste      Type = "Waste"
)

// Types returns all activity types in display order.
func Types() []Type {
	return []Type{TypeValue, TypeIncidental, TypeWaste}
}

// Valid reports whether t is one of the known types.
func (t Type) Valid() bool {
	switch t {
	case TypeValue, TypeIncidental, TypeWaste:
		return true
	}
	return false
}

// Area is the well-being area an activity contributes to.
type Area string

const (
	AreaPhysical     Area = "Physical"
	AreaMental       Area = "Mental"
	AreaFinancial    Area = "Financial"
	AreaFamily       Area = "Family"
	AreaProfessional Area = "Professional"
	AreaSocial       Area = "Social"
)

// Areas returns all well-being areas in display order.
func Areas() []Area {
	return []Area{AreaPhysical, AreaMental, AreaFinancial, AreaFamily, AreaProfessional, AreaSocial}
}

// Valid reports whether a is one of the known areas.
func (a Area) Valid() bool {
	switch a {
	case AreaPhysical, AreaMental, AreaFinancial, AreaFamily, AreaProfessional, AreaSocial:
		return true
	}
	return false
}

// Activity is one recorded or in-progress span of tracked time.
//
// Date is the local calendar date the activity is filed under. It is
// derived from StartTime at creation and on import, but a direct edit may
// leave the two out of sync; that mismatch is tolerated, not corrected.
type Activity struct {
	ID           string     `json:"id"`
	Date         string     `json:"date"`
	StartTime    time.Time  `json:"startTime"`
	EndTime      *time.Time `json:"endTime,omitempty"`
	Duration     *int       `json:"duration,omitempty"`
	Type         Type       `json:"activityType"`
	Area         Area       `json:"wellbeingArea"`
	TaskTitle    string     `json:"taskTitle,omitempty"`
	EffortRating *int       `json:"effortRating,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

// ErrEndBeforeStart is returned when a mutation would place an end time
// before the start time.
var ErrEndBeforeStart = errors.New("end time must not be before start time")

// New creates a running activity starting now, filed under now's local
// calendar date.
func New(typ Type, area Area, title string, now time.Time) Activity {
	return Activity{
		ID:        uuid.NewString(),
		Date:      timeutil.LocalDate(now),
		StartTime: now,
		Type:      typ,
		Area:      area,
		TaskTitle: title,
	}
}

// Running reports whether the activity has no end time yet.
func (a *Activity) Running() bool {
	return a.EndTime == nil
}

// DurationMinutes is the rounded minute count between two instants.
func DurationMinutes(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Minutes()))
}

// RecomputeDuration re-derives Duration from the two timestamps. It must
// be called after any mutation of StartTime or EndTime.
func (a *Activity) RecomputeDuration() {
	if a.EndTime == nil {
		a.Duration = nil
		return
	}
	d := DurationMinutes(a.StartTime, *a.EndTime)
	a.Duration = &d
}

// Minutes returns the recorded duration, or 0 while running.
func (a *Activity) Minutes() int {
	if a.Duration == nil {
		return 0
	}
	return *a.Duration
}

// Effort returns the effort rating, or 0 when absent.
func (a *Activity) Effort() int {
	if a.EffortRating == nil {
		return 0
	}
	return *a.EffortRating
}

// FindOpen returns the index of the running activity, or -1. The workflow
// keeps at most one activity open at a time.
func FindOpen(acts []Activity) int {
	for i := range acts {
		if acts[i].EndTime == nil {
			return i
		}
	}
	return -1
}

// FindByID returns the index of the activity with the given id, or -1.
func FindByID(acts []Activity, id string) int {
	for i := range acts {
		if acts[i].ID == id {
			return i
		}
	}
	return -1
}

// ForDate returns the activities filed under date, most recent first.
func ForDate(acts []Activity, date string) []Activity {
	var out []Activity
	for _, a := range acts {
		if a.Date == date {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.After(out[j].StartTime)
	})
	return out
}
