// Package tracker owns the activity collection, the active-timer state and
// the settings. Every accepted mutation rewrites the full collection in the
// persistence store.
package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"timewell/activity"
	"timewell/csvio"
	"timewell/storage"
	"timewell/timeutil"
)

// Store keys, one per persisted value.
const (
	KeyActivities = "activities"
	KeyTrackStart = "trackStart"
	KeyTrackEnd   = "trackEnd"
	KeyLastExport = "lastExport"
)

// Default daily tracking window.
const (
	DefaultTrackStart = "09:00"
	DefaultTrackEnd   = "18:00"
)

var (
	// ErrActivityRunning rejects starting while another activity is open.
	ErrActivityRunning = errors.New("an activity is already running")
	// ErrNoActiveActivity rejects stopping when nothing is running.
	ErrNoActiveActivity = errors.New("no active activity to stop")
	// ErrNotFound reports an unknown activity id.
	ErrNotFound = errors.New("activity not found")
	// ErrInvalidWindow reports a malformed tracking window clock time.
	ErrInvalidWindow = errors.New("invalid tracking window time")
)

// Settings is the process-wide configuration, persisted independently of
// the activity collection.
type Settings struct {
	TrackStart string
	TrackEnd   string
	LastExport string
}

// Tracker is the single writer of the activity collection.
type Tracker struct {
	store      *storage.Store
	activities []activity.Activity
	settings   Settings
	now        func() time.Time
}

// Load builds a tracker from the store. Malformed stored activities are
// discarded and tracking starts over with an empty collection; missing
// settings fall back to defaults.
func Load(store *storage.Store) *Tracker {
	t := &Tracker{
		store: store,
		settings: Settings{
			TrackStart: DefaultTrackStart,
			TrackEnd:   DefaultTrackEnd,
		},
		now: time.Now,
	}
	if raw, ok := store.Get(KeyActivities); ok {
		var acts []activity.Activity
		if err := json.Unmarshal([]byte(raw), &acts); err == nil {
			t.activities = acts
		}
	}
	if v, ok := store.Get(KeyTrackStart); ok {
		if _, _, err := timeutil.ParseClock(v); err == nil {
			t.settings.TrackStart = v
		}
	}
	if v, ok := store.Get(KeyTrackEnd); ok {
		if _, _, err := timeutil.ParseClock(v); err == nil {
			t.settings.TrackEnd = v
		}
	}
	if v, ok := store.Get(KeyLastExport); ok {
		t.settings.LastExport = v
	}
	return t
}

// SetClock overrides the time source. Tests use this.
func (t *Tracker) SetClock(now func() time.Time) {
	t.now = now
}

// Activities returns a read-only snapshot of the collection.
func (t *Tracker) Activities() []activity.Activity {
	out := make([]activity.Activity, len(t.activities))
	copy(out, t.activities)
	return out
}

// Settings returns the current settings.
func (t *Tracker) Settings() Settings {
	return t.settings
}

// Active returns a copy of the running activity, or nil.
func (t *Tracker) Active() *activity.Activity {
	i := activity.FindOpen(t.activities)
	if i == -1 {
		return nil
	}
	a := t.activities[i]
	return &a
}

// Start creates a running activity filed under today. At most one activity
// may be open at a time; starting a second one is a conflict.
func (t *Tracker) Start(typ activity.Type, area activity.Area, title string) (activity.Activity, error) {
	if activity.FindOpen(t.activities) != -1 {
		return activity.Activity{}, ErrActivityRunning
	}
	a := activity.New(typ, area, title, t.now())
	t.activities = append(t.activities, a)
	if err := t.persist(); err != nil {
		t.activities = t.activities[:len(t.activities)-1]
		return activity.Activity{}, err
	}
	return a, nil
}

// StopInput carries the optional fields collected when stopping.
type StopInput struct {
	TaskTitle    string
	EffortRating *int
	Notes        string
}

// Stop closes the running activity at the current instant, recomputing its
// duration.
func (t *Tracker) Stop(in StopInput) (activity.Activity, error) {
	i := activity.FindOpen(t.activities)
	if i == -1 {
		return activity.Activity{}, ErrNoActiveActivity
	}
	prev := t.activities[i]
	a := &t.activities[i]
	end := t.now()
	a.EndTime = &end
	a.RecomputeDuration()
	if in.TaskTitle != "" {
		a.TaskTitle = in.TaskTitle
	}
	a.EffortRating = in.EffortRating
	if in.Notes != "" {
		a.Notes = in.Notes
	}
	if err := t.persist(); err != nil {
		t.activities[i] = prev
		return activity.Activity{}, err
	}
	return *a, nil
}

// EditInput is a full replacement of an activity's editable fields.
type EditInput struct {
	Type      activity.Type
	Area      activity.Area
	TaskTitle string
	Notes     string
	StartTime time.Time
	EndTime   *time.Time
	Date      string
}

// Edit replaces the editable fields of the identified activity and
// recomputes its duration. The end time, when present, must not precede
// the start time. An empty Date keeps the stored one; the date is not
// re-derived from the edited start time.
func (t *Tracker) Edit(id string, in EditInput) (activity.Activity, error) {
	i := activity.FindByID(t.activities, id)
	if i == -1 {
		return activity.Activity{}, ErrNotFound
	}
	if in.EndTime != nil && in.EndTime.Before(in.StartTime) {
		return activity.Activity{}, activity.ErrEndBeforeStart
	}
	prev := t.activities[i]
	a := &t.activities[i]
	a.Type = in.Type
	a.Area = in.Area
	a.TaskTitle = in.TaskTitle
	a.Notes = in.Notes
	a.StartTime = in.StartTime
	a.EndTime = in.EndTime
	if in.Date != "" {
		a.Date = in.Date
	}
	a.RecomputeDuration()
	if err := t.persist(); err != nil {
		t.activities[i] = prev
		return activity.Activity{}, err
	}
	return *a, nil
}

// SetEndTime closes the identified activity at the given instant, touching
// only the end time and duration.
func (t *Tracker) SetEndTime(id string, end time.Time) (activity.Activity, error) {
	i := activity.FindByID(t.activities, id)
	if i == -1 {
		return activity.Activity{}, ErrNotFound
	}
	if end.Before(t.activities[i].StartTime) {
		return activity.Activity{}, activity.ErrEndBeforeStart
	}
	prev := t.activities[i]
	a := &t.activities[i]
	a.EndTime = &end
	a.RecomputeDuration()
	if err := t.persist(); err != nil {
		t.activities[i] = prev
		return activity.Activity{}, err
	}
	return *a, nil
}

// Delete removes the identified activity from the collection.
func (t *Tracker) Delete(id string) error {
	i := activity.FindByID(t.activities, id)
	if i == -1 {
		return ErrNotFound
	}
	prev := t.activities
	t.activities = append(t.activities[:i:i], t.activities[i+1:]...)
	if err := t.persist(); err != nil {
		t.activities = prev
		return err
	}
	return nil
}

// Import parses CSV text and appends the surviving records to the
// collection. It never replaces existing activities. Returns how many
// records were imported.
func (t *Tracker) Import(text string) (int, error) {
	imported, err := csvio.Parse(text)
	if err != nil {
		return 0, err
	}
	prev := t.activities
	t.activities = append(t.activities, imported...)
	if err := t.persist(); err != nil {
		t.activities = prev
		return 0, err
	}
	return len(imported), nil
}

// ImportFile imports CSV from a file on disk.
func (t *Tracker) ImportFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return t.Import(string(data))
}

// ExportCSV returns the whole collection as CSV text and records the
// export timestamp.
func (t *Tracker) ExportCSV() (string, error) {
	text := csvio.Serialize(t.activities)
	stamp := t.now().Format(csvio.TimestampLayout)
	if err := t.store.Set(KeyLastExport, stamp); err != nil {
		return "", err
	}
	t.settings.LastExport = stamp
	return text, nil
}

// ExportFile writes the CSV export into dir (or the working directory when
// empty), named after the local current date. Returns the file path.
func (t *Tracker) ExportFile(dir string) (string, error) {
	text, err := t.ExportCSV()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, csvio.Filename(t.now()))
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// SetTrackingWindow validates and persists the daily tracking window.
func (t *Tracker) SetTrackingWindow(start, end string) error {
	if _, _, err := timeutil.ParseClock(start); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidWindow, start)
	}
	if _, _, err := timeutil.ParseClock(end); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidWindow, end)
	}
	if err := t.store.Set(KeyTrackStart, start); err != nil {
		return err
	}
	if err := t.store.Set(KeyTrackEnd, end); err != nil {
		return err
	}
	t.settings.TrackStart = start
	t.settings.TrackEnd = end
	return nil
}

// persist rewrites the full collection. An empty collection removes the
// key instead of storing an empty array.
func (t *Tracker) persist() error {
	if len(t.activities) == 0 {
		return t.store.Remove(KeyActivities)
	}
	raw, err := json.Marshal(t.activities)
	if err != nil {
		return err
	}
	return t.store.Set(KeyActivities, string(raw))
}
