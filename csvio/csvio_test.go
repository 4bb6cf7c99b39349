package csvio

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timewell/activity"
)

func intp(n int) *int { return &n }

func completed(title string, start time.Time, mins int) activity.Activity {
	a := activity.New(activity.TypeValue, activity.AreaMental, title, start)
	end := start.Add(time.Duration(mins) * time.Minute)
	a.EndTime = &end
	a.RecomputeDuration()
	return a
}

func TestSerializeHeaderAndCRLF(t *testing.T) {
	start := time.Date(2025, 6, 23, 9, 0, 0, 0, time.Local)
	text := Serialize([]activity.Activity{completed("Coding", start, 30)})

	lines := strings.Split(strings.TrimRight(text, "\r\n"), "\r\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(Header, ","), lines[0])
	assert.Contains(t, lines[1], "6/23/2025, 9:00:00 AM")
}

func TestSerializeEscapesCommasAndQuotes(t *testing.T) {
	start := time.Date(2025, 6, 23, 9, 0, 0, 0, time.Local)
	a := completed("Plan, review", start, 15)
	a.Notes = `said "done"`
	text := Serialize([]activity.Activity{a})

	assert.Contains(t, text, `"Plan, review"`)
	assert.Contains(t, text, `"said ""done"""`)
}

func TestRoundTrip(t *testing.T) {
	start := time.Date(2025, 6, 23, 9, 0, 0, 0, time.Local)
	a := completed("Coding, deep work", start, 45)
	a.Notes = `went "well"`
	a.EffortRating = intp(8)
	open := activity.New(activity.TypeIncidental, activity.AreaSocial, "Chat", start.Add(time.Hour))

	parsed, err := Parse(Serialize([]activity.Activity{a, open}))
	require.NoError(t, err)
	require.Len(t, parsed, 2)

	got := parsed[0]
	assert.Equal(t, a.TaskTitle, got.TaskTitle)
	assert.Equal(t, a.Type, got.Type)
	assert.Equal(t, a.Area, got.Area)
	assert.Equal(t, a.Notes, got.Notes)
	require.NotNil(t, got.Duration)
	assert.Equal(t, 45, *got.Duration)
	require.NotNil(t, got.EffortRating)
	assert.Equal(t, 8, *got.EffortRating)
	assert.Equal(t, a.Date, got.Date)
	assert.True(t, got.StartTime.Equal(a.StartTime))

	// Import always mints fresh identifiers.
	assert.NotEqual(t, a.ID, got.ID)
	assert.NotEqual(t, open.ID, parsed[1].ID)
	assert.Nil(t, parsed[1].EndTime)
}

func TestParseDerivesDateFromStartTime(t *testing.T) {
	row := `Walk,"6/23/2025, 9:00:00 AM","6/23/2025, 9:30:00 AM",30,Value,Physical,,,2001-01-01`
	parsed, err := Parse(strings.Join(Header, ",") + "\r\n" + row + "\r\n")
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, "2025-06-23", parsed[0].Date)
}

func TestParseSchemaMismatch(t *testing.T) {
	missing := strings.Join(Header[:8], ",")
	_, err := Parse(missing + "\r\nWalk,x,x,30,Value,Physical,,\r\n")
	assert.ErrorIs(t, err, ErrSchemaMismatch)

	renamed := strings.Replace(strings.Join(Header, ","), "Notes", "Comment", 1)
	_, err = Parse(renamed + "\r\nWalk,x,x,30,Value,Physical,,,2025-06-23\r\n")
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestParseEmptyImport(t *testing.T) {
	_, err := Parse(strings.Join(Header, ",") + "\r\n")
	assert.ErrorIs(t, err, ErrEmptyImport)

	_, err = Parse("")
	assert.ErrorIs(t, err, ErrEmptyImport)
}

func TestParseSkipsMalformedRows(t *testing.T) {
	header := strings.Join(Header, ",")
	good := `Walk,"6/23/2025, 9:00:00 AM","6/23/2025, 9:30:00 AM",30,Value,Physical,5,,2025-06-23`
	shortRow := "only,three,fields"
	badStamp := "Walk,not a time,,30,Value,Physical,,,2025-06-23"

	parsed, err := Parse(strings.Join([]string{header, shortRow, good, badStamp}, "\r\n") + "\r\n")
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, "Walk", parsed[0].TaskTitle)
}

func TestParseNoValidRecords(t *testing.T) {
	header := strings.Join(Header, ",")
	_, err := Parse(header + "\r\nonly,three,fields\r\n")
	assert.ErrorIs(t, err, ErrNoValidRecords)
}

func TestParseNonNumericFieldsTreatedAsAbsent(t *testing.T) {
	header := strings.Join(Header, ",")
	row := `Walk,"6/23/2025, 9:00:00 AM",,abc,Value,Physical,high,,2025-06-23`
	parsed, err := Parse(header + "\r\n" + row + "\r\n")
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Nil(t, parsed[0].Duration)
	assert.Nil(t, parsed[0].EffortRating)
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, 6, 23, 12, 0, 0, 0, time.Local)
	assert.Equal(t, "activity_log_2025-06-23.csv", Filename(now))
}
