// Package csvio serializes the activity collection to CSV and parses it
// back, validating the schema.
//
// The interchange format is nine fixed columns, CRLF-separated rows, and
// double-quote escaping for fields containing commas or quotes. Timestamps
// use a fixed locale-style layout so the round trip is deterministic to
// second precision.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"timewell/activity"
	"timewell/timeutil"
)

// Header is the required column set, in order.
var Header = []string{
	"Task Title", "Start Time", "End Time", "Duration (min)",
	"Activity Type", "Well-being Area", "Effort Rating", "Notes", "Date",
}

// TimestampLayout is how absolute instants appear in the CSV.
const TimestampLayout = "1/2/2006, 3:04:05 PM"

var (
	// ErrSchemaMismatch reports a header row whose field count or names
	// differ from Header.
	ErrSchemaMismatch = errors.New("CSV schema does not match expected format")
	// ErrEmptyImport reports an input with no data rows.
	ErrEmptyImport = errors.New("CSV missing data rows")
	// ErrNoValidRecords reports that every data row was rejected.
	ErrNoValidRecords = errors.New("no valid records found in CSV")
)

// Filename is the export file name for the given local day.
func Filename(now time.Time) string {
	return fmt.Sprintf("activity_log_%s.csv", timeutil.Today(now))
}

// Serialize renders the collection as CSV text. Absent optional fields
// serialize as empty.
func Serialize(acts []activity.Activity) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	w.UseCRLF = true

	w.Write(Header)
	for _, a := range acts {
		end := ""
		if a.EndTime != nil {
			end = a.EndTime.Format(TimestampLayout)
		}
		duration := ""
		if a.Duration != nil {
			duration = strconv.Itoa(*a.Duration)
		}
		effort := ""
		if a.EffortRating != nil {
			effort = strconv.Itoa(*a.EffortRating)
		}
		w.Write([]string{
			a.TaskTitle,
			a.StartTime.Format(TimestampLayout),
			end,
			duration,
			string(a.Type),
			string(a.Area),
			effort,
			a.Notes,
			a.Date,
		})
	}
	w.Flush()
	return sb.String()
}

// Parse reads CSV text back into activities.
//
// The header must match Header exactly after trimming. Data rows that do
// not resolve to nine fields, or whose Start Time does not parse, are
// silently skipped. Every imported activity gets a freshly minted id, and
// its date is re-derived from the Start Time's local calendar date,
// overriding the literal Date column.
func Parse(text string) ([]activity.Activity, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}
	if len(records) < 2 {
		return nil, ErrEmptyImport
	}

	header := records[0]
	if len(header) != len(Header) {
		return nil, ErrSchemaMismatch
	}
	for i, h := range header {
		if strings.TrimSpace(h) != Header[i] {
			return nil, ErrSchemaMismatch
		}
	}

	var imported []activity.Activity
	for _, row := range records[1:] {
		if len(row) != len(Header) {
			continue
		}
		start, err := parseStamp(row[1])
		if err != nil {
			continue
		}
		a := activity.Activity{
			ID:           uuid.NewString(),
			Date:         timeutil.LocalDate(start),
			StartTime:    start,
			Duration:     parseOptionalInt(row[3]),
			Type:         activity.Type(row[4]),
			Area:         activity.Area(row[5]),
			TaskTitle:    row[0],
			EffortRating: parseOptionalInt(row[6]),
			Notes:        row[7],
		}
		if row[2] != "" {
			if end, err := parseStamp(row[2]); err == nil {
				a.EndTime = &end
			}
		}
		imported = append(imported, a)
	}
	if len(imported) == 0 {
		return nil, ErrNoValidRecords
	}
	return imported, nil
}

func parseStamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(TimestampLayout, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.Local(), nil
}

// parseOptionalInt mirrors the lax numeric handling of the interchange
// format: empty or non-numeric values are treated as absent.
func parseOptionalInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
