package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignsIDAndLocalDate(t *testing.T) {
	now := time.Date(2025, 6, 23, 10, 0, 0, 0, time.Local)
	a := New(TypeValue, AreaMental, "Coding", now)

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "2025-06-23", a.Date)
	assert.True(t, a.Running())
	assert.Nil(t, a.Duration)
	assert.Nil(t, a.EffortRating)

	b := New(TypeValue, AreaMental, "Coding", now)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestRecomputeDuration(t *testing.T) {
	start := time.Date(2025, 6, 23, 10, 0, 0, 0, time.Local)
	a := New(TypeValue, AreaMental, "", start)

	end := start.Add(30 * time.Minute)
	a.EndTime = &end
	a.RecomputeDuration()
	require.NotNil(t, a.Duration)
	assert.Equal(t, 30, *a.Duration)

	// Rounds to the nearest minute.
	end = start.Add(29*time.Minute + 31*time.Second)
	a.EndTime = &end
	a.RecomputeDuration()
	assert.Equal(t, 30, *a.Duration)

	a.EndTime = nil
	a.RecomputeDuration()
	assert.Nil(t, a.Duration)
}

func TestFindOpen(t *testing.T) {
	now := time.Now()
	end := now.Add(time.Hour)
	closed := New(TypeValue, AreaMental, "", now)
	closed.EndTime = &end
	open := New(TypeWaste, AreaSocial, "", now)

	assert.Equal(t, -1, FindOpen(nil))
	assert.Equal(t, -1, FindOpen([]Activity{closed}))
	assert.Equal(t, 1, FindOpen([]Activity{closed, open}))
}

func TestForDateSortsMostRecentFirst(t *testing.T) {
	base := time.Date(2025, 6, 23, 8, 0, 0, 0, time.Local)
	early := New(TypeValue, AreaMental, "early", base)
	late := New(TypeValue, AreaMental, "late", base.Add(2*time.Hour))
	other := New(TypeValue, AreaMental, "other", base.AddDate(0, 0, -1))

	day := ForDate([]Activity{early, other, late}, "2025-06-23")
	require.Len(t, day, 2)
	assert.Equal(t, "late", day[0].TaskTitle)
	assert.Equal(t, "early", day[1].TaskTitle)
}

func TestEnumValidity(t *testing.T) {
	for _, typ := range Types() {
		assert.True(t, typ.Valid())
	}
	assert.False(t, Type("Leisure").Valid())

	for _, area := range Areas() {
		assert.True(t, area.Valid())
	}
	assert.False(t, Area("Spiritual").Valid())
}
