package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMissingFile(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	_, ok := s.Get("anything")
	assert.False(t, ok)
}

func TestSetGetRemoveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, s.Set("trackStart", "09:00"))
	require.NoError(t, s.Set("trackEnd", "18:00"))

	// A fresh open sees what was persisted.
	s2, err := Open(path)
	require.NoError(t, err)
	v, ok := s2.Get("trackStart")
	require.True(t, ok)
	assert.Equal(t, "09:00", v)

	require.NoError(t, s2.Remove("trackStart"))
	s3, err := Open(path)
	require.NoError(t, err)
	_, ok = s3.Get("trackStart")
	assert.False(t, ok)
	v, ok = s3.Get("trackEnd")
	require.True(t, ok)
	assert.Equal(t, "18:00", v)
}

func TestSetOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, s.Set("k", "one"))
	require.NoError(t, s.Set("k", "two"))

	s2, err := Open(path)
	require.NoError(t, err)
	v, _ := s2.Get("k")
	assert.Equal(t, "two", v)
}

func TestOpenMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	s, err := Open(path)
	assert.Error(t, err)
	require.NotNil(t, s)
	_, ok := s.Get("k")
	assert.False(t, ok)

	// The store stays usable after the warning.
	require.NoError(t, s.Set("k", "v"))
	s2, err := Open(path)
	require.NoError(t, err)
	v, _ := s2.Get("k")
	assert.Equal(t, "v", v)
}

func TestSaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.json")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("k", "v"))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestRemoveAbsentKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Remove("ghost"))

	// The file exists even though nothing was ever set.
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
