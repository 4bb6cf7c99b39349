// Package storage is a file-backed key-value string store. Every Set or
// Remove rewrites the whole file; a crash mid-write leaves the previous
// fully written snapshot in place.
package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Store holds string values by key, mirrored to a single JSON file.
type Store struct {
	path string
	data map[string]string
}

// Open loads the store at path. A missing file yields an empty store. A
// file that fails to decode also yields an empty store along with the
// decode error, so callers can warn and carry on with fresh state.
func Open(path string) (*Store, error) {
	s := &Store{path: path, data: map[string]string{}}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(&s.data); err != nil {
		s.data = map[string]string{}
		return s, err
	}
	if s.data == nil {
		s.data = map[string]string{}
	}
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value for key and whether it was present.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.data[key]
	return v, ok
}

// Set stores value under key and persists the store.
func (s *Store) Set(key, value string) error {
	s.data[key] = value
	return s.save()
}

// Remove deletes key and persists the store. Removing an absent key still
// rewrites the file.
func (s *Store) Remove(key string) error {
	delete(s.data, key)
	return s.save()
}

func (s *Store) save() error {
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil && !os.IsExist(err) {
			return err
		}
	}
	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
