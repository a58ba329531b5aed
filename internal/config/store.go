package config

import (
	"fmt"
	"strings"

	"github.com/zjrosen/pushrelease/internal/log"
	"github.com/zjrosen/pushrelease/internal/version"
)

// EntryStore exposes the configs section to the release steps. Updates are
// kept in memory and, when the store has a path, written back to that file.
type EntryStore struct {
	entries map[string]map[string]any
	path    string
}

// NewEntryStore copies entries into a store. An empty path keeps every
// update in memory, which is what dry runs use.
func NewEntryStore(entries map[string]map[string]any, path string) *EntryStore {
	s := &EntryStore{entries: make(map[string]map[string]any, len(entries)), path: path}
	for name, fields := range entries {
		cp := make(map[string]any, len(fields))
		for k, v := range fields {
			cp[k] = v
		}
		s.entries[strings.ToLower(name)] = cp
	}
	return s
}

// Exists reports whether the named entry is present.
func (s *EntryStore) Exists(name string) bool {
	_, ok := s.entries[strings.ToLower(name)]
	return ok
}

// Version returns the entry's version field.
func (s *EntryStore) Version(name string) (string, error) {
	entry, ok := s.entries[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrEntryNotFound, name)
	}
	v, ok := entry["version"]
	if !ok || v == nil {
		return "", fmt.Errorf("%w in %s", version.ErrNoVersion, name)
	}
	str := fmt.Sprint(v)
	if str == "" {
		return "", fmt.Errorf("%w in %s", version.ErrNoVersion, name)
	}
	return str, nil
}

// SetVersion updates the entry's version field.
func (s *EntryStore) SetVersion(name, v string) error {
	entry, ok := s.entries[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, name)
	}
	entry["version"] = v

	if s.path == "" {
		return nil
	}
	if err := SaveEntryVersion(s.path, name, v); err != nil {
		return err
	}
	log.Debug(log.CatConfig, "Saved config entry version", "entry", name, "version", v, "path", s.path)
	return nil
}
