package dashdata

import "sync"

// Store holds the current snapshot and swaps it on Reload.
type Store struct {
	path string

	mu   sync.RWMutex
	data *Data
}

// NewStore loads path once. An empty path serves the built-in content.
func NewStore(path string) (*Store, error) {
	d, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, data: d}, nil
}

// NewStaticStore serves d and never reloads.
func NewStaticStore(d *Data) *Store {
	if d == nil {
		d = Default()
	}
	return &Store{data: d}
}

// Path returns the backing file, or "" for a static store.
func (s *Store) Path() string {
	return s.path
}

// Snapshot returns the current data. Callers must treat it as read-only.
func (s *Store) Snapshot() *Data {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Reload re-reads the backing file. On error the previous snapshot stays.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}

	d, err := Load(s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.data = d
	s.mu.Unlock()
	return nil
}
