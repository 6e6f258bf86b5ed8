// Package memory implements ports.HistoryStore in process memory.
// It is used by tests and by callers that want ranking without disk I/O.
package memory

import "sync"

// Store keeps each user's lines in a slice. Safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	lines map[string][]string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{lines: make(map[string][]string)}
}

// AppendLine appends line to the user's log.
func (s *Store) AppendLine(userID, line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines[userID] = append(s.lines[userID], line)
	return nil
}

// ReadLines returns a copy of the user's lines, or nil if the user has none.
func (s *Store) ReadLines(userID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	src, ok := s.lines[userID]
	if !ok {
		return nil, nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out, nil
}

// Delete drops the user's log. Idempotent.
func (s *Store) Delete(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lines, userID)
	return nil
}

// Exists reports whether anything was ever appended for the user since the
// last Delete. Seeded logs count as present even when empty.
func (s *Store) Exists(userID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.lines[userID]
	return ok, nil
}

// Seed replaces the user's log with raw lines, bypassing the line format.
// Useful for loading legacy or malformed content in tests.
func (s *Store) Seed(userID string, lines ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines[userID] = append([]string{}, lines...)
}
