// Package store holds the canonical collaborative entities as an
// in-memory snapshot. The snapshot-replace model is the only way state
// changes: readers always see a complete snapshot, writers install a
// new one built from the snapshot they read, so no reader can observe
// a partial write.
package store

import "sync"

// Store is the single source of truth for the app session. State does
// not survive process restart.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewStore creates a store seeded with the given snapshot.
func NewStore(snap Snapshot) *Store {
	return &Store{snap: snap}
}

// Snapshot returns the current snapshot. The returned value must be
// treated as read-only.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Apply runs mutate against the current snapshot and installs its
// result as the new authoritative snapshot. A mutation that declines
// the change simply returns its input, leaving the store untouched.
func (s *Store) Apply(mutate func(Snapshot) Snapshot) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = mutate(s.snap)
	return s.snap
}
