// Package signal holds application state between frames. A Store maps
// explicit string keys to values; any write marks the store dirty so
// the host knows a rebuild is due. Keys are explicit rather than
// positional, so reads and writes stay valid no matter what order the
// view code runs in.
package signal

import "sync"

// Store is a keyed state container. Safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	values map[string]any
	dirty  bool
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{values: make(map[string]any)}
}

// Use returns the value under key, initializing it to initial on first
// use. Initialization does not mark the store dirty.
func Use[T any](s *Store, key string, initial T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.values[key]; ok {
		return v.(T)
	}
	s.values[key] = initial
	return initial
}

// Get returns the value under key, or the zero value if it was never
// set.
func Get[T any](s *Store, key string) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.values[key]; ok {
		return v.(T)
	}
	var zero T
	return zero
}

// Set stores a value and marks the store dirty.
func Set[T any](s *Store, key string, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	s.dirty = true
}

// Update applies fn to the current value (zero value if unset), stores
// the result and marks the store dirty.
func Update[T any](s *Store, key string, fn func(T) T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var cur T
	if v, ok := s.values[key]; ok {
		cur = v.(T)
	}
	s.values[key] = fn(cur)
	s.dirty = true
}

// TakeDirty reports whether any write happened since the last call and
// clears the flag.
func (s *Store) TakeDirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.dirty
	s.dirty = false
	return d
}
