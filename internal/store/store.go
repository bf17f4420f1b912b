// Package store provides the persistent key/value storage for theme preferences.
package store

import (
	"sync"
)

// KeyValueStore is a client-side key/value store of string entries.
// GetItem reports ok=false when the key has never been set.
type KeyValueStore interface {
	GetItem(key string) (value string, ok bool, err error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}

// MemoryStore is a KeyValueStore that lives only for the process lifetime.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]string)}
}

// GetItem returns the value stored for key.
func (s *MemoryStore) GetItem(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok, nil
}

// SetItem stores value under key.
func (s *MemoryStore) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}

// RemoveItem deletes key. Removing an absent key is not an error.
func (s *MemoryStore) RemoveItem(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
