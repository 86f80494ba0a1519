package store

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"swisstd/internal/swiss"
)

// MemoryStore is the in-memory session storage backend: a process-
// local map keyed by Section name, guarded by a mutex. Save and Load
// round-trip through JSON so that two callers holding "the same"
// Section never alias each other's in-memory state — this is the one
// place a JSON clone belongs (the store boundary), not inside the
// engine itself.
type MemoryStore struct {
	mu       sync.RWMutex
	sections map[string][]byte
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sections: make(map[string][]byte)}
}

func (m *MemoryStore) Save(_ context.Context, s *swiss.Section) error {
	encoded, err := json.Marshal(s)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sections[s.Name] = encoded
	return nil
}

func (m *MemoryStore) Load(_ context.Context, name string) (*swiss.Section, error) {
	m.mu.RLock()
	encoded, ok := m.sections[name]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	var s swiss.Section
	if err := json.Unmarshal(encoded, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (m *MemoryStore) List(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.sections))
	for name := range m.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemoryStore) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sections, name)
	return nil
}
