package snapshot

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store for tests and throwaway environments.
type MemoryStore struct {
	mu    sync.Mutex
	data  []byte
	saved bool

	// FailSave, when set, makes Save return this error.
	FailSave error
}

// NewMemoryStore creates an empty in-memory snapshot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the last saved snapshot, or ErrNotFound before any Save.
func (s *MemoryStore) Load(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.saved {
		return nil, ErrNotFound
	}

	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

// Save replaces the stored snapshot.
func (s *MemoryStore) Save(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailSave != nil {
		return s.FailSave
	}

	s.data = make([]byte, len(data))
	copy(s.data, data)
	s.saved = true
	return nil
}

// Seed pre-loads the store with raw snapshot bytes, as if they had been
// saved by a previous session.
func (s *MemoryStore) Seed(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make([]byte, len(data))
	copy(s.data, data)
	s.saved = true
}
