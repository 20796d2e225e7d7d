package store

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore is an in-process Store for development and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	forests map[string]Forest
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{forests: make(map[string]Forest)}
}

// Get retrieves a forest by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Forest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.forests[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &f, nil
}

// Put stores a copy of the forest.
func (s *MemoryStore) Put(ctx context.Context, f *Forest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.forests[f.ID] = *f
	return nil
}

// Delete removes a forest.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.forests[id]; !ok {
		return ErrNotFound
	}
	delete(s.forests, id)
	return nil
}

// List returns all forests, newest first.
func (s *MemoryStore) List(ctx context.Context) ([]*Forest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Forest, 0, len(s.forests))
	for id := range s.forests {
		f := s.forests[id]
		out = append(out, &f)
	}
	slices.SortFunc(out, func(a, b *Forest) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

// Close is a no-op for in-memory stores.
func (s *MemoryStore) Close(ctx context.Context) error { return nil }

var _ Store = (*MemoryStore)(nil)
