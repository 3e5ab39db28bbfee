// Package memory provides an in-memory records.Repository, used as the
// default backend and by tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"spendlog/internal/core"
	"spendlog/internal/records"
)

type Store struct {
	mu    sync.Mutex
	items map[string]core.Expense
}

func New() *Store {
	return &Store{items: make(map[string]core.Expense)}
}

// Init is a no-op; the map always exists.
func (s *Store) Init(_ context.Context) error {
	return nil
}

func (s *Store) ListAll(_ context.Context) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Expense, 0, len(s.items))
	for _, e := range s.items {
		out = append(out, e)
	}
	return out, nil
}

func (s *Store) Insert(_ context.Context, e core.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.items[e.ID]; exists {
		return fmt.Errorf("insert %s: %w", e.ID, records.ErrDuplicateKey)
	}
	s.items[e.ID] = e
	return nil
}

// DeleteByKey removes the expense if present; absent keys are a no-op.
func (s *Store) DeleteByKey(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

// Len reports the number of stored expenses. Test helper.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
