// Package memory is the in-memory store used by tests and as the default
// backend when nothing else is configured.
package memory

import (
	"context"
	"sync"

	"gestao/internal/store"
	"gestao/internal/table"
)

type Store struct {
	mu     sync.Mutex
	tables map[string]table.Table
}

func New() *Store {
	return &Store{tables: make(map[string]table.Table)}
}

func (s *Store) Load(_ context.Context, c store.Collection) (table.Table, store.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[c.Name]
	if !ok {
		return table.New(c.Columns...), store.StatusAbsent, nil
	}
	return t.Conform(c.Columns), store.StatusOK, nil
}

func (s *Store) Save(_ context.Context, c store.Collection, t table.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[c.Name] = t.Conform(c.Columns)
	return nil
}
