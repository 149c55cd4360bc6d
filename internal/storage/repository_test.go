package storage

import (
	"context"
	"path/filepath"
	"testing"

	"gestao/internal/store"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "gestao.db"))
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteLoadAbsent(t *testing.T) {
	s := newTestStore(t)
	tb, status, err := s.Load(context.Background(), store.Schedule)
	if err != nil || status != store.StatusAbsent {
		t.Fatalf("status=%v err=%v", status, err)
	}
	if tb.Len() != 0 {
		t.Fatalf("rows: %d", tb.Len())
	}
}

func TestSQLiteSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	tb, _, _ := s.Load(ctx, store.Schedule)
	tb.Append(map[string]string{"Dia": "Segunda", "Horário": "09:00", "Cliente": "Ana"})
	tb.Append(map[string]string{"Dia": "Terça", "Horário": "14:00", "Cliente": "Bia"})
	if err := s.Save(ctx, store.Schedule, tb); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, status, err := s.Load(ctx, store.Schedule)
	if err != nil || status != store.StatusOK {
		t.Fatalf("load: %v %v", status, err)
	}
	if got.Len() != 2 || got.Get(0, "Cliente") != "Ana" || got.Get(1, "Dia") != "Terça" {
		t.Fatalf("rows: %v", got.Rows)
	}

	// Saved-empty is distinct from never-written.
	empty, _, _ := s.Load(ctx, store.Clients)
	if err := s.Save(ctx, store.Clients, empty); err != nil {
		t.Fatalf("save empty: %v", err)
	}
	_, status, _ = s.Load(ctx, store.Clients)
	if status != store.StatusOK {
		t.Fatalf("saved empty collection must load as ok, got %v", status)
	}
}
