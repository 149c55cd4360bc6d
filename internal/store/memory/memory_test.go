package memory

import (
	"context"
	"reflect"
	"testing"

	"gestao/internal/store"
)

func TestLoadAbsent(t *testing.T) {
	s := New()
	tb, status, err := s.Load(context.Background(), store.Clients)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if status != store.StatusAbsent {
		t.Fatalf("status: %v", status)
	}
	if !reflect.DeepEqual(tb.Columns, store.Clients.Columns) || tb.Len() != 0 {
		t.Fatalf("table: %+v", tb)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()

	tb, _, _ := s.Load(ctx, store.Clients)
	tb.Append(map[string]string{"Nome": "Ana", "CNPJ": "123"})
	if err := s.Save(ctx, store.Clients, tb); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, status, err := s.Load(ctx, store.Clients)
	if err != nil || status != store.StatusOK {
		t.Fatalf("load: %v %v", status, err)
	}
	if got.Len() != 1 || got.Get(0, "Nome") != "Ana" {
		t.Fatalf("rows: %v", got.Rows)
	}
}
