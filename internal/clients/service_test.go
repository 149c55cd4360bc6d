package clients

import (
	"context"
	"testing"
	"time"

	"gestao/internal/core"
	"gestao/internal/store/memory"
)

func testClient(taxID string) core.Client {
	return core.Client{
		Name:         "Clínica Boa Vista",
		TaxID:        taxID,
		Address:      "Rua das Flores 10",
		Phone:        "11 99999-0000",
		RegisteredAt: time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestRegisterAndList(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.New(), nil)

	if _, err := svc.Register(ctx, testClient("123")); err != nil {
		t.Fatalf("register: %v", err)
	}
	got, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].TaxID != "123" || got[0].Name != "Clínica Boa Vista" {
		t.Fatalf("clients: %+v", got)
	}
	if got[0].RegisteredAt.Format("02/01/2006 15:04") != "01/02/2024 09:30" {
		t.Fatalf("registered at: %v", got[0].RegisteredAt)
	}
}

func TestRegisterDuplicateAllowed(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.New(), nil)

	for i := 0; i < 2; i++ {
		if _, err := svc.Register(ctx, testClient("123")); err != nil {
			t.Fatalf("register %d: %v", i, err)
		}
	}
	got, _ := svc.List(ctx)
	if len(got) != 2 {
		t.Fatalf("expected both duplicates, got %d", len(got))
	}
}

func TestUpdateFirstMatchOnly(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.New(), nil)

	a := testClient("123")
	b := testClient("123")
	b.Name = "Segunda Clínica"
	svc.Register(ctx, a)
	svc.Register(ctx, b)

	if err := svc.Update(ctx, "123", "Renomeada", "", "11 88888-0000"); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := svc.List(ctx)
	if got[0].Name != "Renomeada" || got[0].Phone != "11 88888-0000" {
		t.Fatalf("first row: %+v", got[0])
	}
	if got[0].Address != "Rua das Flores 10" {
		t.Fatal("empty field must be left untouched")
	}
	if got[1].Name != "Segunda Clínica" {
		t.Fatalf("second duplicate must be untouched: %+v", got[1])
	}
}

func TestUpdateNotFound(t *testing.T) {
	svc := NewService(memory.New(), nil)
	if err := svc.Update(context.Background(), "999", "x", "", ""); err != core.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.New(), nil)
	svc.Register(ctx, testClient("123"))
	svc.Register(ctx, testClient("456"))

	if err := svc.Delete(ctx, "123"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, _ := svc.List(ctx)
	if len(got) != 1 || got[0].TaxID != "456" {
		t.Fatalf("clients: %+v", got)
	}
	if err := svc.Delete(ctx, "123"); err != core.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
