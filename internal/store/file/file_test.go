package file

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gestao/internal/store"
)

func TestLoadAbsent(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	tb, status, err := s.Load(context.Background(), store.Sales)
	if err != nil || status != store.StatusAbsent {
		t.Fatalf("status=%v err=%v", status, err)
	}
	if !reflect.DeepEqual(tb.Columns, store.Sales.Columns) || tb.Len() != 0 {
		t.Fatalf("table: %+v", tb)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	tb, _, _ := s.Load(ctx, store.Expenses)
	tb.Append(map[string]string{
		"Data": "15/01/2024", "Despesa": "Aluguel", "Valor": "1200.00",
		"Tipo": "Fixa", "Pagamento": "Boleto", "Parcelas": "1",
		"NF": "Sim", "Pago": "Sim", "Comentário": "sala 2, c/ reajuste",
	})
	if err := s.Save(ctx, store.Expenses, tb); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, status, err := s.Load(ctx, store.Expenses)
	if err != nil || status != store.StatusOK {
		t.Fatalf("load: %v %v", status, err)
	}
	if got.Len() != 1 {
		t.Fatalf("rows: %d", got.Len())
	}
	for _, col := range store.Expenses.Columns {
		if got.Get(0, col) != tb.Get(0, col) {
			t.Fatalf("column %s: %q != %q", col, got.Get(0, col), tb.Get(0, col))
		}
	}
}

func TestLoadMissingColumn(t *testing.T) {
	dir := t.TempDir()
	// File written by an older variant without the ID column.
	csv := "Data,Cliente,Valor\n15/01/2024,Maria,100.00\n"
	if err := os.WriteFile(filepath.Join(dir, "Vendas.csv"), []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}
	s, _ := New(dir)
	tb, status, err := s.Load(context.Background(), store.Sales)
	if err != nil || status != store.StatusOK {
		t.Fatalf("load: %v %v", status, err)
	}
	if !reflect.DeepEqual(tb.Columns, store.Sales.Columns) {
		t.Fatalf("columns: %v", tb.Columns)
	}
	if tb.Get(0, "ID") != "" || tb.Get(0, "Cliente") != "Maria" {
		t.Fatalf("row: %v", tb.Rows[0])
	}
}

func TestLoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	// Unclosed quote makes the CSV unparseable.
	if err := os.WriteFile(filepath.Join(dir, "Vendas.csv"), []byte("a,\"b\nbroken"), 0644); err != nil {
		t.Fatal(err)
	}
	s, _ := New(dir)
	tb, status, err := s.Load(context.Background(), store.Sales)
	if status != store.StatusCorrupt || err == nil {
		t.Fatalf("status=%v err=%v", status, err)
	}
	if tb.Len() != 0 || !reflect.DeepEqual(tb.Columns, store.Sales.Columns) {
		t.Fatalf("corrupt load must yield empty conformed table: %+v", tb)
	}
}
