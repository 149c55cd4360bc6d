package table

import (
	"reflect"
	"testing"
)

func TestConform(t *testing.T) {
	in := New("B", "A", "X")
	in.Rows = [][]string{{"b1", "a1", "x1"}, {"nan", " a2 ", ""}}

	got := in.Conform([]string{"A", "B", "C"})
	if !reflect.DeepEqual(got.Columns, []string{"A", "B", "C"}) {
		t.Fatalf("columns: %v", got.Columns)
	}
	want := [][]string{{"a1", "b1", ""}, {"a2", "", ""}}
	if !reflect.DeepEqual(got.Rows, want) {
		t.Fatalf("rows: %v", got.Rows)
	}
}

func TestAppendAndGet(t *testing.T) {
	tb := New("Nome", "CNPJ")
	tb.Append(map[string]string{"Nome": "Ana", "CNPJ": "123", "Extra": "dropped"})
	if tb.Len() != 1 {
		t.Fatalf("len: %d", tb.Len())
	}
	if tb.Get(0, "Nome") != "Ana" || tb.Get(0, "CNPJ") != "123" {
		t.Fatalf("row: %v", tb.Rows[0])
	}
	if tb.Get(0, "Extra") != "" || tb.Get(5, "Nome") != "" {
		t.Fatal("missing cells must read empty")
	}
}

func TestUpdateFirst(t *testing.T) {
	tb := New("Nome", "CNPJ")
	tb.Append(map[string]string{"Nome": "Ana", "CNPJ": "123"})
	tb.Append(map[string]string{"Nome": "Bia", "CNPJ": "123"})

	if !tb.UpdateFirst("CNPJ", "123", map[string]string{"Nome": "Carla"}) {
		t.Fatal("expected a match")
	}
	// First match only; the duplicate stays untouched.
	if tb.Get(0, "Nome") != "Carla" || tb.Get(1, "Nome") != "Bia" {
		t.Fatalf("rows: %v", tb.Rows)
	}
	if tb.UpdateFirst("CNPJ", "999", map[string]string{"Nome": "x"}) {
		t.Fatal("expected no match")
	}
}

func TestUpdateFirstIdempotent(t *testing.T) {
	tb := New("Nome", "CNPJ")
	tb.Append(map[string]string{"Nome": "Ana", "CNPJ": "123"})

	upd := map[string]string{"Nome": "Carla"}
	tb.UpdateFirst("CNPJ", "123", upd)
	once := tb.Clone()
	tb.UpdateFirst("CNPJ", "123", upd)
	if !reflect.DeepEqual(once.Rows, tb.Rows) {
		t.Fatalf("second update changed state: %v vs %v", once.Rows, tb.Rows)
	}
}

func TestDeleteAt(t *testing.T) {
	tb := New("N")
	for _, v := range []string{"a", "b", "c"} {
		tb.Append(map[string]string{"N": v})
	}
	if !tb.DeleteAt(1) {
		t.Fatal("expected delete")
	}
	if tb.Len() != 2 || tb.Get(0, "N") != "a" || tb.Get(1, "N") != "c" {
		t.Fatalf("rows: %v", tb.Rows)
	}
	if tb.DeleteAt(7) {
		t.Fatal("out of range must report false")
	}
}

func TestDeleteWhereAndCount(t *testing.T) {
	tb := New("Dia", "Cliente")
	tb.Append(map[string]string{"Dia": "Segunda", "Cliente": "Ana"})
	tb.Append(map[string]string{"Dia": "Segunda", "Cliente": "Bia"})
	tb.Append(map[string]string{"Dia": "Terça", "Cliente": "Ana"})

	n := tb.Count(func(get func(string) string) bool { return get("Dia") == "Segunda" })
	if n != 2 {
		t.Fatalf("count: %d", n)
	}
	deleted := tb.DeleteWhere(func(get func(string) string) bool {
		return get("Cliente") == "Ana"
	})
	if deleted != 2 || tb.Len() != 1 || tb.Get(0, "Cliente") != "Bia" {
		t.Fatalf("deleted=%d rows=%v", deleted, tb.Rows)
	}
}

func TestTail(t *testing.T) {
	tb := New("N")
	for _, v := range []string{"a", "b", "c"} {
		tb.Append(map[string]string{"N": v})
	}
	got := tb.Tail(2)
	if got.Len() != 2 || got.Get(0, "N") != "b" {
		t.Fatalf("tail: %v", got.Rows)
	}
	if tb.Tail(10).Len() != 3 {
		t.Fatal("tail larger than table must return all rows")
	}
}
