package report

import (
	"context"
	"testing"
	"time"

	"gestao/internal/store"
	"gestao/internal/store/memory"
)

func seed(t *testing.T, st *memory.Store, c store.Collection, rows []map[string]string) {
	t.Helper()
	ctx := context.Background()
	tb, _, _ := st.Load(ctx, c)
	for _, r := range rows {
		tb.Append(r)
	}
	if err := st.Save(ctx, c, tb); err != nil {
		t.Fatalf("seed %s: %v", c.Name, err)
	}
}

func TestMonthlyFlow(t *testing.T) {
	st := memory.New()
	seed(t, st, store.Sales, []map[string]string{
		{"Data": "10/01/2024", "Valor": "100.00", "Recebido": "Sim"},
		{"Data": "20/01/2024", "Valor": "30.00", "Recebido": "Não"}, // pending, excluded
		{"Data": "05/01/2023", "Valor": "999.00", "Recebido": "Sim"}, // other year
	})
	seed(t, st, store.Expenses, []map[string]string{
		{"Data": "15/03/2024", "Valor": "50.00", "Pago": "Sim"},
		{"Data": "bogus", "Valor": "77.00", "Pago": "Sim"},    // unparseable date, excluded
		{"Data": "16/03/2024", "Valor": "n/a", "Pago": "Sim"}, // non-numeric, counts as zero
	})

	flow, err := NewAggregator(st).MonthlyFlow(context.Background(), 2024)
	if err != nil {
		t.Fatalf("flow: %v", err)
	}
	if flow.Inflow[0] != 10000 {
		t.Fatalf("january inflow: %d", flow.Inflow[0])
	}
	for m := 1; m < 12; m++ {
		if flow.Inflow[m] != 0 {
			t.Fatalf("month %d inflow: %d", m+1, flow.Inflow[m])
		}
	}
	if flow.Outflow[2] != 5000 {
		t.Fatalf("march outflow: %d", flow.Outflow[2])
	}
	if flow.NetBalance() != 5000 {
		t.Fatalf("net: %d", flow.NetBalance())
	}
}

func TestMonthlyFlowZeroFill(t *testing.T) {
	flow, err := NewAggregator(memory.New()).MonthlyFlow(context.Background(), 2024)
	if err != nil {
		t.Fatalf("flow: %v", err)
	}
	if flow.Inflow != [12]int64{} || flow.Outflow != [12]int64{} {
		t.Fatalf("expected twelve zeros: %+v", flow)
	}
	if flow.NetBalance() != 0 {
		t.Fatalf("net: %d", flow.NetBalance())
	}
}

func TestYears(t *testing.T) {
	st := memory.New()
	seed(t, st, store.Sales, []map[string]string{
		{"Data": "10/01/2024", "Valor": "1", "Recebido": "Sim"},
		{"Data": "10/01/2022", "Valor": "1", "Recebido": "Sim"},
		{"Data": "not a date", "Valor": "1", "Recebido": "Sim"},
	})
	seed(t, st, store.Expenses, []map[string]string{
		{"Data": "01/06/2023", "Valor": "1", "Pago": "Sim"},
	})

	years, err := NewAggregator(st).Years(context.Background())
	if err != nil {
		t.Fatalf("years: %v", err)
	}
	want := []int{2024, 2023, 2022}
	if len(years) != len(want) {
		t.Fatalf("years: %v", years)
	}
	for i := range want {
		if years[i] != want[i] {
			t.Fatalf("years: %v", years)
		}
	}
}

func TestYearsEmptyDefaultsToCurrent(t *testing.T) {
	years, err := NewAggregator(memory.New()).Years(context.Background())
	if err != nil {
		t.Fatalf("years: %v", err)
	}
	if len(years) != 1 || years[0] != time.Now().Year() {
		t.Fatalf("years: %v", years)
	}
}

func TestSummaryCounts(t *testing.T) {
	st := memory.New()
	seed(t, st, store.Sales, []map[string]string{
		{"Data": "10/01/2024", "Valor": "100.00", "Recebido": "Sim"},
		{"Data": "11/01/2024", "Valor": "30.00", "Recebido": "Não"},
	})
	seed(t, st, store.Expenses, []map[string]string{
		{"Data": "15/03/2024", "Valor": "50.00", "Pago": "Sim"},
	})

	sum, err := NewAggregator(st).Summary(context.Background(), 2024)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.TotalInflow.Cents != 10000 || sum.TotalOutflow.Cents != 5000 || sum.NetBalance != 5000 {
		t.Fatalf("summary: %+v", sum)
	}
	// Counts cover raw rows of the year, pending included.
	if sum.SalesCount != 2 || sum.ExpenseCount != 1 {
		t.Fatalf("counts: %+v", sum)
	}
}
