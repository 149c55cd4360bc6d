// Package report computes the monthly inflow/outflow aggregates behind the
// dashboard: twelve buckets per year, zero-filled, sales counted when
// received, expenses when paid.
package report

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"gestao/internal/core"
	"gestao/internal/store"
	"gestao/internal/table"
)

// MonthLabels are the chart axis labels, January first.
var MonthLabels = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

type Aggregator struct {
	store store.Store
}

// MonthlyFlow is the twelve-month aggregate pair for one year, in cents.
type MonthlyFlow struct {
	Year    int
	Inflow  [12]int64
	Outflow [12]int64
}

// Summary carries the scalar dashboard metrics for one year.
type Summary struct {
	Year         int
	TotalInflow  core.Money
	TotalOutflow core.Money
	NetBalance   int64 // cents, may be negative
	SalesCount   int
	ExpenseCount int
}

func NewAggregator(st store.Store) *Aggregator {
	return &Aggregator{store: st}
}

func (f MonthlyFlow) TotalInflow() int64 {
	var sum int64
	for _, v := range f.Inflow {
		sum += v
	}
	return sum
}

func (f MonthlyFlow) TotalOutflow() int64 {
	var sum int64
	for _, v := range f.Outflow {
		sum += v
	}
	return sum
}

// NetBalance is total inflow minus total outflow.
func (f MonthlyFlow) NetBalance() int64 {
	return f.TotalInflow() - f.TotalOutflow()
}

// MonthlyFlow buckets received sales and paid expenses by month for the
// given year. Rows with unparseable dates are skipped, non-numeric amounts
// count as zero.
func (a *Aggregator) MonthlyFlow(ctx context.Context, year int) (MonthlyFlow, error) {
	sales, expenses, err := a.loadBoth(ctx)
	if err != nil {
		return MonthlyFlow{}, err
	}
	return MonthlyFlow{
		Year:    year,
		Inflow:  monthlySums(sales, "Valor", "Recebido", year),
		Outflow: monthlySums(expenses, "Valor", "Pago", year),
	}, nil
}

// Years returns the union of years present in both ledgers, newest first.
// The current year is returned when no row has a parseable date.
func (a *Aggregator) Years(ctx context.Context) ([]int, error) {
	sales, expenses, err := a.loadBoth(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[int]bool{}
	for _, t := range []table.Table{sales, expenses} {
		for i := 0; i < t.Len(); i++ {
			if d, err := core.ParseDate(t.Get(i, "Data")); err == nil {
				seen[d.Year()] = true
			}
		}
	}
	if len(seen) == 0 {
		return []int{time.Now().Year()}, nil
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years, nil
}

// Summary computes the dashboard metrics for the given year. Counts cover
// every raw row of that year regardless of status, which is what the
// record-count metric always showed.
func (a *Aggregator) Summary(ctx context.Context, year int) (Summary, error) {
	flow, err := a.MonthlyFlow(ctx, year)
	if err != nil {
		return Summary{}, err
	}
	sales, expenses, err := a.loadBoth(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Year:         year,
		TotalInflow:  core.Money{Cents: flow.TotalInflow()},
		TotalOutflow: core.Money{Cents: flow.TotalOutflow()},
		NetBalance:   flow.NetBalance(),
		SalesCount:   countYear(sales, year),
		ExpenseCount: countYear(expenses, year),
	}, nil
}

func (a *Aggregator) loadBoth(ctx context.Context) (table.Table, table.Table, error) {
	sales, status, err := a.store.Load(ctx, store.Sales)
	if status == store.StatusCorrupt {
		return sales, sales, fmt.Errorf("load sales: %w", err)
	}
	expenses, status, err := a.store.Load(ctx, store.Expenses)
	if status == store.StatusCorrupt {
		return sales, expenses, fmt.Errorf("load expenses: %w", err)
	}
	return sales, expenses, nil
}

func monthlySums(t table.Table, amountCol, statusCol string, year int) [12]int64 {
	var out [12]int64
	for i := 0; i < t.Len(); i++ {
		d, err := core.ParseDate(t.Get(i, "Data"))
		if err != nil || d.Year() != year {
			continue
		}
		status, err := core.ParseYesNo(t.Get(i, statusCol))
		if err != nil || !status.Bool() {
			continue
		}
		out[d.Month()-1] += amountOrZero(t.Get(i, amountCol))
	}
	return out
}

func countYear(t table.Table, year int) int {
	return t.Count(func(get func(string) string) bool {
		d, err := core.ParseDate(get("Data"))
		return err == nil && d.Year() == year
	})
}

// amountOrZero coerces a cell to cents, zero when it does not parse.
func amountOrZero(v string) int64 {
	v = strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
	if v == "" {
		return 0
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return 0
	}
	return d.Shift(2).Round(0).IntPart()
}
