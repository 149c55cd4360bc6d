package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gestao/internal/backend"
	"gestao/internal/cli"
	appclients "gestao/internal/clients"
	"gestao/internal/config"
	"gestao/internal/ledger"
	"gestao/internal/report"
	"gestao/internal/schedule"
	"gestao/internal/store"
	"gestao/internal/table"
)

// runtime lazily resolves the backing store and the services on top of it.
type runtime struct {
	store   store.Store
	cleanup backend.CleanupFunc
}

func (rt *runtime) resolve(ctx context.Context) (store.Store, error) {
	if rt.store != nil {
		return rt.store, nil
	}

	cli.LoadEnvFile()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	result, err := backend.NewFactory(nil).CreateStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	rt.store = result.Store
	rt.cleanup = result.Cleanup
	return rt.store, nil
}

func (rt *runtime) close() error {
	if rt.cleanup != nil {
		return rt.cleanup()
	}
	return nil
}

func (rt *runtime) salesService(ctx context.Context) (*ledger.SalesService, error) {
	st, err := rt.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.NewSalesService(st, nil), nil
}

func (rt *runtime) expensesService(ctx context.Context) (*ledger.ExpensesService, error) {
	st, err := rt.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.NewExpensesService(st, nil), nil
}

func (rt *runtime) clientsService(ctx context.Context) (*appclients.Service, error) {
	st, err := rt.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return appclients.NewService(st, nil), nil
}

func (rt *runtime) scheduleService(ctx context.Context) (*schedule.Service, error) {
	st, err := rt.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.NewService(st, nil), nil
}

func (rt *runtime) aggregator(ctx context.Context) (*report.Aggregator, error) {
	st, err := rt.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return report.NewAggregator(st), nil
}

// printTable renders a raw table with tab-aligned columns.
func printTable(cmd *cobra.Command, t table.Table) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for i, col := range t.Columns {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, col)
	}
	fmt.Fprintln(w)
	for _, row := range t.Rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, cell)
		}
		fmt.Fprintln(w)
	}
	_ = w.Flush()
	fmt.Fprintf(cmd.OutOrStdout(), "%d registro(s)\n", t.Len())
}
