package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"gestao/internal/core"
	"gestao/internal/report"
)

func newResumoCommand(rt *runtime) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "resumo",
		Short: "Show the yearly dashboard summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			agg, err := rt.aggregator(cmd.Context())
			if err != nil {
				return err
			}
			if year == 0 {
				year = time.Now().Year()
			}

			summary, err := agg.Summary(cmd.Context(), year)
			if err != nil {
				return err
			}
			flow, err := agg.MonthlyFlow(cmd.Context(), year)
			if err != nil {
				return err
			}

			cmd.Printf("Resumo %d\n", year)
			cmd.Printf("Entradas: %s (%d vendas)\n", summary.TotalInflow.String(), summary.SalesCount)
			cmd.Printf("Saídas:   %s (%d despesas)\n", summary.TotalOutflow.String(), summary.ExpenseCount)
			cmd.Printf("Saldo:    %s\n", core.Money{Cents: summary.NetBalance}.String())

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "Mês\tEntradas\tSaídas")
			for i, label := range report.MonthLabels {
				fmt.Fprintf(w, "%s\t%s\t%s\n", label,
					core.Money{Cents: flow.Inflow[i]}.String(),
					core.Money{Cents: flow.Outflow[i]}.String())
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&year, "ano", 0, "year to summarize (default current)")
	return cmd
}
