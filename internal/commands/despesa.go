package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"gestao/internal/core"
)

func newDespesaCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "despesa",
		Short: "Manage the expense ledger",
	}
	cmd.AddCommand(newDespesaAddCommand(rt))
	cmd.AddCommand(newDespesaListCommand(rt))
	cmd.AddCommand(newDespesaRmCommand(rt))
	return cmd
}

func newDespesaAddCommand(rt *runtime) *cobra.Command {
	var (
		data       string
		nome       string
		valor      string
		tipo       string
		pagamento  string
		parcelas   int
		nf         string
		pago       string
		comentario string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.expensesService(cmd.Context())
			if err != nil {
				return err
			}

			expense := core.Expense{
				Name:         nome,
				Kind:         tipo,
				Payment:      pagamento,
				Installments: parcelas,
				Comment:      comentario,
			}
			if expense.Date, err = parseDateFlag(data); err != nil {
				return err
			}
			if expense.Amount, err = core.ParseAmount(valor); err != nil {
				return fmt.Errorf("invalid valor %q: %w", valor, err)
			}
			if expense.Invoice, err = core.ParseYesNo(nf); err != nil {
				return fmt.Errorf("invalid nf %q: %w", nf, err)
			}
			if expense.Paid, err = core.ParseYesNo(pago); err != nil {
				return fmt.Errorf("invalid pago %q: %w", pago, err)
			}

			stored, err := svc.Add(cmd.Context(), expense)
			if err != nil {
				return err
			}
			cmd.Printf("Despesa registrada: %s %s %s (%s)\n",
				stored.Date.String(), stored.Name, stored.Amount.String(), stored.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&data, "data", "", "date DD/MM/YYYY (default today)")
	cmd.Flags().StringVar(&nome, "despesa", "", "expense name (required)")
	_ = cmd.MarkFlagRequired("despesa")
	cmd.Flags().StringVar(&valor, "valor", "", "amount (required)")
	_ = cmd.MarkFlagRequired("valor")
	cmd.Flags().StringVar(&tipo, "tipo", "Variável", "expense kind")
	cmd.Flags().StringVar(&pagamento, "pagamento", "", "payment method")
	cmd.Flags().IntVar(&parcelas, "parcelas", 1, "number of installments")
	cmd.Flags().StringVar(&nf, "nf", string(core.No), "invoice received, Sim or Não")
	cmd.Flags().StringVar(&pago, "pago", string(core.No), "already paid, Sim or Não")
	cmd.Flags().StringVar(&comentario, "comentario", "", "free-form comment")

	return cmd
}

func newDespesaListCommand(rt *runtime) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded expenses",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.expensesService(cmd.Context())
			if err != nil {
				return err
			}
			t, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}
			if limit > 0 {
				t = t.Tail(limit)
			}
			printTable(cmd, t)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "show only the last N rows")
	return cmd
}

func newDespesaRmCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <row>",
		Short: "Delete an expense by row position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := parseRowArg(args[0])
			if err != nil {
				return err
			}
			svc, err := rt.expensesService(cmd.Context())
			if err != nil {
				return err
			}
			if err := svc.Delete(cmd.Context(), row); err != nil {
				return err
			}
			cmd.Printf("Despesa %d removida\n", row)
			return nil
		},
	}
	return cmd
}
