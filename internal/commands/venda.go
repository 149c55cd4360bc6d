package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"gestao/internal/core"
)

func newVendaCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "venda",
		Short: "Manage the sales ledger",
	}
	cmd.AddCommand(newVendaAddCommand(rt))
	cmd.AddCommand(newVendaListCommand(rt))
	cmd.AddCommand(newVendaRmCommand(rt))
	return cmd
}

func newVendaAddCommand(rt *runtime) *cobra.Command {
	var (
		data       string
		cliente    string
		descricao  string
		tipo       string
		valor      string
		pagamento  string
		documento  string
		nf         string
		recebido   string
		comentario string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a sale",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.salesService(cmd.Context())
			if err != nil {
				return err
			}

			sale := core.Sale{
				Client:      cliente,
				Description: descricao,
				Kind:        tipo,
				Payment:     pagamento,
				Person:      documento,
				Comment:     comentario,
			}
			if sale.Date, err = parseDateFlag(data); err != nil {
				return err
			}
			if sale.Amount, err = core.ParseAmount(valor); err != nil {
				return fmt.Errorf("invalid valor %q: %w", valor, err)
			}
			if sale.Invoice, err = core.ParseYesNo(nf); err != nil {
				return fmt.Errorf("invalid nf %q: %w", nf, err)
			}
			if sale.Received, err = core.ParseYesNo(recebido); err != nil {
				return fmt.Errorf("invalid recebido %q: %w", recebido, err)
			}

			stored, err := svc.Add(cmd.Context(), sale)
			if err != nil {
				return err
			}
			cmd.Printf("Venda registrada: %s %s %s (%s)\n",
				stored.Date.String(), stored.Client, stored.Amount.String(), stored.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&data, "data", "", "date DD/MM/YYYY (default today)")
	cmd.Flags().StringVar(&cliente, "cliente", "", "client name (required)")
	_ = cmd.MarkFlagRequired("cliente")
	cmd.Flags().StringVar(&descricao, "descricao", "", "description")
	cmd.Flags().StringVar(&tipo, "tipo", "Serviço", "sale kind")
	cmd.Flags().StringVar(&valor, "valor", "", "amount (required)")
	_ = cmd.MarkFlagRequired("valor")
	cmd.Flags().StringVar(&pagamento, "pagamento", "", "payment method")
	cmd.Flags().StringVar(&documento, "documento", core.PersonPJ, "person kind, PF or PJ")
	cmd.Flags().StringVar(&nf, "nf", string(core.No), "invoice issued, Sim or Não")
	cmd.Flags().StringVar(&recebido, "recebido", string(core.No), "payment received, Sim or Não")
	cmd.Flags().StringVar(&comentario, "comentario", "", "free-form comment")

	return cmd
}

func newVendaListCommand(rt *runtime) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded sales",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.salesService(cmd.Context())
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

func newVendaRmCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <row>",
		Short: "Delete a sale by row position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := parseRowArg(args[0])
			if err != nil {
				return err
			}
			svc, err := rt.salesService(cmd.Context())
			if err != nil {
				return err
			}
			if err := svc.Delete(cmd.Context(), row); err != nil {
				return err
			}
			cmd.Printf("Venda %d removida\n", row)
			return nil
		},
	}
	return cmd
}
