package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gestao/internal/core"
)

func newClienteCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cliente",
		Short: "Manage the client registry",
	}
	cmd.AddCommand(newClienteAddCommand(rt))
	cmd.AddCommand(newClienteListCommand(rt))
	cmd.AddCommand(newClienteUpdateCommand(rt))
	cmd.AddCommand(newClienteRmCommand(rt))
	return cmd
}

func newClienteAddCommand(rt *runtime) *cobra.Command {
	var (
		nome     string
		cnpj     string
		endereco string
		telefone string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a client",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.clientsService(cmd.Context())
			if err != nil {
				return err
			}
			stored, err := svc.Register(cmd.Context(), core.Client{
				Name:    nome,
				TaxID:   cnpj,
				Address: endereco,
				Phone:   telefone,
			})
			if err != nil {
				return err
			}
			cmd.Printf("Cliente registrado: %s (%s)\n", stored.Name, stored.TaxID)
			return nil
		},
	}

	cmd.Flags().StringVar(&nome, "nome", "", "client name (required)")
	_ = cmd.MarkFlagRequired("nome")
	cmd.Flags().StringVar(&cnpj, "cnpj", "", "tax id (required)")
	_ = cmd.MarkFlagRequired("cnpj")
	cmd.Flags().StringVar(&endereco, "endereco", "", "address")
	cmd.Flags().StringVar(&telefone, "telefone", "", "phone number")

	return cmd
}

func newClienteListCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.clientsService(cmd.Context())
			if err != nil {
				return err
			}
			list, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "Nome\tCNPJ\tEndereço\tTelefone\tCadastro")
			for _, c := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					c.Name, c.TaxID, c.Address, c.Phone,
					c.RegisteredAt.Format("02/01/2006 15:04"))
			}
			_ = w.Flush()
			cmd.Printf("%d cliente(s)\n", len(list))
			return nil
		},
	}
}

func newClienteUpdateCommand(rt *runtime) *cobra.Command {
	var (
		cnpj     string
		nome     string
		endereco string
		telefone string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Edit the first client matching a tax id",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.clientsService(cmd.Context())
			if err != nil {
				return err
			}
			if err := svc.Update(cmd.Context(), cnpj, nome, endereco, telefone); err != nil {
				return err
			}
			cmd.Printf("Cliente %s atualizado\n", cnpj)
			return nil
		},
	}

	cmd.Flags().StringVar(&cnpj, "cnpj", "", "tax id (required)")
	_ = cmd.MarkFlagRequired("cnpj")
	cmd.Flags().StringVar(&nome, "nome", "", "new name (empty keeps current)")
	cmd.Flags().StringVar(&endereco, "endereco", "", "new address (empty keeps current)")
	cmd.Flags().StringVar(&telefone, "telefone", "", "new phone (empty keeps current)")

	return cmd
}

func newClienteRmCommand(rt *runtime) *cobra.Command {
	var cnpj string

	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Delete the first client matching a tax id",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.clientsService(cmd.Context())
			if err != nil {
				return err
			}
			if err := svc.Delete(cmd.Context(), cnpj); err != nil {
				return err
			}
			cmd.Printf("Cliente %s removido\n", cnpj)
			return nil
		},
	}

	cmd.Flags().StringVar(&cnpj, "cnpj", "", "tax id (required)")
	_ = cmd.MarkFlagRequired("cnpj")

	return cmd
}
