// Package commands wires the gestaoctl command tree. Every subcommand talks
// to the same backing store the server uses, selected by environment.
package commands

import (
	"github.com/spf13/cobra"

	"gestao/internal/store"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	return newRootCommand(nil)
}

// newRootCommand builds the tree around an optional preset store. A nil
// store is resolved from environment configuration on first use.
func newRootCommand(st store.Store) *cobra.Command {
	rt := &runtime{store: st}

	rootCmd := &cobra.Command{
		Use:   "gestaoctl",
		Short: "Ledgers, clients, weekly agenda and yearly summaries",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return rt.close()
		},
	}

	rootCmd.AddCommand(newVendaCommand(rt))
	rootCmd.AddCommand(newDespesaCommand(rt))
	rootCmd.AddCommand(newClienteCommand(rt))
	rootCmd.AddCommand(newAgendaCommand(rt))
	rootCmd.AddCommand(newResumoCommand(rt))

	return rootCmd
}
