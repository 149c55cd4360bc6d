package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gestao/internal/core"
)

func newAgendaCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Manage the weekly attendance grid",
	}
	cmd.AddCommand(newAgendaBookCommand(rt))
	cmd.AddCommand(newAgendaCancelCommand(rt))
	cmd.AddCommand(newAgendaWeekCommand(rt))
	return cmd
}

func bookingFromFlags(dia, horario, cliente string) (core.Booking, error) {
	day, err := core.ParseWeekday(dia)
	if err != nil {
		return core.Booking{}, fmt.Errorf("invalid dia %q: %w", dia, err)
	}
	return core.Booking{
		Weekday: day,
		Slot:    core.TimeSlot(strings.TrimSpace(horario)),
		Client:  cliente,
	}, nil
}

func newAgendaBookCommand(rt *runtime) *cobra.Command {
	var (
		dia     string
		horario string
		cliente string
	)

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a client into a slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			booking, err := bookingFromFlags(dia, horario, cliente)
			if err != nil {
				return err
			}
			svc, err := rt.scheduleService(cmd.Context())
			if err != nil {
				return err
			}
			if err := svc.Book(cmd.Context(), booking); err != nil {
				return err
			}
			cmd.Printf("Agendado: %s %s %s\n", booking.Weekday, booking.Slot, booking.Client)
			return nil
		},
	}

	cmd.Flags().StringVar(&dia, "dia", "", "weekday, Segunda through Sexta (required)")
	_ = cmd.MarkFlagRequired("dia")
	cmd.Flags().StringVar(&horario, "horario", "", "slot, e.g. 08:00 (required)")
	_ = cmd.MarkFlagRequired("horario")
	cmd.Flags().StringVar(&cliente, "cliente", "", "client name (required)")
	_ = cmd.MarkFlagRequired("cliente")

	return cmd
}

func newAgendaCancelCommand(rt *runtime) *cobra.Command {
	var (
		dia     string
		horario string
		cliente string
	)

	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel a booking",
		RunE: func(cmd *cobra.Command, args []string) error {
			booking, err := bookingFromFlags(dia, horario, cliente)
			if err != nil {
				return err
			}
			svc, err := rt.scheduleService(cmd.Context())
			if err != nil {
				return err
			}
			if err := svc.Cancel(cmd.Context(), booking); err != nil {
				return err
			}
			cmd.Printf("Cancelado: %s %s %s\n", booking.Weekday, booking.Slot, booking.Client)
			return nil
		},
	}

	cmd.Flags().StringVar(&dia, "dia", "", "weekday, Segunda through Sexta (required)")
	_ = cmd.MarkFlagRequired("dia")
	cmd.Flags().StringVar(&horario, "horario", "", "slot, e.g. 08:00 (required)")
	_ = cmd.MarkFlagRequired("horario")
	cmd.Flags().StringVar(&cliente, "cliente", "", "client name (required)")
	_ = cmd.MarkFlagRequired("cliente")

	return cmd
}

func newAgendaWeekCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: "Show the weekly grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.scheduleService(cmd.Context())
			if err != nil {
				return err
			}
			week, err := svc.Week(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprint(w, "Horário")
			for _, day := range core.Weekdays() {
				fmt.Fprintf(w, "\t%s", day)
			}
			fmt.Fprintln(w)
			for _, slot := range core.TimeSlots() {
				fmt.Fprint(w, slot)
				for _, day := range core.Weekdays() {
					names := week[day][slot]
					fmt.Fprintf(w, "\t%s (%d/%d)",
						strings.Join(names, ", "), len(names), core.SlotCapacity)
				}
				fmt.Fprintln(w)
			}
			return w.Flush()
		},
	}
}
