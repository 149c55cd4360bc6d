package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"gestao/internal/amqp"
	"gestao/internal/core"
	"gestao/internal/store"
	"gestao/internal/table"
)

// ExpensesService manages the expense collection.
type ExpensesService struct {
	store store.Store
	amqp  *amqp.Client
}

func NewExpensesService(st store.Store, amqpClient *amqp.Client) *ExpensesService {
	return &ExpensesService{store: st, amqp: amqpClient}
}

func (s *ExpensesService) Add(ctx context.Context, e core.Expense) (core.Expense, error) {
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	t := loadLenient(ctx, s.store, store.Expenses)
	t.Append(expenseCells(e))
	if err := s.store.Save(ctx, store.Expenses, t); err != nil {
		return core.Expense{}, fmt.Errorf("save expenses: %w", err)
	}

	notifyChange(ctx, s.amqp, store.Expenses.Name, t.Len())

	slog.InfoContext(ctx, "Expense recorded",
		"id", e.ID,
		"name", e.Name,
		"amount_cents", e.Amount.Cents,
		"paid", string(e.Paid))
	return e, nil
}

func (s *ExpensesService) List(ctx context.Context) (table.Table, error) {
	t, status, err := s.store.Load(ctx, store.Expenses)
	if status == store.StatusCorrupt {
		return t, fmt.Errorf("load expenses: %w", err)
	}
	return t, nil
}

func (s *ExpensesService) Tail(ctx context.Context, n int) (table.Table, error) {
	t, err := s.List(ctx)
	if err != nil {
		return t, err
	}
	return t.Tail(n), nil
}

func (s *ExpensesService) Delete(ctx context.Context, row int) error {
	t := loadLenient(ctx, s.store, store.Expenses)
	if !t.DeleteAt(row) {
		return core.ErrNotFound
	}
	if err := s.store.Save(ctx, store.Expenses, t); err != nil {
		return fmt.Errorf("save expenses: %w", err)
	}
	notifyChange(ctx, s.amqp, store.Expenses.Name, t.Len())
	return nil
}

func expenseCells(e core.Expense) map[string]string {
	return map[string]string{
		"ID":         e.ID,
		"Data":       e.Date.String(),
		"Despesa":    e.Name,
		"Valor":      e.Amount.String(),
		"Tipo":       e.Kind,
		"Pagamento":  e.Payment,
		"Parcelas":   strconv.Itoa(e.Installments),
		"NF":         string(e.Invoice),
		"Pago":       string(e.Paid),
		"Comentário": e.Comment,
	}
}
