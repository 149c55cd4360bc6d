// Package ledger holds the sales and expense services. Every mutation is a
// full load, mutate, save round trip against the backing store; the saved
// table is what callers get back.
package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"gestao/internal/amqp"
	"gestao/internal/core"
	"gestao/internal/store"
	"gestao/internal/table"
)

// SalesService manages the sales collection.
type SalesService struct {
	store store.Store
	amqp  *amqp.Client
}

func NewSalesService(st store.Store, amqpClient *amqp.Client) *SalesService {
	return &SalesService{store: st, amqp: amqpClient}
}

// Add validates and appends a sale. A missing ID gets a fresh one. The sale
// as stored is returned.
func (s *SalesService) Add(ctx context.Context, sale core.Sale) (core.Sale, error) {
	if err := sale.Validate(); err != nil {
		return core.Sale{}, err
	}
	if sale.ID == "" {
		sale.ID = uuid.NewString()
	}

	t := loadLenient(ctx, s.store, store.Sales)
	t.Append(saleCells(sale))
	if err := s.store.Save(ctx, store.Sales, t); err != nil {
		return core.Sale{}, fmt.Errorf("save sales: %w", err)
	}

	notifyChange(ctx, s.amqp, store.Sales.Name, t.Len())

	slog.InfoContext(ctx, "Sale recorded",
		"id", sale.ID,
		"client", sale.Client,
		"amount_cents", sale.Amount.Cents,
		"received", string(sale.Received))
	return sale, nil
}

// List reloads and returns the raw sales table for display.
func (s *SalesService) List(ctx context.Context) (table.Table, error) {
	t, status, err := s.store.Load(ctx, store.Sales)
	if status == store.StatusCorrupt {
		return t, fmt.Errorf("load sales: %w", err)
	}
	return t, nil
}

// Tail returns the last n sales rows.
func (s *SalesService) Tail(ctx context.Context, n int) (table.Table, error) {
	t, err := s.List(ctx)
	if err != nil {
		return t, err
	}
	return t.Tail(n), nil
}

// Delete removes the row at the given position and persists the table.
func (s *SalesService) Delete(ctx context.Context, row int) error {
	t := loadLenient(ctx, s.store, store.Sales)
	if !t.DeleteAt(row) {
		return core.ErrNotFound
	}
	if err := s.store.Save(ctx, store.Sales, t); err != nil {
		return fmt.Errorf("save sales: %w", err)
	}
	notifyChange(ctx, s.amqp, store.Sales.Name, t.Len())
	return nil
}

func saleCells(s core.Sale) map[string]string {
	return map[string]string{
		"ID":         s.ID,
		"Data":       s.Date.String(),
		"Cliente":    s.Client,
		"Descrição":  s.Description,
		"Tipo":       s.Kind,
		"Valor":      s.Amount.String(),
		"Pagamento":  s.Payment,
		"Documento":  s.Person,
		"NF":         string(s.Invoice),
		"Recebido":   string(s.Received),
		"Comentário": s.Comment,
	}
}

// loadLenient loads a collection, downgrading a corrupt store to an empty
// table with a warning. Mutations proceed on the empty table, matching the
// behavior of the spreadsheets this replaces.
func loadLenient(ctx context.Context, st store.Store, c store.Collection) table.Table {
	t, status, err := st.Load(ctx, c)
	if status == store.StatusCorrupt {
		slog.WarnContext(ctx, "Collection unreadable, treating as empty",
			"collection", c.Name,
			"error", err)
	}
	return t
}

// notifyChange publishes a collection change when a mirror queue is
// configured. Publish failures never fail the mutation.
func notifyChange(ctx context.Context, client *amqp.Client, collection string, rows int) {
	if client == nil {
		return
	}
	if err := client.PublishCollectionChanged(ctx, collection, rows); err != nil {
		slog.ErrorContext(ctx, "Failed to publish collection change",
			"collection", collection,
			"error", err)
	}
}
