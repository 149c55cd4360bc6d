// Package clients is the CRM over the client collection. The tax id is the
// natural key: update and delete take the first matching row, inserts are
// never de-duplicated.
package clients

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gestao/internal/amqp"
	"gestao/internal/core"
	"gestao/internal/store"
	"gestao/internal/table"
)

// registeredAtLayout includes the time of day, unlike ledger dates.
const registeredAtLayout = "02/01/2006 15:04"

type Service struct {
	store store.Store
	amqp  *amqp.Client
}

func NewService(st store.Store, amqpClient *amqp.Client) *Service {
	return &Service{store: st, amqp: amqpClient}
}

// Register appends a client record. A duplicate tax id is allowed but
// logged, since later updates will only ever reach the first row.
func (s *Service) Register(ctx context.Context, c core.Client) (core.Client, error) {
	if err := c.Validate(); err != nil {
		return core.Client{}, err
	}
	if c.RegisteredAt.IsZero() {
		c.RegisteredAt = time.Now()
	}

	t := s.load(ctx)
	if s.exists(t, c.TaxID) {
		slog.WarnContext(ctx, "Duplicate tax id registered",
			"tax_id", c.TaxID,
			"name", c.Name)
	}
	t.Append(clientCells(c))
	if err := s.store.Save(ctx, store.Clients, t); err != nil {
		return core.Client{}, fmt.Errorf("save clients: %w", err)
	}
	s.notify(ctx, t.Len())

	slog.InfoContext(ctx, "Client registered", "tax_id", c.TaxID, "name", c.Name)
	return c, nil
}

// Update overwrites name, address and phone on the first row matching the
// tax id. Empty fields are left untouched. Returns ErrNotFound when no row
// matches; the table is not rewritten in that case.
func (s *Service) Update(ctx context.Context, taxID, name, address, phone string) error {
	fields := map[string]string{}
	if name != "" {
		fields["Nome"] = name
	}
	if address != "" {
		fields["Endereço"] = address
	}
	if phone != "" {
		fields["Telefone"] = phone
	}

	t := s.load(ctx)
	if !t.UpdateFirst("CNPJ", taxID, fields) {
		return core.ErrNotFound
	}
	if err := s.store.Save(ctx, store.Clients, t); err != nil {
		return fmt.Errorf("save clients: %w", err)
	}
	s.notify(ctx, t.Len())

	slog.InfoContext(ctx, "Client updated", "tax_id", taxID)
	return nil
}

// Delete removes the first row matching the tax id.
func (s *Service) Delete(ctx context.Context, taxID string) error {
	t := s.load(ctx)
	idx := -1
	for i := 0; i < t.Len(); i++ {
		if t.Get(i, "CNPJ") == taxID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return core.ErrNotFound
	}
	t.DeleteAt(idx)
	if err := s.store.Save(ctx, store.Clients, t); err != nil {
		return fmt.Errorf("save clients: %w", err)
	}
	s.notify(ctx, t.Len())

	slog.InfoContext(ctx, "Client deleted", "tax_id", taxID)
	return nil
}

// List returns the typed client records in table order.
func (s *Service) List(ctx context.Context) ([]core.Client, error) {
	t, status, err := s.store.Load(ctx, store.Clients)
	if status == store.StatusCorrupt {
		return nil, fmt.Errorf("load clients: %w", err)
	}
	out := make([]core.Client, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		c := core.Client{
			Name:    t.Get(i, "Nome"),
			TaxID:   t.Get(i, "CNPJ"),
			Address: t.Get(i, "Endereço"),
			Phone:   t.Get(i, "Telefone"),
		}
		if ts, err := time.Parse(registeredAtLayout, t.Get(i, "Cadastro")); err == nil {
			c.RegisteredAt = ts
		}
		out = append(out, c)
	}
	return out, nil
}

// Table returns the raw table for display.
func (s *Service) Table(ctx context.Context) (table.Table, error) {
	t, status, err := s.store.Load(ctx, store.Clients)
	if status == store.StatusCorrupt {
		return t, fmt.Errorf("load clients: %w", err)
	}
	return t, nil
}

func (s *Service) load(ctx context.Context) table.Table {
	t, status, err := s.store.Load(ctx, store.Clients)
	if status == store.StatusCorrupt {
		slog.WarnContext(ctx, "Client collection unreadable, treating as empty", "error", err)
	}
	return t
}

func (s *Service) exists(t table.Table, taxID string) bool {
	return t.Count(func(get func(string) string) bool {
		return get("CNPJ") == taxID
	}) > 0
}

func (s *Service) notify(ctx context.Context, rows int) {
	if s.amqp == nil {
		return
	}
	if err := s.amqp.PublishCollectionChanged(ctx, store.Clients.Name, rows); err != nil {
		slog.ErrorContext(ctx, "Failed to publish collection change",
			"collection", store.Clients.Name,
			"error", err)
	}
}

func clientCells(c core.Client) map[string]string {
	return map[string]string{
		"Nome":     c.Name,
		"CNPJ":     c.TaxID,
		"Endereço": c.Address,
		"Telefone": c.Phone,
		"Cadastro": c.RegisteredAt.Format(registeredAtLayout),
	}
}
