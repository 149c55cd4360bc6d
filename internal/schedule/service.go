// Package schedule manages the weekly attendance grid: five working days,
// hourly slots with a lunch gap, at most four clients per slot.
package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"gestao/internal/amqp"
	"gestao/internal/core"
	"gestao/internal/store"
	"gestao/internal/table"
)

type Service struct {
	store store.Store
	amqp  *amqp.Client
}

// WeekView maps weekday and slot to the assigned client names.
type WeekView map[core.Weekday]map[core.TimeSlot][]string

func NewService(st store.Store, amqpClient *amqp.Client) *Service {
	return &Service{store: st, amqp: amqpClient}
}

// Book assigns a client to a slot. The append is rejected with ErrSlotFull
// when the slot already has its four clients; the table is left unchanged.
func (s *Service) Book(ctx context.Context, b core.Booking) error {
	if err := b.Validate(); err != nil {
		return err
	}

	t := s.load(ctx)
	taken := t.Count(func(get func(string) string) bool {
		return get("Dia") == string(b.Weekday) && get("Horário") == string(b.Slot)
	})
	if taken >= core.SlotCapacity {
		slog.WarnContext(ctx, "Slot full, booking rejected",
			"weekday", string(b.Weekday),
			"slot", string(b.Slot),
			"client", b.Client)
		return core.ErrSlotFull
	}

	t.Append(map[string]string{
		"Dia":     string(b.Weekday),
		"Horário": string(b.Slot),
		"Cliente": b.Client,
	})
	if err := s.store.Save(ctx, store.Schedule, t); err != nil {
		return fmt.Errorf("save schedule: %w", err)
	}
	s.notify(ctx, t.Len())

	slog.InfoContext(ctx, "Booking recorded",
		"weekday", string(b.Weekday),
		"slot", string(b.Slot),
		"client", b.Client)
	return nil
}

// Cancel removes every row matching (weekday, slot, client). ErrNotFound
// when nothing matched; the table is not rewritten in that case.
func (s *Service) Cancel(ctx context.Context, b core.Booking) error {
	if err := b.Validate(); err != nil {
		return err
	}

	t := s.load(ctx)
	deleted := t.DeleteWhere(func(get func(string) string) bool {
		return get("Dia") == string(b.Weekday) &&
			get("Horário") == string(b.Slot) &&
			get("Cliente") == b.Client
	})
	if deleted == 0 {
		return core.ErrNotFound
	}
	if err := s.store.Save(ctx, store.Schedule, t); err != nil {
		return fmt.Errorf("save schedule: %w", err)
	}
	s.notify(ctx, t.Len())

	slog.InfoContext(ctx, "Booking cancelled",
		"weekday", string(b.Weekday),
		"slot", string(b.Slot),
		"client", b.Client,
		"rows_removed", deleted)
	return nil
}

// Week returns the full grid, every weekday and slot present even when
// empty, ready for rendering.
func (s *Service) Week(ctx context.Context) (WeekView, error) {
	t, status, err := s.store.Load(ctx, store.Schedule)
	if status == store.StatusCorrupt {
		return nil, fmt.Errorf("load schedule: %w", err)
	}

	view := make(WeekView, len(core.Weekdays()))
	for _, d := range core.Weekdays() {
		view[d] = make(map[core.TimeSlot][]string, len(core.TimeSlots()))
		for _, slot := range core.TimeSlots() {
			view[d][slot] = nil
		}
	}
	for i := 0; i < t.Len(); i++ {
		d, err := core.ParseWeekday(t.Get(i, "Dia"))
		if err != nil {
			continue
		}
		slot := core.TimeSlot(t.Get(i, "Horário"))
		if !slot.Valid() {
			continue
		}
		view[d][slot] = append(view[d][slot], t.Get(i, "Cliente"))
	}
	return view, nil
}

func (s *Service) load(ctx context.Context) table.Table {
	t, status, err := s.store.Load(ctx, store.Schedule)
	if status == store.StatusCorrupt {
		slog.WarnContext(ctx, "Schedule collection unreadable, treating as empty", "error", err)
	}
	return t
}

func (s *Service) notify(ctx context.Context, rows int) {
	if s.amqp == nil {
		return
	}
	if err := s.amqp.PublishCollectionChanged(ctx, store.Schedule.Name, rows); err != nil {
		slog.ErrorContext(ctx, "Failed to publish collection change",
			"collection", store.Schedule.Name,
			"error", err)
	}
}
