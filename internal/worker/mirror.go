// Package worker copies collections from the primary store to the Google
// Sheets mirror, either on change messages or on a timer.
package worker

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"gestao/internal/amqp"
	applog "gestao/internal/log"
	"gestao/internal/store"
)

type MirrorWorker struct {
	primary store.Store
	mirror  store.Store
	log     *applog.Logger
}

func NewMirrorWorker(primary, mirror store.Store) *MirrorWorker {
	logger := applog.New(applog.DefaultConfig()).WithComponent(applog.ComponentWorker)
	return &MirrorWorker{primary: primary, mirror: mirror, log: logger}
}

// HandleChange mirrors the collection named in a change message.
func (w *MirrorWorker) HandleChange(ctx context.Context, msg *amqp.CollectionChangedMessage) error {
	c, ok := store.ByName(msg.Collection)
	if !ok {
		// Unknown collections are dropped, not requeued.
		w.log.WarnContext(ctx, "Change message for unknown collection",
			applog.FieldCollection, msg.Collection)
		return nil
	}
	return w.mirrorOne(ctx, c)
}

// MirrorAll copies every collection, concurrently. A failing collection
// does not stop the others; the first error is returned after all finish.
func (w *MirrorWorker) MirrorAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, c := range store.All() {
		g.Go(func() error {
			return w.mirrorOne(ctx, c)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("mirror all collections: %w", err)
	}
	return nil
}

func (w *MirrorWorker) mirrorOne(ctx context.Context, c store.Collection) error {
	t, status, err := w.primary.Load(ctx, c)
	if status == store.StatusCorrupt {
		return fmt.Errorf("load %s from primary: %w", c.Name, err)
	}
	if status == store.StatusAbsent {
		w.log.InfoContext(ctx, "Collection never written, skipping mirror",
			applog.FieldCollection, c.Name)
		return nil
	}
	if err := w.mirror.Save(ctx, c, t); err != nil {
		return fmt.Errorf("mirror %s: %w", c.Name, err)
	}
	w.log.InfoContext(ctx, "Collection mirrored",
		applog.FieldCollection, c.Name,
		applog.FieldRows, t.Len())
	return nil
}
