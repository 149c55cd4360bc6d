package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gestao/internal/amqp"
	"gestao/internal/backend"
	"gestao/internal/cli"
	gsheet "gestao/internal/store/google"
	"gestao/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	logger.Info("Starting gestao-worker")

	cfg := cli.LoadAndValidateConfig(logger)

	if cfg.MirrorSpreadsheetID == "" {
		logger.Error("MIRROR_SPREADSHEET_ID is required for the mirror worker")
		os.Exit(1)
	}
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the mirror worker")
		os.Exit(1)
	}

	factory := backend.NewFactory(logger)
	result, err := factory.CreateStore(context.Background(), cfg)
	if err != nil {
		logger.Error("Failed to initialize primary backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	if result.Cleanup != nil {
		defer func() {
			if err := result.Cleanup(); err != nil {
				logger.Error("Backend cleanup error", "error", err)
			}
		}()
	}

	mirror, err := gsheet.New(context.Background(), cfg.MirrorSpreadsheetID)
	if err != nil {
		logger.Error("Failed to initialize mirror spreadsheet client", "error", err)
		os.Exit(1)
	}
	logger.Info("Mirror spreadsheet connected", "spreadsheet_id", cfg.MirrorSpreadsheetID)

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mirrorWorker := worker.NewMirrorWorker(result.Store, mirror)

	// On startup, push every collection once so the mirror catches up on
	// changes missed while the worker was down.
	logger.Info("Performing startup mirror pass...")
	if err := mirrorWorker.MirrorAll(ctx); err != nil {
		logger.Error("Startup mirror pass failed", "error", err)
		// Keep running, the periodic pass will retry.
	}

	go func() {
		handler := func(msg *amqp.CollectionChangedMessage) error {
			return mirrorWorker.HandleChange(ctx, msg)
		}
		if err := amqpClient.ConsumeCollectionChanges(ctx, handler); err != nil {
			if err != context.Canceled {
				logger.Error("Message consumption failed", "error", err)
			}
			cancel()
		}
	}()

	// Periodic full pass catches dropped messages.
	ticker := time.NewTicker(cfg.MirrorInterval)
	defer ticker.Stop()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := mirrorWorker.MirrorAll(ctx); err != nil {
					logger.Error("Periodic mirror pass failed", "error", err)
				}
			}
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("Shutdown signal received", "signal", sig.String())
	case <-ctx.Done():
		logger.Info("Context cancelled")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	logger.Info("Shutting down worker...")
	cancel()

	select {
	case <-shutdownCtx.Done():
		logger.Warn("Shutdown timeout reached")
	case <-time.After(5 * time.Second):
		logger.Info("Worker shutdown complete")
	}
}
