// Package backend selects and builds the backing store from configuration.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"gestao/internal/config"
	"gestao/internal/storage"
	"gestao/internal/store"
	filestore "gestao/internal/store/file"
	gsheet "gestao/internal/store/google"
	"gestao/internal/store/memory"
)

// Type names a backing store implementation.
type Type string

const (
	File   Type = "file"
	Memory Type = "memory"
	SQLite Type = "sqlite"
	Sheets Type = "sheets"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case File, Memory, SQLite, Sheets:
		return true
	}
	return false
}

// CleanupFunc releases backend resources.
type CleanupFunc func() error

// Result carries a built store and its optional cleanup.
type Result struct {
	Store   store.Store
	Cleanup CleanupFunc
}

// Factory builds stores from application configuration.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// CreateStore builds the store the config names.
func (f *Factory) CreateStore(ctx context.Context, cfg *config.Config) (*Result, error) {
	t := Type(cfg.DataBackend)
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.DataBackend)
	}

	switch t {
	case File:
		st, err := filestore.New(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initialize file store: %w", err)
		}
		f.logger.Info("Initialized file backend", "data_dir", cfg.DataDir)
		return &Result{Store: st}, nil

	case Memory:
		f.logger.Info("Initialized memory backend")
		return &Result{Store: memory.New()}, nil

	case SQLite:
		st, err := storage.NewSQLiteStore(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		f.logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)
		return &Result{Store: st, Cleanup: st.Close}, nil

	case Sheets:
		st, err := gsheet.New(ctx, cfg.GoogleSpreadsheetID)
		if err != nil {
			return nil, fmt.Errorf("initialize Google Sheets store: %w", err)
		}
		f.logger.Info("Initialized Google Sheets backend", "spreadsheet_id", cfg.GoogleSpreadsheetID)
		return &Result{Store: st}, nil
	}

	return nil, fmt.Errorf("unsupported backend type: %s", t)
}
