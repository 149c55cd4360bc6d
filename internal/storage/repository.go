// Package storage implements the store over a local SQLite database. Rows
// are kept as JSON cell maps so the column-dynamic table model carries over
// unchanged.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"gestao/internal/store"
	"gestao/internal/table"
)

type SQLiteStore struct {
	db *sql.DB
}

var _ store.Store = (*SQLiteStore)(nil)

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context, c store.Collection) (table.Table, store.Status, error) {
	empty := table.New(c.Columns...)

	var name string
	err := s.db.QueryRowContext(ctx, `SELECT name FROM collections WHERE name = ?`, c.Name).Scan(&name)
	if err == sql.ErrNoRows {
		return empty, store.StatusAbsent, nil
	}
	if err != nil {
		return empty, store.StatusCorrupt, fmt.Errorf("query collection %s: %w", c.Name, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT cells FROM collection_rows WHERE collection = ? ORDER BY position`, c.Name)
	if err != nil {
		return empty, store.StatusCorrupt, fmt.Errorf("query rows %s: %w", c.Name, err)
	}
	defer rows.Close()

	t := table.New(c.Columns...)
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return empty, store.StatusCorrupt, fmt.Errorf("scan row %s: %w", c.Name, err)
		}
		var cells map[string]string
		if err := json.Unmarshal([]byte(raw), &cells); err != nil {
			return empty, store.StatusCorrupt, fmt.Errorf("decode row %s: %w", c.Name, err)
		}
		t.Append(cells)
	}
	if err := rows.Err(); err != nil {
		return empty, store.StatusCorrupt, fmt.Errorf("iterate rows %s: %w", c.Name, err)
	}
	return t, store.StatusOK, nil
}

func (s *SQLiteStore) Save(ctx context.Context, c store.Collection, t table.Table) error {
	t = t.Conform(c.Columns)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO collections (name) VALUES (?)
		 ON CONFLICT(name) DO UPDATE SET saved_at = CURRENT_TIMESTAMP`, c.Name); err != nil {
		return fmt.Errorf("upsert collection %s: %w", c.Name, err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM collection_rows WHERE collection = ?`, c.Name); err != nil {
		return fmt.Errorf("clear rows %s: %w", c.Name, err)
	}

	for i := 0; i < t.Len(); i++ {
		cells := make(map[string]string, len(t.Columns))
		for _, col := range t.Columns {
			cells[col] = t.Get(i, col)
		}
		raw, err := json.Marshal(cells)
		if err != nil {
			return fmt.Errorf("encode row %d: %w", i, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO collection_rows (collection, position, cells) VALUES (?, ?, ?)`,
			c.Name, i, string(raw)); err != nil {
			return fmt.Errorf("insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", c.Name, err)
	}

	slog.InfoContext(ctx, "Collection saved to SQLite",
		"collection", c.Name,
		"rows", t.Len())
	return nil
}
