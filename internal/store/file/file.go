// Package file persists each collection as one CSV file under a data
// directory, full-table overwrite on every save.
package file

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gestao/internal/store"
	"gestao/internal/table"
)

type Store struct {
	dir string
}

// New returns a store rooted at dir, creating it if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(c store.Collection) string {
	return filepath.Join(s.dir, c.Name+".csv")
}

func (s *Store) Load(ctx context.Context, c store.Collection) (table.Table, store.Status, error) {
	f, err := os.Open(s.path(c))
	if os.IsNotExist(err) {
		return table.New(c.Columns...), store.StatusAbsent, nil
	}
	if err != nil {
		return table.New(c.Columns...), store.StatusCorrupt, fmt.Errorf("open %s: %w", c.Name, err)
	}
	defer f.Close()

	t, err := read(f)
	if err != nil {
		return table.New(c.Columns...), store.StatusCorrupt, fmt.Errorf("read %s: %w", c.Name, err)
	}
	return t.Conform(c.Columns), store.StatusOK, nil
}

// Save writes the table to a temp file in the same directory and renames it
// over the old one, so a crash mid-write never leaves a half file behind.
func (s *Store) Save(ctx context.Context, c store.Collection, t table.Table) error {
	t = t.Conform(c.Columns)

	tmp, err := os.CreateTemp(s.dir, c.Name+".*.csv")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp, t); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", c.Name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(c)); err != nil {
		return fmt.Errorf("replace %s: %w", c.Name, err)
	}

	slog.InfoContext(ctx, "Collection saved",
		"collection", c.Name,
		"rows", t.Len(),
		"path", s.path(c))
	return nil
}

func read(r io.Reader) (table.Table, error) {
	cr := csv.NewReader(r)
	// Historical files have ragged rows; tolerate them.
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return table.Table{}, err
	}
	if len(records) == 0 {
		return table.Table{}, nil
	}

	t := table.New(records[0]...)
	for _, rec := range records[1:] {
		row := make([]string, len(t.Columns))
		for i := range row {
			if i < len(rec) {
				row[i] = rec[i]
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func write(w io.Writer, t table.Table) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
