// Package store defines the contract every backing store implements.
//
// A collection is one logical spreadsheet table. Loading never fails hard:
// an absent or unreadable store yields an empty table with exactly the
// expected columns plus a status the caller can choose to surface.
package store

import (
	"context"

	"gestao/internal/table"
)

// Status describes the outcome of a load.
type Status int

const (
	StatusOK Status = iota
	// StatusAbsent means the collection has never been written.
	StatusAbsent
	// StatusCorrupt means the collection exists but could not be parsed.
	// The accompanying error carries the cause.
	StatusCorrupt
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusAbsent:
		return "absent"
	case StatusCorrupt:
		return "corrupt"
	}
	return "unknown"
}

// Collection names a stored table and its expected column set. Reads are
// order-independent; writes use exactly this column order.
type Collection struct {
	Name    string
	Columns []string
}

// Store is the loader/persister pair over a spreadsheet-style backing store.
type Store interface {
	// Load returns the collection conformed to its expected columns.
	// Absent and corrupt stores return an empty conformed table; only
	// StatusCorrupt carries a non-nil error, and callers may ignore it.
	Load(ctx context.Context, c Collection) (table.Table, Status, error)

	// Save overwrites the whole collection.
	Save(ctx context.Context, c Collection, t table.Table) error
}
