// Package entity provides typed, indexed record collections on top of a
// pluggable key-value Backend. Every record belongs to one kind; the backend
// keeps an index of ids per kind that drives enumeration.
package entity

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("entity: not found")
	// ErrConflict is returned when an optimistic transaction keeps losing races.
	ErrConflict = errors.New("entity: concurrent update conflict")
	ErrEmptyID  = errors.New("entity: empty id")
)

// RawRecord is a stored payload together with its id.
type RawRecord struct {
	ID      string
	Payload []byte
}

// RawPage is one slice of a kind's index. Next is empty when no records remain.
type RawPage struct {
	Records []RawRecord
	Next    string
}

// Tx is the read/write view handed to Backend.Update. Writes become visible
// to other callers only when the enclosing Update returns nil.
type Tx interface {
	Get(kind, id string) ([]byte, error)
	Put(kind, id string, payload []byte) error
	Delete(kind, id string) (bool, error)
}

// Backend stores opaque payloads keyed by (kind, id) and maintains the per-kind index.
type Backend interface {
	Get(ctx context.Context, kind, id string) ([]byte, error)
	Put(ctx context.Context, kind, id string, payload []byte) error
	Delete(ctx context.Context, kind, id string) (bool, error)

	// List returns records ordered by id, starting after cursor. A limit <= 0
	// loads the whole kind in one pass.
	List(ctx context.Context, kind, cursor string, limit int) (RawPage, error)
	Count(ctx context.Context, kind string) (int, error)

	// Clear removes every record of one kind. Reset removes everything the
	// backend holds, across all kinds.
	Clear(ctx context.Context, kind string) error
	Reset(ctx context.Context) error

	Update(ctx context.Context, fn func(tx Tx) error) error

	Ping(ctx context.Context) error
	Close() error
}
