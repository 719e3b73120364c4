package entity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"go.uber.org/zap"
)

// Kind describes one category of record: its storage name, the state
// returned for absent ids, how to read a record's id, and its demo data.
type Kind[T any] struct {
	Name    string
	Initial T
	ID      func(T) string
	Seed    func(now time.Time) []T
}

type Page[T any] struct {
	Items []T    `json:"items"`
	Next  string `json:"next,omitempty"`
}

// Collection is the typed repository for a single kind.
type Collection[T any] struct {
	backend Backend
	kind    Kind[T]
	logger  logger.ZapLogger
	now     func() time.Time
}

func NewCollection[T any](backend Backend, kind Kind[T], log logger.ZapLogger) *Collection[T] {
	return &Collection[T]{
		backend: backend,
		kind:    kind,
		logger:  log.With(zap.String("kind", kind.Name)),
		now:     time.Now,
	}
}

func (c *Collection[T]) Name() string { return c.kind.Name }

// Get returns the stored record, or the kind's initial state when the id is absent.
func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	rec, err := c.Find(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return c.kind.Initial, nil
	}
	return rec, err
}

// Find returns the stored record or ErrNotFound.
func (c *Collection[T]) Find(ctx context.Context, id string) (T, error) {
	var zero T
	raw, err := c.backend.Get(ctx, c.kind.Name, id)
	if err != nil {
		return zero, err
	}
	return c.decode(raw)
}

func (c *Collection[T]) Exists(ctx context.Context, id string) (bool, error) {
	_, err := c.backend.Get(ctx, c.kind.Name, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// Create writes rec under its id, replacing any record with the same id.
func (c *Collection[T]) Create(ctx context.Context, rec T) (T, error) {
	id := c.kind.ID(rec)
	if id == "" {
		return rec, ErrEmptyID
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return rec, fmt.Errorf("encode %s: %w", c.kind.Name, err)
	}
	if err := c.backend.Put(ctx, c.kind.Name, id, raw); err != nil {
		return rec, err
	}
	return rec, nil
}

// Patch shallow-merges the top-level fields of partial into the stored record.
// The id field cannot be changed.
func (c *Collection[T]) Patch(ctx context.Context, id string, partial any) (T, error) {
	var out T
	err := c.backend.Update(ctx, func(tx Tx) error {
		current, err := tx.Get(c.kind.Name, id)
		if err != nil {
			return err
		}
		merged, err := merge(current, partial, "id")
		if err != nil {
			return err
		}
		rec, err := c.decode(merged)
		if err != nil {
			return err
		}
		out = rec
		return c.With(tx).Put(rec)
	})
	return out, err
}

// Mutate applies fn to the stored record inside a transaction.
func (c *Collection[T]) Mutate(ctx context.Context, id string, fn func(*T) error) (T, error) {
	var out T
	err := c.backend.Update(ctx, func(tx Tx) error {
		view := c.With(tx)
		rec, err := view.Find(id)
		if err != nil {
			return err
		}
		if err := fn(&rec); err != nil {
			return err
		}
		out = rec
		return view.Put(rec)
	})
	return out, err
}

func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	return c.backend.Delete(ctx, c.kind.Name, id)
}

// List loads records after cursor. Records whose payload cannot be decoded are skipped.
func (c *Collection[T]) List(ctx context.Context, cursor string, limit int) (Page[T], error) {
	raw, err := c.backend.List(ctx, c.kind.Name, cursor, limit)
	if err != nil {
		return Page[T]{}, err
	}
	page := Page[T]{Items: make([]T, 0, len(raw.Records)), Next: raw.Next}
	for _, r := range raw.Records {
		rec, err := c.decode(r.Payload)
		if err != nil {
			c.logger.Warn("skipping malformed record", zap.String("id", r.ID), zap.Error(err))
			continue
		}
		page.Items = append(page.Items, rec)
	}
	return page, nil
}

// All is List without pagination.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	page, err := c.List(ctx, "", 0)
	return page.Items, err
}

// EnsureSeed inserts the kind's demo records when its index is empty. It
// reports whether anything was written.
func (c *Collection[T]) EnsureSeed(ctx context.Context) (bool, error) {
	if c.kind.Seed == nil {
		return false, nil
	}
	n, err := c.backend.Count(ctx, c.kind.Name)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	records := c.kind.Seed(c.now())
	err = c.backend.Update(ctx, func(tx Tx) error {
		view := c.With(tx)
		for _, rec := range records {
			if err := view.Put(rec); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	c.logger.Info("seeded collection", zap.Int("count", len(records)))
	return true, nil
}

func (c *Collection[T]) Index() *Index {
	return &Index{backend: c.backend, name: c.kind.Name}
}

// With binds the collection to an open transaction.
func (c *Collection[T]) With(tx Tx) *TxView[T] {
	return &TxView[T]{c: c, tx: tx}
}

func (c *Collection[T]) decode(raw []byte) (T, error) {
	var rec T
	if err := json.Unmarshal(raw, &rec); err != nil {
		return rec, fmt.Errorf("decode %s: %w", c.kind.Name, err)
	}
	return rec, nil
}

// TxView is a collection scoped to one transaction.
type TxView[T any] struct {
	c  *Collection[T]
	tx Tx
}

func (v *TxView[T]) Find(id string) (T, error) {
	var zero T
	raw, err := v.tx.Get(v.c.kind.Name, id)
	if err != nil {
		return zero, err
	}
	return v.c.decode(raw)
}

func (v *TxView[T]) Put(rec T) error {
	id := v.c.kind.ID(rec)
	if id == "" {
		return ErrEmptyID
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s: %w", v.c.kind.Name, err)
	}
	return v.tx.Put(v.c.kind.Name, id, raw)
}

func (v *TxView[T]) Delete(id string) (bool, error) {
	return v.tx.Delete(v.c.kind.Name, id)
}

// Index is the id set of one kind.
type Index struct {
	backend Backend
	name    string
}

func (i *Index) Name() string { return i.name }

func (i *Index) Count(ctx context.Context) (int, error) {
	return i.backend.Count(ctx, i.name)
}

// Clear drops this kind only. Use Backend.Reset to wipe the whole store.
func (i *Index) Clear(ctx context.Context) error {
	return i.backend.Clear(ctx, i.name)
}
