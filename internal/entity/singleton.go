package entity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

const singletonID = "singleton"

// Singleton is a kind that holds exactly one record, such as store settings.
type Singleton[T any] struct {
	backend  Backend
	kind     string
	defaults func() T
}

func NewSingleton[T any](backend Backend, kind string, defaults func() T) *Singleton[T] {
	return &Singleton[T]{backend: backend, kind: kind, defaults: defaults}
}

// Get returns the stored value or the defaults if nothing was written yet.
func (s *Singleton[T]) Get(ctx context.Context) (T, error) {
	raw, err := s.backend.Get(ctx, s.kind, singletonID)
	if errors.Is(err, ErrNotFound) {
		return s.defaults(), nil
	}
	if err != nil {
		var zero T
		return zero, err
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("decode %s: %w", s.kind, err)
	}
	return v, nil
}

// Patch merges partial over the current value, starting from the defaults
// on first write.
func (s *Singleton[T]) Patch(ctx context.Context, partial any) (T, error) {
	var out T
	err := s.backend.Update(ctx, func(tx Tx) error {
		current, err := tx.Get(s.kind, singletonID)
		if errors.Is(err, ErrNotFound) {
			current, err = json.Marshal(s.defaults())
		}
		if err != nil {
			return err
		}
		merged, err := merge(current, partial)
		if err != nil {
			return err
		}
		var v T
		if err := json.Unmarshal(merged, &v); err != nil {
			return fmt.Errorf("decode %s: %w", s.kind, err)
		}
		canonical, err := json.Marshal(v)
		if err != nil {
			return err
		}
		out = v
		return tx.Put(s.kind, singletonID, canonical)
	})
	return out, err
}
