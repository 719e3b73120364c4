// Package memory provides an in-process entity backend used for tests,
// demos and single-node deployments without external storage.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
)

var _ entity.Backend = (*Store)(nil)

type bucket struct {
	records map[string][]byte
	index   []string // sorted ids
}

func newBucket() *bucket {
	return &bucket{records: make(map[string][]byte)}
}

func (b *bucket) put(id string, payload []byte) {
	if _, ok := b.records[id]; !ok {
		i := sort.SearchStrings(b.index, id)
		b.index = append(b.index, "")
		copy(b.index[i+1:], b.index[i:])
		b.index[i] = id
	}
	b.records[id] = clone(payload)
}

func (b *bucket) remove(id string) bool {
	if _, ok := b.records[id]; !ok {
		return false
	}
	delete(b.records, id)
	i := sort.SearchStrings(b.index, id)
	if i < len(b.index) && b.index[i] == id {
		b.index = append(b.index[:i], b.index[i+1:]...)
	}
	return true
}

// Store keeps every kind in memory behind a single lock. Update holds the
// write lock for the whole transaction, which serializes writers.
type Store struct {
	mu    sync.RWMutex
	kinds map[string]*bucket
}

func NewStore() *Store {
	return &Store{kinds: make(map[string]*bucket)}
}

func (s *Store) bucket(kind string) *bucket {
	b, ok := s.kinds[kind]
	if !ok {
		b = newBucket()
		s.kinds[kind] = b
	}
	return b
}

func (s *Store) Get(_ context.Context, kind, id string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.get(kind, id)
}

func (s *Store) get(kind, id string) ([]byte, error) {
	b, ok := s.kinds[kind]
	if !ok {
		return nil, entity.ErrNotFound
	}
	payload, ok := b.records[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return clone(payload), nil
}

func (s *Store) Put(_ context.Context, kind, id string, payload []byte) error {
	if id == "" {
		return entity.ErrEmptyID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bucket(kind).put(id, payload)
	return nil
}

func (s *Store) Delete(_ context.Context, kind, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.kinds[kind]
	if !ok {
		return false, nil
	}
	return b.remove(id), nil
}

func (s *Store) List(_ context.Context, kind, cursor string, limit int) (entity.RawPage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	page := entity.RawPage{Records: []entity.RawRecord{}}
	b, ok := s.kinds[kind]
	if !ok {
		return page, nil
	}
	start := 0
	if cursor != "" {
		start = sort.Search(len(b.index), func(i int) bool { return b.index[i] > cursor })
	}
	i := start
	for ; i < len(b.index); i++ {
		if limit > 0 && len(page.Records) == limit {
			break
		}
		id := b.index[i]
		payload, ok := b.records[id]
		if !ok {
			continue
		}
		page.Records = append(page.Records, entity.RawRecord{ID: id, Payload: clone(payload)})
	}
	if i < len(b.index) && len(page.Records) > 0 {
		page.Next = page.Records[len(page.Records)-1].ID
	}
	return page, nil
}

func (s *Store) Count(_ context.Context, kind string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b, ok := s.kinds[kind]; ok {
		return len(b.index), nil
	}
	return 0, nil
}

func (s *Store) Clear(_ context.Context, kind string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.kinds, kind)
	return nil
}

func (s *Store) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kinds = make(map[string]*bucket)
	return nil
}

// Update stages writes and applies them only if fn succeeds.
func (s *Store) Update(ctx context.Context, fn func(tx entity.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{store: s, staged: make(map[key]*[]byte)}
	if err := fn(tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, k := range tx.order {
		payload := tx.staged[k]
		if payload == nil {
			if b, ok := s.kinds[k.kind]; ok {
				b.remove(k.id)
			}
			continue
		}
		s.bucket(k.kind).put(k.id, *payload)
	}
	return nil
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close() error { return nil }

type key struct {
	kind string
	id   string
}

type memTx struct {
	store  *Store
	staged map[key]*[]byte // nil marks a delete
	order  []key
}

func (t *memTx) stage(k key, payload *[]byte) {
	if _, ok := t.staged[k]; !ok {
		t.order = append(t.order, k)
	}
	t.staged[k] = payload
}

func (t *memTx) Get(kind, id string) ([]byte, error) {
	if payload, ok := t.staged[key{kind, id}]; ok {
		if payload == nil {
			return nil, entity.ErrNotFound
		}
		return clone(*payload), nil
	}
	return t.store.get(kind, id)
}

func (t *memTx) Put(kind, id string, payload []byte) error {
	if id == "" {
		return entity.ErrEmptyID
	}
	p := clone(payload)
	t.stage(key{kind, id}, &p)
	return nil
}

func (t *memTx) Delete(kind, id string) (bool, error) {
	if _, err := t.Get(kind, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	t.stage(key{kind, id}, nil)
	return true, nil
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
