// Package redisstore keeps entity records as Redis strings and the per-kind
// index as a sorted set scored zero, so ids enumerate lexicographically with
// ZRANGEBYLEX. Multi-record updates use WATCH/MULTI/EXEC and retry on conflict.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/redis/go-redis/v9"
)

var _ entity.Backend = (*Store)(nil)

const (
	defaultMaxRetries = 50
	scanBatch         = 200

	retryInitialInterval = 2 * time.Millisecond
	retryMaxInterval     = 100 * time.Millisecond
)

type Store struct {
	client     *redis.Client
	prefix     string
	maxRetries int
}

type Option func(*Store)

func WithMaxRetries(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxRetries = n
		}
	}
}

func NewStore(client *redis.Client, prefix string, opts ...Option) *Store {
	s := &Store{client: client, prefix: prefix, maxRetries: defaultMaxRetries}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) recordKey(kind, id string) string {
	return fmt.Sprintf("%s:rec:%s:%s", s.prefix, kind, id)
}

func (s *Store) indexKey(kind string) string {
	return fmt.Sprintf("%s:idx:%s", s.prefix, kind)
}

func (s *Store) Get(ctx context.Context, kind, id string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.recordKey(kind, id)).Bytes()
	if err == redis.Nil {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return data, nil
}

func (s *Store) Put(ctx context.Context, kind, id string, payload []byte) error {
	if id == "" {
		return entity.ErrEmptyID
	}
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		s.queuePut(ctx, p, kind, id, payload)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis put failed: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, kind, id string) (bool, error) {
	var del *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		del = p.Del(ctx, s.recordKey(kind, id))
		p.ZRem(ctx, s.indexKey(kind), id)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("redis delete failed: %w", err)
	}
	return del.Val() > 0, nil
}

func (s *Store) List(ctx context.Context, kind, cursor string, limit int) (entity.RawPage, error) {
	rangeBy := &redis.ZRangeBy{Min: "-", Max: "+"}
	if cursor != "" {
		rangeBy.Min = "(" + cursor
	}
	if limit > 0 {
		rangeBy.Count = int64(limit + 1)
	}
	ids, err := s.client.ZRangeByLex(ctx, s.indexKey(kind), rangeBy).Result()
	if err != nil {
		return entity.RawPage{}, fmt.Errorf("redis index read failed: %w", err)
	}

	page := entity.RawPage{Records: make([]entity.RawRecord, 0, len(ids))}
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
		page.Next = ids[len(ids)-1]
	}
	if len(ids) == 0 {
		return page, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.recordKey(kind, id)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return entity.RawPage{}, fmt.Errorf("redis mget failed: %w", err)
	}
	for i, v := range values {
		str, ok := v.(string)
		if !ok {
			// index entry without a record
			continue
		}
		page.Records = append(page.Records, entity.RawRecord{ID: ids[i], Payload: []byte(str)})
	}
	return page, nil
}

func (s *Store) Count(ctx context.Context, kind string) (int, error) {
	n, err := s.client.ZCard(ctx, s.indexKey(kind)).Result()
	if err != nil {
		return 0, fmt.Errorf("redis zcard failed: %w", err)
	}
	return int(n), nil
}

func (s *Store) Clear(ctx context.Context, kind string) error {
	if err := s.deleteMatching(ctx, fmt.Sprintf("%s:rec:%s:*", s.prefix, kind)); err != nil {
		return err
	}
	return s.client.Del(ctx, s.indexKey(kind)).Err()
}

func (s *Store) Reset(ctx context.Context) error {
	return s.deleteMatching(ctx, s.prefix+":*")
}

func (s *Store) deleteMatching(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return fmt.Errorf("redis scan failed: %w", err)
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis del failed: %w", err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// Update watches every key fn reads and commits the staged writes in a
// single MULTI/EXEC. A concurrent write to a watched key aborts the attempt
// and fn runs again after a jittered exponential delay; after maxRetries
// attempts the caller gets entity.ErrConflict.
func (s *Store) Update(ctx context.Context, fn func(tx entity.Tx) error) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = retryInitialInterval
	policy.MaxInterval = retryMaxInterval

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		if err := ctx.Err(); err != nil {
			return struct{}{}, backoff.Permanent(err)
		}
		err := s.client.Watch(ctx, func(rtx *redis.Tx) error {
			tx := &redisTx{ctx: ctx, store: s, rtx: rtx, staged: make(map[stagedKey]*[]byte)}
			if err := fn(tx); err != nil {
				return err
			}
			if len(tx.order) == 0 {
				return nil
			}
			_, err := rtx.TxPipelined(ctx, func(p redis.Pipeliner) error {
				tx.apply(p)
				return nil
			})
			return err
		})
		switch {
		case err == nil:
			return struct{}{}, nil
		case errors.Is(err, redis.TxFailedErr):
			return struct{}{}, entity.ErrConflict
		default:
			return struct{}{}, backoff.Permanent(err)
		}
	},
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(uint(s.maxRetries)),
	)
	return err
}

func (s *Store) Ping(ctx context.Context) error { return s.client.Ping(ctx).Err() }

func (s *Store) Close() error { return s.client.Close() }

func (s *Store) queuePut(ctx context.Context, p redis.Pipeliner, kind, id string, payload []byte) {
	p.Set(ctx, s.recordKey(kind, id), payload, 0)
	p.ZAdd(ctx, s.indexKey(kind), redis.Z{Score: 0, Member: id})
}

type stagedKey struct {
	kind string
	id   string
}

type redisTx struct {
	ctx    context.Context
	store  *Store
	rtx    *redis.Tx
	staged map[stagedKey]*[]byte // nil marks a delete
	order  []stagedKey
}

func (t *redisTx) stage(k stagedKey, payload *[]byte) {
	if _, ok := t.staged[k]; !ok {
		t.order = append(t.order, k)
	}
	t.staged[k] = payload
}

func (t *redisTx) Get(kind, id string) ([]byte, error) {
	if payload, ok := t.staged[stagedKey{kind, id}]; ok {
		if payload == nil {
			return nil, entity.ErrNotFound
		}
		return *payload, nil
	}
	key := t.store.recordKey(kind, id)
	if err := t.rtx.Watch(t.ctx, key).Err(); err != nil {
		return nil, fmt.Errorf("redis watch failed: %w", err)
	}
	data, err := t.rtx.Get(t.ctx, key).Bytes()
	if err == redis.Nil {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return data, nil
}

func (t *redisTx) Put(kind, id string, payload []byte) error {
	if id == "" {
		return entity.ErrEmptyID
	}
	p := append([]byte(nil), payload...)
	t.stage(stagedKey{kind, id}, &p)
	return nil
}

func (t *redisTx) Delete(kind, id string) (bool, error) {
	if _, err := t.Get(kind, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	t.stage(stagedKey{kind, id}, nil)
	return true, nil
}

func (t *redisTx) apply(p redis.Pipeliner) {
	for _, k := range t.order {
		payload := t.staged[k]
		if payload == nil {
			p.Del(t.ctx, t.store.recordKey(k.kind, k.id))
			p.ZRem(t.ctx, t.store.indexKey(k.kind), k.id)
			continue
		}
		t.store.queuePut(t.ctx, p, k.kind, k.id, *payload)
	}
}
