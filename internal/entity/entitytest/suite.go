// Package entitytest holds the behavioural contract every entity.Backend
// must satisfy. Backend packages run it from their own tests.
package entitytest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns a fresh, empty backend for one subtest.
type Factory func(t *testing.T) entity.Backend

func RunBackendSuite(t *testing.T, newBackend Factory) {
	t.Run("GetMissing", func(t *testing.T) {
		b := newBackend(t)
		_, err := b.Get(context.Background(), "product", "nope")
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("PutGetOverwrite", func(t *testing.T) {
		ctx := context.Background()
		b := newBackend(t)
		require.NoError(t, b.Put(ctx, "product", "p1", []byte(`{"id":"p1","v":1}`)))
		require.NoError(t, b.Put(ctx, "product", "p1", []byte(`{"id":"p1","v":2}`)))

		got, err := b.Get(ctx, "product", "p1")
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"p1","v":2}`, string(got))

		n, err := b.Count(ctx, "product")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("KindsAreIsolated", func(t *testing.T) {
		ctx := context.Background()
		b := newBackend(t)
		require.NoError(t, b.Put(ctx, "product", "x", []byte(`{}`)))
		_, err := b.Get(ctx, "customer", "x")
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		ctx := context.Background()
		b := newBackend(t)
		require.NoError(t, b.Put(ctx, "sale", "s1", []byte(`{}`)))

		ok, err := b.Delete(ctx, "sale", "s1")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = b.Delete(ctx, "sale", "s1")
		require.NoError(t, err)
		assert.False(t, ok)

		_, err = b.Get(ctx, "sale", "s1")
		assert.ErrorIs(t, err, entity.ErrNotFound)
		n, err := b.Count(ctx, "sale")
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("ListOrderedAndPaginated", func(t *testing.T) {
		ctx := context.Background()
		b := newBackend(t)
		for _, id := range []string{"c", "a", "e", "b", "d"} {
			require.NoError(t, b.Put(ctx, "event", id, []byte(fmt.Sprintf(`{"id":%q}`, id))))
		}

		all, err := b.List(ctx, "event", "", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(all))
		assert.Empty(t, all.Next)

		first, err := b.List(ctx, "event", "", 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, ids(first))
		assert.Equal(t, "b", first.Next)

		second, err := b.List(ctx, "event", first.Next, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "d"}, ids(second))

		last, err := b.List(ctx, "event", second.Next, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"e"}, ids(last))
		assert.Empty(t, last.Next)
	})

	t.Run("ListEmptyKind", func(t *testing.T) {
		b := newBackend(t)
		page, err := b.List(context.Background(), "staffMember", "", 0)
		require.NoError(t, err)
		assert.Empty(t, page.Records)
		assert.Empty(t, page.Next)
	})

	t.Run("ClearIsScoped", func(t *testing.T) {
		ctx := context.Background()
		b := newBackend(t)
		require.NoError(t, b.Put(ctx, "product", "p1", []byte(`{}`)))
		require.NoError(t, b.Put(ctx, "customer", "c1", []byte(`{}`)))

		require.NoError(t, b.Clear(ctx, "product"))

		n, err := b.Count(ctx, "product")
		require.NoError(t, err)
		assert.Zero(t, n)
		_, err = b.Get(ctx, "customer", "c1")
		assert.NoError(t, err)
	})

	t.Run("ResetWipesEverything", func(t *testing.T) {
		ctx := context.Background()
		b := newBackend(t)
		require.NoError(t, b.Put(ctx, "product", "p1", []byte(`{}`)))
		require.NoError(t, b.Put(ctx, "settings", "singleton", []byte(`{}`)))

		require.NoError(t, b.Reset(ctx))

		for _, kind := range []string{"product", "settings"} {
			n, err := b.Count(ctx, kind)
			require.NoError(t, err)
			assert.Zero(t, n, kind)
		}
		_, err := b.Get(ctx, "settings", "singleton")
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("UpdateCommits", func(t *testing.T) {
		ctx := context.Background()
		b := newBackend(t)
		require.NoError(t, b.Put(ctx, "product", "old", []byte(`{}`)))

		err := b.Update(ctx, func(tx entity.Tx) error {
			if err := tx.Put("product", "p1", []byte(`{"n":1}`)); err != nil {
				return err
			}
			got, err := tx.Get("product", "p1")
			if err != nil {
				return err
			}
			if string(got) != `{"n":1}` {
				return fmt.Errorf("read-your-writes: got %s", got)
			}
			ok, err := tx.Delete("product", "old")
			if err != nil || !ok {
				return fmt.Errorf("delete old: %v %v", ok, err)
			}
			ok, err = tx.Delete("product", "ghost")
			if err != nil || ok {
				return fmt.Errorf("delete missing: %v %v", ok, err)
			}
			_, err = tx.Get("product", "old")
			if !errors.Is(err, entity.ErrNotFound) {
				return fmt.Errorf("deleted record still visible: %v", err)
			}
			return nil
		})
		require.NoError(t, err)

		_, err = b.Get(ctx, "product", "p1")
		assert.NoError(t, err)
		_, err = b.Get(ctx, "product", "old")
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("UpdateRollsBack", func(t *testing.T) {
		ctx := context.Background()
		b := newBackend(t)
		require.NoError(t, b.Put(ctx, "product", "p1", []byte(`{"stock":10}`)))

		boom := errors.New("boom")
		err := b.Update(ctx, func(tx entity.Tx) error {
			if err := tx.Put("product", "p1", []byte(`{"stock":8}`)); err != nil {
				return err
			}
			if err := tx.Put("sale", "s1", []byte(`{}`)); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		got, err := b.Get(ctx, "product", "p1")
		require.NoError(t, err)
		assert.JSONEq(t, `{"stock":10}`, string(got))
		_, err = b.Get(ctx, "sale", "s1")
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("ConcurrentIncrementsDoNotLoseUpdates", func(t *testing.T) {
		ctx := context.Background()
		b := newBackend(t)
		require.NoError(t, b.Put(ctx, "counter", "c", []byte("0")))

		const workers = 8
		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- b.Update(ctx, func(tx entity.Tx) error {
					raw, err := tx.Get("counter", "c")
					if err != nil {
						return err
					}
					var n int
					if _, err := fmt.Sscanf(string(raw), "%d", &n); err != nil {
						return err
					}
					return tx.Put("counter", "c", []byte(fmt.Sprint(n+1)))
				})
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		raw, err := b.Get(ctx, "counter", "c")
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprint(workers), string(raw))
	})

	t.Run("Ping", func(t *testing.T) {
		assert.NoError(t, newBackend(t).Ping(context.Background()))
	})
}

func ids(p entity.RawPage) []string {
	out := make([]string, 0, len(p.Records))
	for _, r := range p.Records {
		out = append(out, r.ID)
	}
	return out
}
