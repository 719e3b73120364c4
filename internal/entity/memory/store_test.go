package memory

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/entity/entitytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreContract(t *testing.T) {
	entitytest.RunBackendSuite(t, func(t *testing.T) entity.Backend {
		return NewStore()
	})
}

func TestStoredPayloadIsCopied(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	payload := []byte(`{"a":1}`)
	require.NoError(t, s.Put(ctx, "k", "1", payload))
	payload[2] = 'b'

	got, err := s.Get(ctx, "k", "1")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))

	got[2] = 'c'
	again, _ := s.Get(ctx, "k", "1")
	assert.Equal(t, `{"a":1}`, string(again))
}

func TestUpdateHonoursCancelledContext(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	err := s.Update(ctx, func(tx entity.Tx) error {
		cancel()
		return tx.Put("k", "1", []byte(`{}`))
	})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = s.Get(context.Background(), "k", "1")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRejectsEmptyID(t *testing.T) {
	s := NewStore()
	assert.ErrorIs(t, s.Put(context.Background(), "k", "", []byte(`{}`)), entity.ErrEmptyID)
}
