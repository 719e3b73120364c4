package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/entity/memory"
	"github.com/fekuna/omnipos-retail-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/product/repository"
	"github.com/fekuna/omnipos-retail-service/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fixture struct {
	backend  entity.Backend
	products *entity.Collection[model.Product]
	uc       *inventoryUseCase
	logs     *observer.ObservedLogs
}

func newFixture(t *testing.T, seed ...model.Product) *fixture {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	log := logger.Wrap(zap.New(core))
	backend := memory.NewStore()
	products := repository.NewEntityRepository(backend, log)
	for _, p := range seed {
		_, err := products.Create(context.Background(), p)
		require.NoError(t, err)
	}
	return &fixture{
		backend:  backend,
		products: products,
		uc:       NewInventoryUseCase(products, log).(*inventoryUseCase),
		logs:     logs,
	}
}

func (f *fixture) stock(t *testing.T, id string) int {
	t.Helper()
	p, err := f.products.Find(context.Background(), id)
	require.NoError(t, err)
	return p.StockLevel
}

func change(n int) *int { return &n }

func TestAdjustInventory(t *testing.T) {
	f := newFixture(t, model.Product{ID: "p1", StockLevel: 5})

	p, err := f.uc.AdjustInventory(context.Background(), &dto.AdjustInventoryInput{ProductID: "p1", QuantityChange: change(7)})
	require.NoError(t, err)
	assert.Equal(t, 12, p.StockLevel)

	p, err = f.uc.AdjustInventory(context.Background(), &dto.AdjustInventoryInput{ProductID: "p1", QuantityChange: change(-12)})
	require.NoError(t, err)
	assert.Equal(t, 0, p.StockLevel)
}

func TestAdjustInventoryRejectsNegativeResult(t *testing.T) {
	f := newFixture(t, model.Product{ID: "p1", StockLevel: 3})

	_, err := f.uc.AdjustInventory(context.Background(), &dto.AdjustInventoryInput{ProductID: "p1", QuantityChange: change(-4)})
	assert.ErrorIs(t, err, ErrInsufficientInventory)
	assert.True(t, validate.Is(err))
	assert.Equal(t, 3, f.stock(t, "p1"))
}

func TestAdjustInventoryInputErrors(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.AdjustInventory(context.Background(), &dto.AdjustInventoryInput{ProductID: "p1"})
	assert.EqualError(t, err, "quantityChange is required")

	_, err = f.uc.AdjustInventory(context.Background(), &dto.AdjustInventoryInput{ProductID: "nope", QuantityChange: change(1)})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestListLowStock(t *testing.T) {
	f := newFixture(t,
		model.Product{ID: "a", StockLevel: 2, LowStockThreshold: 10},
		model.Product{ID: "b", StockLevel: 50, LowStockThreshold: 10},
		model.Product{ID: "c", StockLevel: 10, LowStockThreshold: 10},
	)
	low, err := f.uc.ListLowStock(context.Background())
	require.NoError(t, err)
	ids := []string{}
	for _, p := range low {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"a", "c"}, ids)
}

func TestDecrementForSale(t *testing.T) {
	f := newFixture(t, model.Product{ID: "p1", StockLevel: 10}, model.Product{ID: "p2", StockLevel: 1})

	err := f.backend.Update(context.Background(), func(tx entity.Tx) error {
		return f.uc.DecrementForSale(tx, []model.SaleItem{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "ghost", Quantity: 5},
			{ProductID: "p1", Quantity: 1},
			{ProductID: "p2", Quantity: 3},
		})
	})
	require.NoError(t, err)

	assert.Equal(t, 7, f.stock(t, "p1"))
	assert.Equal(t, -2, f.stock(t, "p2"))
	assert.Equal(t, 1, f.logs.FilterMessage("stock level below zero after sale").Len())
}

func TestDecrementForSaleRollsBackWithTransaction(t *testing.T) {
	f := newFixture(t, model.Product{ID: "p1", StockLevel: 10})

	boom := errors.New("sale write failed")
	err := f.backend.Update(context.Background(), func(tx entity.Tx) error {
		if err := f.uc.DecrementForSale(tx, []model.SaleItem{{ProductID: "p1", Quantity: 2}}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 10, f.stock(t, "p1"))
}
