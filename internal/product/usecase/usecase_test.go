package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/entity/memory"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/product/dto"
	"github.com/fekuna/omnipos-retail-service/internal/product/repository"
	"github.com/fekuna/omnipos-retail-service/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newUseCase(t *testing.T) *productUseCase {
	t.Helper()
	repo := repository.NewEntityRepository(memory.NewStore(), logger.NewNop())
	uc := NewProductUseCase(repo, logger.NewNop()).(*productUseCase)
	uc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return uc
}

func validInput() *dto.CreateProductInput {
	return &dto.CreateProductInput{
		Name:       ptr("Tusker Lager"),
		Type:       ptr(model.ProductTypeBeer),
		Origin:     ptr("Kenya"),
		Price:      ptr(250.0),
		StockLevel: ptr(100),
	}
}

func TestCreateProductDefaults(t *testing.T) {
	uc := newUseCase(t)
	p, err := uc.CreateProduct(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 0.0, p.Cost)
	assert.Equal(t, 10, p.LowStockThreshold)
	assert.Equal(t, int64(1700000000000), p.CreatedAt)

	got, err := uc.GetProduct(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, *p, *got)
}

func TestCreateProductZeroThresholdFallsBack(t *testing.T) {
	uc := newUseCase(t)
	in := validInput()
	in.LowStockThreshold = ptr(0)
	p, err := uc.CreateProduct(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 10, p.LowStockThreshold)

	in.LowStockThreshold = ptr(24)
	p, err = uc.CreateProduct(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 24, p.LowStockThreshold)
}

func TestCreateProductValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.CreateProductInput)
		msg    string
	}{
		{"missing name", func(in *dto.CreateProductInput) { in.Name = nil }, "name is required"},
		{"blank origin", func(in *dto.CreateProductInput) { in.Origin = ptr("") }, "origin is required"},
		{"missing price", func(in *dto.CreateProductInput) { in.Price = nil }, "price is required"},
		{"negative price", func(in *dto.CreateProductInput) { in.Price = ptr(-5.0) }, "price must not be negative"},
		{"negative stock", func(in *dto.CreateProductInput) { in.StockLevel = ptr(-1) }, "stockLevel must not be negative"},
		{"unknown type", func(in *dto.CreateProductInput) { in.Type = ptr(model.ProductType("Cider")) }, `type "Cider" is not one of Wine, Spirit, Liqueur, Beer`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(t)
			in := validInput()
			tt.mutate(in)
			_, err := uc.CreateProduct(context.Background(), in)
			require.Error(t, err)
			assert.True(t, validate.Is(err))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestUpdateProductMergesFields(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t)
	p, err := uc.CreateProduct(ctx, validInput())
	require.NoError(t, err)

	updated, err := uc.UpdateProduct(ctx, p.ID, &dto.UpdateProductInput{Price: ptr(300.0)})
	require.NoError(t, err)
	assert.Equal(t, 300.0, updated.Price)
	assert.Equal(t, "Tusker Lager", updated.Name)
	assert.Equal(t, 100, updated.StockLevel)
	assert.Equal(t, p.CreatedAt, updated.CreatedAt)
}

func TestUpdateProductErrors(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t)

	_, err := uc.UpdateProduct(ctx, "missing", &dto.UpdateProductInput{Price: ptr(1.0)})
	assert.ErrorIs(t, err, entity.ErrNotFound)

	p, err := uc.CreateProduct(ctx, validInput())
	require.NoError(t, err)
	_, err = uc.UpdateProduct(ctx, p.ID, &dto.UpdateProductInput{Price: ptr(-1.0)})
	assert.True(t, validate.Is(err))
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t)
	p, err := uc.CreateProduct(ctx, validInput())
	require.NoError(t, err)

	require.NoError(t, uc.DeleteProduct(ctx, p.ID))
	assert.ErrorIs(t, uc.DeleteProduct(ctx, p.ID), entity.ErrNotFound)
	_, err = uc.GetProduct(ctx, p.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestListProductsSeedsOnce(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t)

	page, err := uc.ListProducts(ctx, &dto.ProductFilters{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 99)

	page, err = uc.ListProducts(ctx, &dto.ProductFilters{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page.Items, 10)
	assert.Equal(t, page.Items[9].ID, page.Next)

	rest, err := uc.ListProducts(ctx, &dto.ProductFilters{Cursor: page.Next})
	require.NoError(t, err)
	assert.Len(t, rest.Items, 89)
}
