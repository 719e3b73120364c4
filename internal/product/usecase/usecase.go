package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/product"
	"github.com/fekuna/omnipos-retail-service/internal/product/dto"
	"github.com/fekuna/omnipos-retail-service/internal/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultLowStockThreshold = 10

type productUseCase struct {
	repo   product.Repository
	logger logger.ZapLogger
	now    func() time.Time
}

func NewProductUseCase(repo product.Repository, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		logger: log,
		now:    time.Now,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	var c validate.Checker
	c.RequiredPtr("name", input.Name)
	c.Present("type", input.Type != nil)
	c.RequiredPtr("origin", input.Origin)
	c.Present("price", input.Price != nil)
	c.Present("stockLevel", input.StockLevel != nil)
	checkProductFields(&c, input.Type, input.Price, input.Cost, input.StockLevel, input.LowStockThreshold)
	if err := c.Err(); err != nil {
		return nil, err
	}

	p := model.Product{
		ID:                uuid.New().String(),
		Name:              *input.Name,
		Type:              *input.Type,
		Origin:            *input.Origin,
		Vintage:           input.Vintage,
		Price:             *input.Price,
		StockLevel:        *input.StockLevel,
		LowStockThreshold: defaultLowStockThreshold,
		CreatedAt:         uc.now().UnixMilli(),
	}
	if input.Cost != nil {
		p.Cost = *input.Cost
	}
	if input.LowStockThreshold != nil && *input.LowStockThreshold != 0 {
		p.LowStockThreshold = *input.LowStockThreshold
	}
	if input.ImageURL != nil {
		p.ImageURL = *input.ImageURL
	}

	created, err := uc.repo.Create(ctx, p)
	if err != nil {
		uc.logger.Error("failed to create product", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) (entity.Page[model.Product], error) {
	if _, err := uc.repo.EnsureSeed(ctx); err != nil {
		return entity.Page[model.Product]{}, err
	}
	return uc.repo.List(ctx, filters.Cursor, filters.Limit)
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, id string, input *dto.UpdateProductInput) (*model.Product, error) {
	var c validate.Checker
	if input.Name != nil {
		c.Required("name", *input.Name)
	}
	if input.Origin != nil {
		c.Required("origin", *input.Origin)
	}
	checkProductFields(&c, input.Type, input.Price, input.Cost, input.StockLevel, input.LowStockThreshold)
	if err := c.Err(); err != nil {
		return nil, err
	}

	p, err := uc.repo.Patch(ctx, id, input)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return entity.ErrNotFound
	}
	return nil
}

func checkProductFields(c *validate.Checker, typ *model.ProductType, price, cost *float64, stock, threshold *int) {
	if typ != nil {
		c.OneOf("type", string(*typ), typ.Valid(), validate.Names(model.ProductTypes))
	}
	if price != nil {
		c.NonNegative("price", *price)
	}
	if cost != nil {
		c.NonNegative("cost", *cost)
	}
	if stock != nil {
		c.NonNegative("stockLevel", float64(*stock))
	}
	if threshold != nil {
		c.NonNegative("lowStockThreshold", float64(*threshold))
	}
}
