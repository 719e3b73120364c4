package usecase

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/inventory"
	"github.com/fekuna/omnipos-retail-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/validate"
	"go.uber.org/zap"
)

var ErrInsufficientInventory = &validate.Error{Message: "insufficient inventory"}

type inventoryUseCase struct {
	repo   inventory.Repository
	logger logger.ZapLogger
}

func NewInventoryUseCase(repo inventory.Repository, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *inventoryUseCase) ListLowStock(ctx context.Context) ([]model.Product, error) {
	if _, err := uc.repo.EnsureSeed(ctx); err != nil {
		return nil, err
	}
	products, err := uc.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	low := make([]model.Product, 0)
	for _, p := range products {
		if p.LowStock() {
			low = append(low, p)
		}
	}
	return low, nil
}

func (uc *inventoryUseCase) AdjustInventory(ctx context.Context, input *dto.AdjustInventoryInput) (*model.Product, error) {
	var c validate.Checker
	c.Required("productId", input.ProductID)
	c.Present("quantityChange", input.QuantityChange != nil)
	if err := c.Err(); err != nil {
		return nil, err
	}

	var before int
	p, err := uc.repo.Mutate(ctx, input.ProductID, func(p *model.Product) error {
		before = p.StockLevel
		if p.StockLevel+*input.QuantityChange < 0 {
			return ErrInsufficientInventory
		}
		p.StockLevel += *input.QuantityChange
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("inventory adjusted",
		zap.String("product_id", p.ID),
		zap.Int("quantity_before", before),
		zap.Int("quantity_after", p.StockLevel),
		zap.String("reason", input.Reason))
	return &p, nil
}

// DecrementForSale subtracts each line's quantity from its product in list
// order. Lines naming unknown products are skipped. Stock is allowed to go
// negative; that is logged, not rejected.
func (uc *inventoryUseCase) DecrementForSale(tx entity.Tx, items []model.SaleItem) error {
	products := uc.repo.With(tx)
	for _, item := range items {
		p, err := products.Find(item.ProductID)
		if errors.Is(err, entity.ErrNotFound) {
			uc.logger.Debug("sale item for unknown product", zap.String("product_id", item.ProductID))
			continue
		}
		if err != nil {
			return err
		}
		p.StockLevel -= item.Quantity
		if p.StockLevel < 0 {
			uc.logger.Warn("stock level below zero after sale",
				zap.String("product_id", p.ID),
				zap.Int("stock_level", p.StockLevel))
		}
		if err := products.Put(p); err != nil {
			return err
		}
	}
	return nil
}
