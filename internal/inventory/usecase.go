package inventory

import (
	"context"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-retail-service/internal/model"
)

type UseCase interface {
	ListLowStock(ctx context.Context) ([]model.Product, error)
	AdjustInventory(ctx context.Context, input *dto.AdjustInventoryInput) (*model.Product, error)
	// DecrementForSale runs inside the caller's transaction.
	DecrementForSale(tx entity.Tx, items []model.SaleItem) error
}
