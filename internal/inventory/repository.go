package inventory

import (
	"context"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/model"
)

// Repository is the stock-facing view of the product collection.
type Repository interface {
	All(ctx context.Context) ([]model.Product, error)
	Mutate(ctx context.Context, id string, fn func(*model.Product) error) (model.Product, error)
	With(tx entity.Tx) *entity.TxView[model.Product]
	EnsureSeed(ctx context.Context) (bool, error)
}
