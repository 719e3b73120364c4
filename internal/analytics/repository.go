package analytics

import (
	"context"

	"github.com/fekuna/omnipos-retail-service/internal/model"
)

// ProductRepository and SaleRepository are read-only views over the
// product and sale collections.
type ProductRepository interface {
	All(ctx context.Context) ([]model.Product, error)
	EnsureSeed(ctx context.Context) (bool, error)
}

type SaleRepository interface {
	All(ctx context.Context) ([]model.Sale, error)
	EnsureSeed(ctx context.Context) (bool, error)
}
