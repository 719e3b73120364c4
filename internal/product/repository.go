package product

import (
	"context"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/model"
)

type Repository interface {
	Find(ctx context.Context, id string) (model.Product, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)
	Patch(ctx context.Context, id string, partial any) (model.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, cursor string, limit int) (entity.Page[model.Product], error)
	EnsureSeed(ctx context.Context) (bool, error)
}
