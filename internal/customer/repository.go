package customer

import (
	"context"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/model"
)

type Repository interface {
	Find(ctx context.Context, id string) (model.Customer, error)
	Create(ctx context.Context, c model.Customer) (model.Customer, error)
	Patch(ctx context.Context, id string, partial any) (model.Customer, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, cursor string, limit int) (entity.Page[model.Customer], error)
	EnsureSeed(ctx context.Context) (bool, error)
}
