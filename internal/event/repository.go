package event

import (
	"context"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/model"
)

type Repository interface {
	Find(ctx context.Context, id string) (model.Event, error)
	Create(ctx context.Context, e model.Event) (model.Event, error)
	Patch(ctx context.Context, id string, partial any) (model.Event, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, cursor string, limit int) (entity.Page[model.Event], error)
	EnsureSeed(ctx context.Context) (bool, error)
}
