package onlineorder

import (
	"context"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/model"
)

type Repository interface {
	Find(ctx context.Context, id string) (model.OnlineOrder, error)
	Patch(ctx context.Context, id string, partial any) (model.OnlineOrder, error)
	List(ctx context.Context, cursor string, limit int) (entity.Page[model.OnlineOrder], error)
	EnsureSeed(ctx context.Context) (bool, error)
}
