package settings

import (
	"context"

	"github.com/fekuna/omnipos-retail-service/internal/model"
)

type Repository interface {
	Get(ctx context.Context) (model.StoreSettings, error)
	Patch(ctx context.Context, partial any) (model.StoreSettings, error)
}
