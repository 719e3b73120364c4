package purchaseorder

import (
	"context"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/model"
)

type Repository interface {
	Find(ctx context.Context, id string) (model.PurchaseOrder, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, o model.PurchaseOrder) (model.PurchaseOrder, error)
	Patch(ctx context.Context, id string, partial any) (model.PurchaseOrder, error)
	List(ctx context.Context, cursor string, limit int) (entity.Page[model.PurchaseOrder], error)
	EnsureSeed(ctx context.Context) (bool, error)
}
