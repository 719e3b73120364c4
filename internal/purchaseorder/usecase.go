package purchaseorder

import (
	"context"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/purchaseorder/dto"
)

type UseCase interface {
	CreatePurchaseOrder(ctx context.Context, input *dto.CreatePurchaseOrderInput) (*model.PurchaseOrder, error)
	GetPurchaseOrder(ctx context.Context, id string) (*model.PurchaseOrder, error)
	ListPurchaseOrders(ctx context.Context, cursor string, limit int) (entity.Page[model.PurchaseOrder], error)
	UpdateStatus(ctx context.Context, id string, input *dto.UpdateStatusInput) (*model.PurchaseOrder, error)
}
