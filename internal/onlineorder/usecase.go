package onlineorder

import (
	"context"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/onlineorder/dto"
)

// UseCase covers monitoring only; online orders are created upstream.
type UseCase interface {
	GetOnlineOrder(ctx context.Context, id string) (*model.OnlineOrder, error)
	ListOnlineOrders(ctx context.Context, cursor string, limit int) (entity.Page[model.OnlineOrder], error)
	UpdateStatus(ctx context.Context, id string, input *dto.UpdateStatusInput) (*model.OnlineOrder, error)
}
