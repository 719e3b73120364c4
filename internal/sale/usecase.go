package sale

import (
	"context"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/sale/dto"
)

type UseCase interface {
	CreateSale(ctx context.Context, input *dto.CreateSaleInput) (*model.Sale, error)
	GetSale(ctx context.Context, id string) (*model.Sale, error)
	ListSales(ctx context.Context, cursor string, limit int) (entity.Page[model.Sale], error)
	DeleteSale(ctx context.Context, id string) error
}
