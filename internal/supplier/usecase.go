package supplier

import (
	"context"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/supplier/dto"
)

type UseCase interface {
	CreateSupplier(ctx context.Context, input *dto.CreateSupplierInput) (*model.Supplier, error)
	GetSupplier(ctx context.Context, id string) (*model.Supplier, error)
	ListSuppliers(ctx context.Context, cursor string, limit int) (entity.Page[model.Supplier], error)
	UpdateSupplier(ctx context.Context, id string, input *dto.UpdateSupplierInput) (*model.Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error
}
