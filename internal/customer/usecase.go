package customer

import (
	"context"

	"github.com/fekuna/omnipos-retail-service/internal/customer/dto"
	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/model"
)

type UseCase interface {
	CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error)
	GetCustomer(ctx context.Context, id string) (*model.Customer, error)
	ListCustomers(ctx context.Context, cursor string, limit int) (entity.Page[model.Customer], error)
	UpdateCustomer(ctx context.Context, id string, input *dto.UpdateCustomerInput) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}
