package usecase

import (
	"context"

	"github.com/fekuna/omnipos-retail-service/internal/customer"
	"github.com/fekuna/omnipos-retail-service/internal/customer/dto"
	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type customerUseCase struct {
	repo   customer.Repository
	logger logger.ZapLogger
}

func NewCustomerUseCase(repo customer.Repository, log logger.ZapLogger) customer.UseCase {
	return &customerUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *customerUseCase) CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error) {
	var c validate.Checker
	c.Required("name", input.Name)
	c.Required("phone", input.Phone)
	c.Required("loyaltyTier", string(input.LoyaltyTier))
	if input.LoyaltyTier != "" {
		c.OneOf("loyaltyTier", string(input.LoyaltyTier), input.LoyaltyTier.Valid(), validate.Names(model.LoyaltyTiers))
	}
	if err := c.Err(); err != nil {
		return nil, err
	}

	cust := model.Customer{
		ID:              uuid.New().String(),
		Name:            input.Name,
		Phone:           input.Phone,
		Email:           input.Email,
		LoyaltyTier:     input.LoyaltyTier,
		PurchaseHistory: []string{},
	}
	created, err := uc.repo.Create(ctx, cust)
	if err != nil {
		uc.logger.Error("failed to create customer", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (uc *customerUseCase) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	cust, err := uc.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return &cust, nil
}

func (uc *customerUseCase) ListCustomers(ctx context.Context, cursor string, limit int) (entity.Page[model.Customer], error) {
	if _, err := uc.repo.EnsureSeed(ctx); err != nil {
		return entity.Page[model.Customer]{}, err
	}
	return uc.repo.List(ctx, cursor, limit)
}

func (uc *customerUseCase) UpdateCustomer(ctx context.Context, id string, input *dto.UpdateCustomerInput) (*model.Customer, error) {
	var c validate.Checker
	if input.Name != nil {
		c.Required("name", *input.Name)
	}
	if input.Phone != nil {
		c.Required("phone", *input.Phone)
	}
	if input.LoyaltyTier != nil {
		c.OneOf("loyaltyTier", string(*input.LoyaltyTier), input.LoyaltyTier.Valid(), validate.Names(model.LoyaltyTiers))
	}
	if err := c.Err(); err != nil {
		return nil, err
	}

	cust, err := uc.repo.Patch(ctx, id, input)
	if err != nil {
		return nil, err
	}
	return &cust, nil
}

func (uc *customerUseCase) DeleteCustomer(ctx context.Context, id string) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return entity.ErrNotFound
	}
	return nil
}
