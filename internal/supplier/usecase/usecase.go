package usecase

import (
	"context"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/supplier"
	"github.com/fekuna/omnipos-retail-service/internal/supplier/dto"
	"github.com/fekuna/omnipos-retail-service/internal/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type supplierUseCase struct {
	repo   supplier.Repository
	logger logger.ZapLogger
}

func NewSupplierUseCase(repo supplier.Repository, log logger.ZapLogger) supplier.UseCase {
	return &supplierUseCase{
		repo:   repo,
		logger: log,
	}
}

func checkCategory(c *validate.Checker, cat model.SupplierCategory) {
	c.OneOf("category", string(cat), cat.Valid(), validate.Names(model.SupplierCategories))
}

func requireIfSet(c *validate.Checker, field string, v *string) {
	if v != nil {
		c.Required(field, *v)
	}
}

func (uc *supplierUseCase) CreateSupplier(ctx context.Context, input *dto.CreateSupplierInput) (*model.Supplier, error) {
	var c validate.Checker
	c.Required("name", input.Name)
	c.Required("contactPerson", input.ContactPerson)
	c.Required("phone", input.Phone)
	c.Required("email", input.Email)
	if input.Category == "" {
		c.Required("category", "")
	} else {
		checkCategory(&c, input.Category)
	}
	if err := c.Err(); err != nil {
		return nil, err
	}

	s := model.Supplier{
		ID:            "sup_" + uuid.New().String(),
		Name:          input.Name,
		ContactPerson: input.ContactPerson,
		Phone:         input.Phone,
		Email:         input.Email,
		Category:      input.Category,
	}
	created, err := uc.repo.Create(ctx, s)
	if err != nil {
		uc.logger.Error("failed to create supplier", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (uc *supplierUseCase) GetSupplier(ctx context.Context, id string) (*model.Supplier, error) {
	s, err := uc.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (uc *supplierUseCase) ListSuppliers(ctx context.Context, cursor string, limit int) (entity.Page[model.Supplier], error) {
	if _, err := uc.repo.EnsureSeed(ctx); err != nil {
		return entity.Page[model.Supplier]{}, err
	}
	return uc.repo.List(ctx, cursor, limit)
}

func (uc *supplierUseCase) UpdateSupplier(ctx context.Context, id string, input *dto.UpdateSupplierInput) (*model.Supplier, error) {
	var c validate.Checker
	requireIfSet(&c, "name", input.Name)
	requireIfSet(&c, "contactPerson", input.ContactPerson)
	requireIfSet(&c, "phone", input.Phone)
	requireIfSet(&c, "email", input.Email)
	if input.Category != nil {
		checkCategory(&c, *input.Category)
	}
	if err := c.Err(); err != nil {
		return nil, err
	}

	s, err := uc.repo.Patch(ctx, id, input)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (uc *supplierUseCase) DeleteSupplier(ctx context.Context, id string) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return entity.ErrNotFound
	}
	return nil
}
