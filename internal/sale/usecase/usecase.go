package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/inventory"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/sale"
	"github.com/fekuna/omnipos-retail-service/internal/sale/dto"
	"github.com/fekuna/omnipos-retail-service/internal/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const walkInCustomer = "Walk-in"

type saleUseCase struct {
	repo      sale.Repository
	tx        sale.Transactor
	inventory inventory.UseCase
	observers []sale.Observer
	logger    logger.ZapLogger
	now       func() time.Time
}

func NewSaleUseCase(repo sale.Repository, tx sale.Transactor, inv inventory.UseCase, log logger.ZapLogger, observers ...sale.Observer) sale.UseCase {
	return &saleUseCase{
		repo:      repo,
		tx:        tx,
		inventory: inv,
		observers: observers,
		logger:    log,
		now:       time.Now,
	}
}

func validateSale(input *dto.CreateSaleInput) error {
	var c validate.Checker
	c.Check(len(input.Items) > 0, "items must not be empty")
	for i, item := range input.Items {
		c.Check(item.ProductID != "", "items[%d].productId is required", i)
		c.Check(item.Quantity > 0, "items[%d].quantity must be greater than zero", i)
		field := fmt.Sprintf("items[%d].price", i)
		if item.Price == nil {
			c.Present(field, false)
		} else {
			c.NonNegative(field, *item.Price)
		}
	}
	if input.Total == nil {
		c.Present("total", false)
	} else {
		c.NonNegative("total", *input.Total)
	}
	if input.PaymentMethod == "" {
		c.Required("paymentMethod", "")
	} else {
		c.OneOf("paymentMethod", string(input.PaymentMethod), input.PaymentMethod.Valid(), validate.Names(model.PaymentMethods))
	}
	return c.Err()
}

// CreateSale decrements stock for every line and records the sale in one
// transaction. Either all of it is written or none of it.
func (uc *saleUseCase) CreateSale(ctx context.Context, input *dto.CreateSaleInput) (*model.Sale, error) {
	if err := validateSale(input); err != nil {
		return nil, err
	}

	items := make([]model.SaleItem, 0, len(input.Items))
	for _, it := range input.Items {
		items = append(items, model.SaleItem{ProductID: it.ProductID, Quantity: it.Quantity, Price: *it.Price})
	}
	s := model.Sale{
		ID:            "sale_" + uuid.New().String(),
		Items:         items,
		Total:         *input.Total,
		CustomerID:    input.CustomerID,
		CustomerName:  input.CustomerName,
		PaymentMethod: input.PaymentMethod,
		Timestamp:     uc.now().UnixMilli(),
	}
	if s.CustomerName == "" {
		s.CustomerName = walkInCustomer
	}

	err := uc.tx.Update(ctx, func(tx entity.Tx) error {
		if err := uc.inventory.DecrementForSale(tx, s.Items); err != nil {
			return err
		}
		return uc.repo.With(tx).Put(s)
	})
	if err != nil {
		uc.logger.Error("failed to record sale", zap.Error(err))
		return nil, err
	}

	uc.logger.Info("sale recorded",
		zap.String("sale_id", s.ID),
		zap.Int("items", len(s.Items)),
		zap.Float64("total", s.Total))
	for _, o := range uc.observers {
		o.SaleRecorded(s)
	}
	return &s, nil
}

func (uc *saleUseCase) GetSale(ctx context.Context, id string) (*model.Sale, error) {
	s, err := uc.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (uc *saleUseCase) ListSales(ctx context.Context, cursor string, limit int) (entity.Page[model.Sale], error) {
	if _, err := uc.repo.EnsureSeed(ctx); err != nil {
		return entity.Page[model.Sale]{}, err
	}
	return uc.repo.List(ctx, cursor, limit)
}

// DeleteSale removes the record only; stock is not restored.
func (uc *saleUseCase) DeleteSale(ctx context.Context, id string) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return entity.ErrNotFound
	}
	return nil
}
