package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/purchaseorder"
	"github.com/fekuna/omnipos-retail-service/internal/purchaseorder/dto"
	"github.com/fekuna/omnipos-retail-service/internal/validate"
	"go.uber.org/zap"
)

type purchaseOrderUseCase struct {
	repo   purchaseorder.Repository
	logger logger.ZapLogger
	now    func() time.Time
}

func NewPurchaseOrderUseCase(repo purchaseorder.Repository, log logger.ZapLogger) purchaseorder.UseCase {
	return &purchaseOrderUseCase{
		repo:   repo,
		logger: log,
		now:    time.Now,
	}
}

// maxIDAttempts bounds the search for a free id when the six-digit clock
// suffix has wrapped onto an existing order.
const maxIDAttempts = 1000

var ErrNoFreeOrderID = errors.New("purchase order: no free id")

// orderID is "PO-" followed by the last six digits of the unix millisecond clock.
func orderID(t time.Time) string {
	return fmt.Sprintf("PO-%06d", t.UnixMilli()%1_000_000)
}

// nextFreeID steps the clock forward a millisecond at a time until the id is unused.
func (uc *purchaseOrderUseCase) nextFreeID(ctx context.Context, t time.Time) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := orderID(t.Add(time.Duration(i) * time.Millisecond))
		exists, err := uc.repo.Exists(ctx, id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}
	return "", ErrNoFreeOrderID
}

func (uc *purchaseOrderUseCase) CreatePurchaseOrder(ctx context.Context, input *dto.CreatePurchaseOrderInput) (*model.PurchaseOrder, error) {
	var c validate.Checker
	c.Required("supplierId", input.SupplierID)
	c.Required("supplierName", input.SupplierName)
	c.Present("expectedDeliveryDate", input.ExpectedDeliveryDate != nil)
	c.Present("itemCount", input.ItemCount != nil)
	c.Present("totalValue", input.TotalValue != nil)
	if input.ItemCount != nil {
		c.NonNegative("itemCount", float64(*input.ItemCount))
	}
	if input.TotalValue != nil {
		c.NonNegative("totalValue", *input.TotalValue)
	}
	if err := c.Err(); err != nil {
		return nil, err
	}

	now := uc.now()
	id, err := uc.nextFreeID(ctx, now)
	if err != nil {
		uc.logger.Error("failed to allocate purchase order id", zap.Error(err))
		return nil, err
	}
	o := model.PurchaseOrder{
		ID:                   id,
		SupplierID:           input.SupplierID,
		SupplierName:         input.SupplierName,
		OrderDate:            now.UnixMilli(),
		ExpectedDeliveryDate: *input.ExpectedDeliveryDate,
		Status:               model.PurchaseOrderPending,
		TotalValue:           *input.TotalValue,
		ItemCount:            *input.ItemCount,
		Notes:                input.Notes,
	}
	created, err := uc.repo.Create(ctx, o)
	if err != nil {
		uc.logger.Error("failed to create purchase order", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (uc *purchaseOrderUseCase) GetPurchaseOrder(ctx context.Context, id string) (*model.PurchaseOrder, error) {
	o, err := uc.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (uc *purchaseOrderUseCase) ListPurchaseOrders(ctx context.Context, cursor string, limit int) (entity.Page[model.PurchaseOrder], error) {
	if _, err := uc.repo.EnsureSeed(ctx); err != nil {
		return entity.Page[model.PurchaseOrder]{}, err
	}
	return uc.repo.List(ctx, cursor, limit)
}

func (uc *purchaseOrderUseCase) UpdateStatus(ctx context.Context, id string, input *dto.UpdateStatusInput) (*model.PurchaseOrder, error) {
	var c validate.Checker
	if input.Status == nil {
		c.Present("status", false)
	} else {
		c.OneOf("status", string(*input.Status), input.Status.Valid(), validate.Names(model.PurchaseOrderStatuses))
	}
	if err := c.Err(); err != nil {
		return nil, err
	}

	o, err := uc.repo.Patch(ctx, id, input)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
