package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/entity/memory"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/purchaseorder/dto"
	"github.com/fekuna/omnipos-retail-service/internal/purchaseorder/repository"
	"github.com/fekuna/omnipos-retail-service/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUseCase(now time.Time) *purchaseOrderUseCase {
	repo := repository.NewEntityRepository(memory.NewStore(), logger.NewNop())
	uc := NewPurchaseOrderUseCase(repo, logger.NewNop()).(*purchaseOrderUseCase)
	uc.now = func() time.Time { return now }
	return uc
}

func validInput() *dto.CreatePurchaseOrderInput {
	due := int64(1700600000000)
	count := 24
	value := 12000.0
	return &dto.CreatePurchaseOrderInput{
		SupplierID:           "sup_001",
		SupplierName:         "East African Breweries",
		ExpectedDeliveryDate: &due,
		ItemCount:            &count,
		TotalValue:           &value,
	}
}

func TestOrderID(t *testing.T) {
	assert.Equal(t, "PO-123456", orderID(time.UnixMilli(1700000123456)))
	assert.Equal(t, "PO-000042", orderID(time.UnixMilli(1700000000042)))
}

func TestCreatePurchaseOrder(t *testing.T) {
	now := time.UnixMilli(1700000123456)
	o, err := newUseCase(now).CreatePurchaseOrder(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "PO-123456", o.ID)
	assert.Equal(t, model.PurchaseOrderPending, o.Status)
	assert.Equal(t, now.UnixMilli(), o.OrderDate)
	assert.Equal(t, 24, o.ItemCount)
}

func TestCreatePurchaseOrderSkipsTakenID(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(time.UnixMilli(1700000123456))

	first, err := uc.CreatePurchaseOrder(ctx, validInput())
	require.NoError(t, err)

	// same wall clock, e.g. the suffix wrapped around
	in := validInput()
	in.SupplierName = "Kenya Wine Agencies"
	second, err := uc.CreatePurchaseOrder(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "PO-123456", first.ID)
	assert.Equal(t, "PO-123457", second.ID)

	kept, err := uc.GetPurchaseOrder(ctx, "PO-123456")
	require.NoError(t, err)
	assert.Equal(t, "East African Breweries", kept.SupplierName)
}

func TestCreatePurchaseOrderValidation(t *testing.T) {
	in := validInput()
	in.ItemCount = nil
	in.SupplierName = ""
	_, err := newUseCase(time.Now()).CreatePurchaseOrder(context.Background(), in)
	assert.True(t, validate.Is(err))
	assert.EqualError(t, err, "supplierName is required; itemCount is required")
}

func TestUpdateStatusOnlyTouchesStatus(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(time.UnixMilli(1700000123456))
	o, err := uc.CreatePurchaseOrder(ctx, validInput())
	require.NoError(t, err)

	shipped := model.PurchaseOrderShipped
	updated, err := uc.UpdateStatus(ctx, o.ID, &dto.UpdateStatusInput{Status: &shipped})
	require.NoError(t, err)

	want := *o
	want.Status = model.PurchaseOrderShipped
	assert.Equal(t, want, *updated)
}

func TestUpdateStatusErrors(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(time.Now())

	_, err := uc.UpdateStatus(ctx, "PO-1", &dto.UpdateStatusInput{})
	assert.EqualError(t, err, "status is required")

	lost := model.PurchaseOrderStatus("Lost")
	_, err = uc.UpdateStatus(ctx, "PO-1", &dto.UpdateStatusInput{Status: &lost})
	assert.True(t, validate.Is(err))

	delivered := model.PurchaseOrderDelivered
	_, err = uc.UpdateStatus(ctx, "PO-1", &dto.UpdateStatusInput{Status: &delivered})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
