package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-retail-service/internal/entity/memory"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/onlineorder/dto"
	"github.com/fekuna/omnipos-retail-service/internal/onlineorder/repository"
	"github.com/fekuna/omnipos-retail-service/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnlineOrderStatusFlow(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewEntityRepository(memory.NewStore(), logger.NewNop())
	uc := NewOnlineOrderUseCase(repo, logger.NewNop())

	page, err := uc.ListOnlineOrders(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 3)

	shipped := model.OnlineOrderShipped
	o, err := uc.UpdateStatus(ctx, "WEB-1003", &dto.UpdateStatusInput{Status: &shipped})
	require.NoError(t, err)
	assert.Equal(t, model.OnlineOrderShipped, o.Status)
	assert.Equal(t, "Audrey Hepburn", o.CustomerName)

	got, err := uc.GetOnlineOrder(ctx, "WEB-1003")
	require.NoError(t, err)
	assert.Equal(t, *o, *got)

	bad := model.OnlineOrderStatus("Lost")
	_, err = uc.UpdateStatus(ctx, "WEB-1003", &dto.UpdateStatusInput{Status: &bad})
	assert.True(t, validate.Is(err))
}
