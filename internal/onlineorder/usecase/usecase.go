package usecase

import (
	"context"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/onlineorder"
	"github.com/fekuna/omnipos-retail-service/internal/onlineorder/dto"
	"github.com/fekuna/omnipos-retail-service/internal/validate"
	"go.uber.org/zap"
)

type onlineOrderUseCase struct {
	repo   onlineorder.Repository
	logger logger.ZapLogger
}

func NewOnlineOrderUseCase(repo onlineorder.Repository, log logger.ZapLogger) onlineorder.UseCase {
	return &onlineOrderUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *onlineOrderUseCase) GetOnlineOrder(ctx context.Context, id string) (*model.OnlineOrder, error) {
	o, err := uc.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (uc *onlineOrderUseCase) ListOnlineOrders(ctx context.Context, cursor string, limit int) (entity.Page[model.OnlineOrder], error) {
	if _, err := uc.repo.EnsureSeed(ctx); err != nil {
		return entity.Page[model.OnlineOrder]{}, err
	}
	return uc.repo.List(ctx, cursor, limit)
}

func (uc *onlineOrderUseCase) UpdateStatus(ctx context.Context, id string, input *dto.UpdateStatusInput) (*model.OnlineOrder, error) {
	var c validate.Checker
	if input.Status == nil {
		c.Present("status", false)
	} else {
		c.OneOf("status", string(*input.Status), input.Status.Valid(), validate.Names(model.OnlineOrderStatuses))
	}
	if err := c.Err(); err != nil {
		return nil, err
	}

	o, err := uc.repo.Patch(ctx, id, input)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("online order status changed", zap.String("order_id", o.ID), zap.String("status", string(o.Status)))
	return &o, nil
}
