package usecase

import (
	"context"

	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/settings"
	"github.com/fekuna/omnipos-retail-service/internal/settings/dto"
	"github.com/fekuna/omnipos-retail-service/internal/validate"
	"go.uber.org/zap"
)

type settingsUseCase struct {
	repo   settings.Repository
	logger logger.ZapLogger
}

func NewSettingsUseCase(repo settings.Repository, log logger.ZapLogger) settings.UseCase {
	return &settingsUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *settingsUseCase) GetSettings(ctx context.Context) (*model.StoreSettings, error) {
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (uc *settingsUseCase) UpdateSettings(ctx context.Context, input *dto.UpdateSettingsInput) (*model.StoreSettings, error) {
	var c validate.Checker
	if input.StoreName != nil {
		c.Required("storeName", *input.StoreName)
	}
	if input.TaxRate != nil {
		c.Range("taxRate", *input.TaxRate, 0, 100)
	}
	if input.Currency != nil {
		c.Required("currency", *input.Currency)
	}
	if err := c.Err(); err != nil {
		return nil, err
	}

	s, err := uc.repo.Patch(ctx, input)
	if err != nil {
		uc.logger.Error("failed to update settings", zap.Error(err))
		return nil, err
	}
	return &s, nil
}
