package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-retail-service/internal/entity/memory"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/settings/dto"
	"github.com/fekuna/omnipos-retail-service/internal/settings/repository"
	"github.com/fekuna/omnipos-retail-service/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUseCase() *settingsUseCase {
	repo := repository.NewEntityRepository(memory.NewStore())
	return NewSettingsUseCase(repo, logger.NewNop()).(*settingsUseCase)
}

func TestGetSettingsDefaults(t *testing.T) {
	s, err := newUseCase().GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.DefaultStoreSettings(), *s)
}

func TestUpdateSettingsMergesIntoDefaults(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	rate := 8.5
	s, err := uc.UpdateSettings(ctx, &dto.UpdateSettingsInput{TaxRate: &rate})
	require.NoError(t, err)
	assert.Equal(t, 8.5, s.TaxRate)
	assert.Equal(t, "Hellena's Bistro", s.StoreName)

	name := "Cellar Two"
	_, err = uc.UpdateSettings(ctx, &dto.UpdateSettingsInput{StoreName: &name})
	require.NoError(t, err)

	s, err = uc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Cellar Two", s.StoreName)
	assert.Equal(t, 8.5, s.TaxRate)
	assert.Equal(t, "KSH", s.Currency)
}

func TestUpdateSettingsValidation(t *testing.T) {
	uc := newUseCase()
	rate := 120.0
	empty := ""

	_, err := uc.UpdateSettings(context.Background(), &dto.UpdateSettingsInput{TaxRate: &rate, Currency: &empty})
	require.Error(t, err)
	assert.True(t, validate.Is(err))
	assert.Contains(t, err.Error(), "taxRate")
	assert.Contains(t, err.Error(), "currency")
}
