package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-retail-service/internal/customer/dto"
	"github.com/fekuna/omnipos-retail-service/internal/customer/repository"
	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/entity/memory"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUseCase() *customerUseCase {
	repo := repository.NewEntityRepository(memory.NewStore(), logger.NewNop())
	return NewCustomerUseCase(repo, logger.NewNop()).(*customerUseCase)
}

func TestCreateCustomer(t *testing.T) {
	uc := newUseCase()
	cust, err := uc.CreateCustomer(context.Background(), &dto.CreateCustomerInput{
		Name:        "Zoe",
		Phone:       "254700000000",
		LoyaltyTier: model.LoyaltyTierBronze,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, cust.ID)
	assert.Equal(t, []string{}, cust.PurchaseHistory)
	assert.Empty(t, cust.Email)
}

func TestCreateCustomerValidation(t *testing.T) {
	uc := newUseCase()
	_, err := uc.CreateCustomer(context.Background(), &dto.CreateCustomerInput{Name: "Zoe", Phone: "1"})
	assert.True(t, validate.Is(err))
	assert.EqualError(t, err, "loyaltyTier is required")

	_, err = uc.CreateCustomer(context.Background(), &dto.CreateCustomerInput{Name: "Zoe", Phone: "1", LoyaltyTier: "Platinum"})
	assert.True(t, validate.Is(err))
	assert.Contains(t, err.Error(), `"Platinum"`)
}

func TestUpdateCustomerTier(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()
	cust, err := uc.CreateCustomer(ctx, &dto.CreateCustomerInput{Name: "Zoe", Phone: "1", LoyaltyTier: model.LoyaltyTierBronze})
	require.NoError(t, err)

	gold := model.LoyaltyTierGold
	updated, err := uc.UpdateCustomer(ctx, cust.ID, &dto.UpdateCustomerInput{LoyaltyTier: &gold})
	require.NoError(t, err)
	assert.Equal(t, model.LoyaltyTierGold, updated.LoyaltyTier)
	assert.Equal(t, "Zoe", updated.Name)

	bogus := model.LoyaltyTier("Diamond")
	_, err = uc.UpdateCustomer(ctx, cust.ID, &dto.UpdateCustomerInput{LoyaltyTier: &bogus})
	assert.True(t, validate.Is(err))
}

func TestDeleteCustomerMissing(t *testing.T) {
	assert.ErrorIs(t, newUseCase().DeleteCustomer(context.Background(), "nobody"), entity.ErrNotFound)
}
