package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/entity/memory"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/staff/dto"
	"github.com/fekuna/omnipos-retail-service/internal/staff/repository"
	"github.com/fekuna/omnipos-retail-service/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUseCase() *staffUseCase {
	repo := repository.NewEntityRepository(memory.NewStore(), logger.NewNop())
	return NewStaffUseCase(repo, logger.NewNop()).(*staffUseCase)
}

func TestCreateStaffMember(t *testing.T) {
	m, err := newUseCase().CreateStaffMember(context.Background(), &dto.CreateStaffInput{
		Name:  "Amina Otieno",
		Role:  model.StaffRoleClerk,
		Email: "amina@cellarcraft.com",
		Phone: "254700999888",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(m.ID, "staff_"))
	assert.Equal(t, model.StaffActive, m.Status)
}

func TestCreateStaffMemberRejectsUnknownRole(t *testing.T) {
	_, err := newUseCase().CreateStaffMember(context.Background(), &dto.CreateStaffInput{
		Name: "Amina", Role: "Bouncer", Email: "a@b.c", Phone: "1",
	})
	assert.True(t, validate.Is(err))
}

func TestToggleStatusTwiceRestores(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()
	_, err := uc.ListStaff(ctx, "", 0)
	require.NoError(t, err)

	m, err := uc.ToggleStatus(ctx, "staff_002")
	require.NoError(t, err)
	assert.Equal(t, model.StaffInactive, m.Status)

	m, err = uc.ToggleStatus(ctx, "staff_002")
	require.NoError(t, err)
	assert.Equal(t, model.StaffActive, m.Status)

	_, err = uc.ToggleStatus(ctx, "staff_999")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestUpdateStaffMember(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()
	_, err := uc.ListStaff(ctx, "", 0)
	require.NoError(t, err)

	role := model.StaffRoleManager
	m, err := uc.UpdateStaffMember(ctx, "staff_004", &dto.UpdateStaffInput{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, model.StaffRoleManager, m.Role)
	assert.Equal(t, "David Lee", m.Name)

	away := model.StaffStatus("Away")
	_, err = uc.UpdateStaffMember(ctx, "staff_004", &dto.UpdateStaffInput{Status: &away})
	assert.True(t, validate.Is(err))
}
