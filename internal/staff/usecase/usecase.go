package usecase

import (
	"context"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/staff"
	"github.com/fekuna/omnipos-retail-service/internal/staff/dto"
	"github.com/fekuna/omnipos-retail-service/internal/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type staffUseCase struct {
	repo   staff.Repository
	logger logger.ZapLogger
}

func NewStaffUseCase(repo staff.Repository, log logger.ZapLogger) staff.UseCase {
	return &staffUseCase{
		repo:   repo,
		logger: log,
	}
}

func checkRole(c *validate.Checker, r model.StaffRole) {
	c.OneOf("role", string(r), r.Valid(), validate.Names(model.StaffRoles))
}

func (uc *staffUseCase) CreateStaffMember(ctx context.Context, input *dto.CreateStaffInput) (*model.StaffMember, error) {
	var c validate.Checker
	c.Required("name", input.Name)
	c.Required("email", input.Email)
	c.Required("phone", input.Phone)
	if input.Role == "" {
		c.Required("role", "")
	} else {
		checkRole(&c, input.Role)
	}
	if err := c.Err(); err != nil {
		return nil, err
	}

	m := model.StaffMember{
		ID:     "staff_" + uuid.New().String(),
		Name:   input.Name,
		Role:   input.Role,
		Email:  input.Email,
		Phone:  input.Phone,
		Status: model.StaffActive,
	}
	created, err := uc.repo.Create(ctx, m)
	if err != nil {
		uc.logger.Error("failed to create staff member", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (uc *staffUseCase) GetStaffMember(ctx context.Context, id string) (*model.StaffMember, error) {
	m, err := uc.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (uc *staffUseCase) ListStaff(ctx context.Context, cursor string, limit int) (entity.Page[model.StaffMember], error) {
	if _, err := uc.repo.EnsureSeed(ctx); err != nil {
		return entity.Page[model.StaffMember]{}, err
	}
	return uc.repo.List(ctx, cursor, limit)
}

func (uc *staffUseCase) UpdateStaffMember(ctx context.Context, id string, input *dto.UpdateStaffInput) (*model.StaffMember, error) {
	var c validate.Checker
	if input.Name != nil {
		c.Required("name", *input.Name)
	}
	if input.Email != nil {
		c.Required("email", *input.Email)
	}
	if input.Phone != nil {
		c.Required("phone", *input.Phone)
	}
	if input.Role != nil {
		checkRole(&c, *input.Role)
	}
	if input.Status != nil {
		c.OneOf("status", string(*input.Status), input.Status.Valid(), []string{string(model.StaffActive), string(model.StaffInactive)})
	}
	if err := c.Err(); err != nil {
		return nil, err
	}

	m, err := uc.repo.Patch(ctx, id, input)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ToggleStatus flips Active and Inactive as one read-modify-write.
func (uc *staffUseCase) ToggleStatus(ctx context.Context, id string) (*model.StaffMember, error) {
	m, err := uc.repo.Mutate(ctx, id, func(m *model.StaffMember) error {
		m.Status = m.Status.Toggled()
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.logger.Info("staff status toggled", zap.String("staff_id", m.ID), zap.String("status", string(m.Status)))
	return &m, nil
}

func (uc *staffUseCase) DeleteStaffMember(ctx context.Context, id string) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return entity.ErrNotFound
	}
	return nil
}
