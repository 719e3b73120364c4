package staff

import (
	"context"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/staff/dto"
)

type UseCase interface {
	CreateStaffMember(ctx context.Context, input *dto.CreateStaffInput) (*model.StaffMember, error)
	GetStaffMember(ctx context.Context, id string) (*model.StaffMember, error)
	ListStaff(ctx context.Context, cursor string, limit int) (entity.Page[model.StaffMember], error)
	UpdateStaffMember(ctx context.Context, id string, input *dto.UpdateStaffInput) (*model.StaffMember, error)
	ToggleStatus(ctx context.Context, id string) (*model.StaffMember, error)
	DeleteStaffMember(ctx context.Context, id string) error
}
