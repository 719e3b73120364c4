package staff

import (
	"context"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/model"
)

type Repository interface {
	Find(ctx context.Context, id string) (model.StaffMember, error)
	Create(ctx context.Context, m model.StaffMember) (model.StaffMember, error)
	Patch(ctx context.Context, id string, partial any) (model.StaffMember, error)
	Mutate(ctx context.Context, id string, fn func(*model.StaffMember) error) (model.StaffMember, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, cursor string, limit int) (entity.Page[model.StaffMember], error)
	EnsureSeed(ctx context.Context) (bool, error)
}
