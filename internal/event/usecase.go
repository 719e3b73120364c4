package event

import (
	"context"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/event/dto"
	"github.com/fekuna/omnipos-retail-service/internal/model"
)

type UseCase interface {
	CreateEvent(ctx context.Context, input *dto.CreateEventInput) (*model.Event, error)
	GetEvent(ctx context.Context, id string) (*model.Event, error)
	ListEvents(ctx context.Context, cursor string, limit int) (entity.Page[model.Event], error)
	UpdateEvent(ctx context.Context, id string, input *dto.UpdateEventInput) (*model.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}
