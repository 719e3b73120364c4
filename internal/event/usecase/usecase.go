package usecase

import (
	"context"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/event"
	"github.com/fekuna/omnipos-retail-service/internal/event/dto"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type eventUseCase struct {
	repo   event.Repository
	logger logger.ZapLogger
}

func NewEventUseCase(repo event.Repository, log logger.ZapLogger) event.UseCase {
	return &eventUseCase{
		repo:   repo,
		logger: log,
	}
}

func checkType(c *validate.Checker, t model.EventType) {
	c.OneOf("type", string(t), t.Valid(), validate.Names(model.EventTypes))
}

func (uc *eventUseCase) CreateEvent(ctx context.Context, input *dto.CreateEventInput) (*model.Event, error) {
	var c validate.Checker
	c.Required("title", input.Title)
	if input.Type == "" {
		c.Required("type", "")
	} else {
		checkType(&c, input.Type)
	}
	c.Present("date", input.Date != nil)
	if input.MaxCapacity == nil {
		c.Present("maxCapacity", false)
	} else {
		c.Positive("maxCapacity", float64(*input.MaxCapacity))
	}
	if err := c.Err(); err != nil {
		return nil, err
	}

	e := model.Event{
		ID:          "evt_" + uuid.New().String(),
		Title:       input.Title,
		Date:        *input.Date,
		Type:        input.Type,
		Attendees:   0,
		MaxCapacity: *input.MaxCapacity,
	}
	created, err := uc.repo.Create(ctx, e)
	if err != nil {
		uc.logger.Error("failed to create event", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (uc *eventUseCase) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	e, err := uc.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (uc *eventUseCase) ListEvents(ctx context.Context, cursor string, limit int) (entity.Page[model.Event], error) {
	if _, err := uc.repo.EnsureSeed(ctx); err != nil {
		return entity.Page[model.Event]{}, err
	}
	return uc.repo.List(ctx, cursor, limit)
}

func (uc *eventUseCase) UpdateEvent(ctx context.Context, id string, input *dto.UpdateEventInput) (*model.Event, error) {
	var c validate.Checker
	if input.Title != nil {
		c.Required("title", *input.Title)
	}
	if input.Type != nil {
		checkType(&c, *input.Type)
	}
	if input.Attendees != nil {
		c.NonNegative("attendees", float64(*input.Attendees))
	}
	if input.MaxCapacity != nil {
		c.Positive("maxCapacity", float64(*input.MaxCapacity))
	}
	if err := c.Err(); err != nil {
		return nil, err
	}

	e, err := uc.repo.Patch(ctx, id, input)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (uc *eventUseCase) DeleteEvent(ctx context.Context, id string) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return entity.ErrNotFound
	}
	return nil
}
