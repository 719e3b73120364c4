package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/entity/memory"
	"github.com/fekuna/omnipos-retail-service/internal/event/dto"
	"github.com/fekuna/omnipos-retail-service/internal/event/repository"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUseCase() *eventUseCase {
	repo := repository.NewEntityRepository(memory.NewStore(), time.UTC, logger.NewNop())
	return NewEventUseCase(repo, logger.NewNop()).(*eventUseCase)
}

func intPtr(v int) *int { return &v }

func TestCreateEvent(t *testing.T) {
	date := int64(1700000000000)
	e, err := newUseCase().CreateEvent(context.Background(), &dto.CreateEventInput{
		Title:       "Rum Night",
		Type:        model.EventTypeClass,
		Date:        &date,
		MaxCapacity: intPtr(30),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(e.ID, "evt_"))
	assert.Zero(t, e.Attendees)
	assert.Equal(t, 30, e.MaxCapacity)
}

func TestCreateEventValidation(t *testing.T) {
	_, err := newUseCase().CreateEvent(context.Background(), &dto.CreateEventInput{
		Title:       "Rum Night",
		Type:        "Rave",
		MaxCapacity: intPtr(0),
	})
	require.Error(t, err)
	assert.True(t, validate.Is(err))
	assert.Contains(t, err.Error(), `type "Rave"`)
	assert.Contains(t, err.Error(), "date is required")
	assert.Contains(t, err.Error(), "maxCapacity must be greater than zero")
}

func TestUpdateAndDeleteEvent(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()
	page, err := uc.ListEvents(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 3)

	e, err := uc.UpdateEvent(ctx, "evt_001", &dto.UpdateEventInput{Attendees: intPtr(19)})
	require.NoError(t, err)
	assert.Equal(t, 19, e.Attendees)
	assert.Equal(t, "Bordeaux Grand Cru Tasting", e.Title)

	require.NoError(t, uc.DeleteEvent(ctx, "evt_001"))
	_, err = uc.GetEvent(ctx, "evt_001")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
