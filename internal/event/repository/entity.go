package repository

import (
	"time"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/seed"
)

// NewEntityRepository returns the event collection. Demo events are placed
// on calendar days in loc.
func NewEntityRepository(backend entity.Backend, loc *time.Location, log logger.ZapLogger) *entity.Collection[model.Event] {
	kind := entity.Kind[model.Event]{
		Name:    "event",
		Initial: model.Event{Type: model.EventTypeWineTasting},
		ID:      func(e model.Event) string { return e.ID },
		Seed: func(now time.Time) []model.Event {
			return seed.Events(now.In(loc))
		},
	}
	return entity.NewCollection(backend, kind, log)
}
