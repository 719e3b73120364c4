package repository

import (
	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/seed"
)

var Kind = entity.Kind[model.StaffMember]{
	Name:    "staffMember",
	Initial: model.StaffMember{Role: model.StaffRoleClerk, Status: model.StaffActive},
	ID:      func(m model.StaffMember) string { return m.ID },
	Seed:    seed.Staff,
}

func NewEntityRepository(backend entity.Backend, log logger.ZapLogger) *entity.Collection[model.StaffMember] {
	return entity.NewCollection(backend, Kind, log)
}
