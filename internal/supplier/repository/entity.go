package repository

import (
	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/seed"
)

var Kind = entity.Kind[model.Supplier]{
	Name:    "supplier",
	Initial: model.Supplier{Category: model.SupplierCategoryWine},
	ID:      func(s model.Supplier) string { return s.ID },
	Seed:    seed.Suppliers,
}

func NewEntityRepository(backend entity.Backend, log logger.ZapLogger) *entity.Collection[model.Supplier] {
	return entity.NewCollection(backend, Kind, log)
}
