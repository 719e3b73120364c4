package repository

import (
	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/seed"
)

var Kind = entity.Kind[model.Sale]{
	Name:    "sale",
	Initial: model.Sale{Items: []model.SaleItem{}, PaymentMethod: model.PaymentMethodCash},
	ID:      func(s model.Sale) string { return s.ID },
	Seed:    seed.Sales,
}

func NewEntityRepository(backend entity.Backend, log logger.ZapLogger) *entity.Collection[model.Sale] {
	return entity.NewCollection(backend, Kind, log)
}
