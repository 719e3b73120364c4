package repository

import (
	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/seed"
)

var Kind = entity.Kind[model.PurchaseOrder]{
	Name:    "purchaseOrder",
	Initial: model.PurchaseOrder{Status: model.PurchaseOrderPending},
	ID:      func(o model.PurchaseOrder) string { return o.ID },
	Seed:    seed.PurchaseOrders,
}

func NewEntityRepository(backend entity.Backend, log logger.ZapLogger) *entity.Collection[model.PurchaseOrder] {
	return entity.NewCollection(backend, Kind, log)
}
