package repository

import (
	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/seed"
)

var Kind = entity.Kind[model.OnlineOrder]{
	Name:    "onlineOrder",
	Initial: model.OnlineOrder{Status: model.OnlineOrderPendingFulfillment},
	ID:      func(o model.OnlineOrder) string { return o.ID },
	Seed:    seed.OnlineOrders,
}

func NewEntityRepository(backend entity.Backend, log logger.ZapLogger) *entity.Collection[model.OnlineOrder] {
	return entity.NewCollection(backend, Kind, log)
}
