package repository

import (
	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/seed"
)

var Kind = entity.Kind[model.Customer]{
	Name:    "customer",
	Initial: model.Customer{LoyaltyTier: model.LoyaltyTierBronze, PurchaseHistory: []string{}},
	ID:      func(c model.Customer) string { return c.ID },
	Seed:    seed.Customers,
}

func NewEntityRepository(backend entity.Backend, log logger.ZapLogger) *entity.Collection[model.Customer] {
	return entity.NewCollection(backend, Kind, log)
}
