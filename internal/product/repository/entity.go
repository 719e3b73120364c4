package repository

import (
	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/fekuna/omnipos-retail-service/internal/seed"
)

var Kind = entity.Kind[model.Product]{
	Name:    "product",
	Initial: model.Product{Type: model.ProductTypeWine},
	ID:      func(p model.Product) string { return p.ID },
	Seed:    seed.Products,
}

// NewEntityRepository returns the product collection. It satisfies both
// product.Repository and the inventory repository.
func NewEntityRepository(backend entity.Backend, log logger.ZapLogger) *entity.Collection[model.Product] {
	return entity.NewCollection(backend, Kind, log)
}
