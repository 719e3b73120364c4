package repository

import (
	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/model"
)

const Kind = "settings"

func NewEntityRepository(backend entity.Backend) *entity.Singleton[model.StoreSettings] {
	return entity.NewSingleton(backend, Kind, model.DefaultStoreSettings)
}
