package sale

import (
	"context"

	"github.com/fekuna/omnipos-retail-service/internal/entity"
	"github.com/fekuna/omnipos-retail-service/internal/model"
)

type Repository interface {
	Find(ctx context.Context, id string) (model.Sale, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, cursor string, limit int) (entity.Page[model.Sale], error)
	EnsureSeed(ctx context.Context) (bool, error)
	With(tx entity.Tx) *entity.TxView[model.Sale]
}

// Transactor runs fn atomically. entity.Backend satisfies it.
type Transactor interface {
	Update(ctx context.Context, fn func(tx entity.Tx) error) error
}

// Observer is told about every committed sale.
type Observer interface {
	SaleRecorded(s model.Sale)
}
