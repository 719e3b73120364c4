package analytics

import (
	"context"

	"github.com/fekuna/omnipos-retail-service/internal/analytics/dto"
)

type UseCase interface {
	Dashboard(ctx context.Context) (*dto.Dashboard, error)
	Report(ctx context.Context) (*dto.Report, error)
}
