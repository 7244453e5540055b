package ports

import (
	"context"
	"encoding/json"
	"errors"

	"support-dashboard-service/internal/reports/core/domain"
)

var ErrBrandNotFound = errors.New("brand not found")

type BrandReader interface {
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	// GetBrand returns ErrBrandNotFound when the brand does not exist.
	GetBrand(ctx context.Context, id int64) (*domain.Brand, error)
}

// ReportFetcher retrieves one report of one brand from the helpdesk. The date
// range is forwarded only when both bounds are set. The returned payload is
// valid JSON.
type ReportFetcher interface {
	FetchReport(ctx context.Context, brand domain.Brand, metric domain.Metric, rng domain.DateRange) (json.RawMessage, error)
}
