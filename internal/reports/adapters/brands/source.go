package brands

import (
	"context"
	"errors"

	brandsdomain "support-dashboard-service/internal/brands/core/domain"
	brandsports "support-dashboard-service/internal/brands/core/ports"
	"support-dashboard-service/internal/reports/core/domain"
	"support-dashboard-service/internal/reports/core/ports"
)

// Source exposes the brand store to the report use cases.
type Source struct {
	repo brandsports.BrandRepositoryPort
}

func NewSource(repo brandsports.BrandRepositoryPort) *Source {
	return &Source{repo: repo}
}

func (s *Source) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	rows, err := s.repo.ListBrands(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Brand, 0, len(rows))
	for _, b := range rows {
		out = append(out, toReportBrand(b))
	}
	return out, nil
}

func (s *Source) GetBrand(ctx context.Context, id int64) (*domain.Brand, error) {
	b, err := s.repo.GetBrand(ctx, id)
	if err != nil {
		if errors.Is(err, brandsports.ErrBrandNotFound) {
			return nil, ports.ErrBrandNotFound
		}
		return nil, err
	}

	out := toReportBrand(*b)
	return &out, nil
}

func toReportBrand(b brandsdomain.Brand) domain.Brand {
	return domain.Brand{
		ID:       b.ID,
		Name:     b.Name,
		URL:      b.URL,
		Email:    b.Email,
		APIToken: b.APIToken,
	}
}
