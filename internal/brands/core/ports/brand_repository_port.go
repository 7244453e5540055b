package ports

import (
	"context"
	"errors"

	"support-dashboard-service/internal/brands/core/domain"
)

var (
	ErrBrandNotFound = errors.New("brand not found")
	ErrBrandExists   = errors.New("brand already exists")
)

type BrandRepositoryPort interface {
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	// GetBrand returns ErrBrandNotFound when no row matches.
	GetBrand(ctx context.Context, id int64) (*domain.Brand, error)
	// InsertBrand returns ErrBrandExists when the subdomain is already configured.
	InsertBrand(ctx context.Context, b *domain.Brand) (*domain.Brand, error)
	// DeleteBrand returns ErrBrandNotFound when no row was removed.
	DeleteBrand(ctx context.Context, id int64) error
}
