package usecase

import (
	"context"
	"errors"
	"strings"

	"support-dashboard-service/internal/brands/core/domain"
	"support-dashboard-service/internal/brands/core/ports"
)

var (
	ErrInvalidBrand   = errors.New("invalid brand")
	ErrInvalidBrandID = errors.New("invalid brand id")
)

type ManageBrandsUseCase struct {
	repo ports.BrandRepositoryPort
}

func NewManageBrandsUseCase(repo ports.BrandRepositoryPort) *ManageBrandsUseCase {
	return &ManageBrandsUseCase{repo: repo}
}

type CreateBrandInput struct {
	Name     string
	URL      string
	Email    string
	APIToken string
}

func (uc *ManageBrandsUseCase) List(ctx context.Context) ([]domain.Brand, error) {
	brands, err := uc.repo.ListBrands(ctx)
	if err != nil {
		return nil, err
	}
	if brands == nil {
		brands = []domain.Brand{}
	}
	return brands, nil
}

func (uc *ManageBrandsUseCase) Get(ctx context.Context, id int64) (*domain.Brand, error) {
	if id <= 0 {
		return nil, ErrInvalidBrandID
	}
	return uc.repo.GetBrand(ctx, id)
}

// Create validates the input, reduces the URL to its subdomain and stores the brand.
func (uc *ManageBrandsUseCase) Create(ctx context.Context, in CreateBrandInput) (*domain.Brand, error) {
	name := strings.TrimSpace(in.Name)
	subdomain := domain.NormalizeSubdomain(in.URL)

	if name == "" || !domain.ValidSubdomain(subdomain) {
		return nil, ErrInvalidBrand
	}

	b := &domain.Brand{
		Name:     name,
		URL:      subdomain,
		Email:    strings.TrimSpace(in.Email),
		APIToken: strings.TrimSpace(in.APIToken),
	}

	return uc.repo.InsertBrand(ctx, b)
}

func (uc *ManageBrandsUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidBrandID
	}
	return uc.repo.DeleteBrand(ctx, id)
}
