package brands

import (
	"context"
	"errors"
	"testing"

	brandsdomain "support-dashboard-service/internal/brands/core/domain"
	brandsports "support-dashboard-service/internal/brands/core/ports"
	"support-dashboard-service/internal/reports/core/domain"
	"support-dashboard-service/internal/reports/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	brands []brandsdomain.Brand
	err    error
}

func (f *fakeRepo) ListBrands(ctx context.Context) ([]brandsdomain.Brand, error) {
	return f.brands, f.err
}

func (f *fakeRepo) GetBrand(ctx context.Context, id int64) (*brandsdomain.Brand, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, b := range f.brands {
		if b.ID == id {
			b := b
			return &b, nil
		}
	}
	return nil, brandsports.ErrBrandNotFound
}

func (f *fakeRepo) InsertBrand(ctx context.Context, b *brandsdomain.Brand) (*brandsdomain.Brand, error) {
	return nil, errors.New("not used")
}

func (f *fakeRepo) DeleteBrand(ctx context.Context, id int64) error {
	return errors.New("not used")
}

func TestSource_ListBrands(t *testing.T) {
	src := NewSource(&fakeRepo{brands: []brandsdomain.Brand{
		{ID: 1, Name: "Acme", URL: "acme", Email: "ops@acme.test", APIToken: "tok"},
		{ID: 2, Name: "Globex", URL: "globex"},
	}})

	out, err := src.ListBrands(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Brand{
		{ID: 1, Name: "Acme", URL: "acme", Email: "ops@acme.test", APIToken: "tok"},
		{ID: 2, Name: "Globex", URL: "globex"},
	}, out)
}

func TestSource_ListBrandsError(t *testing.T) {
	src := NewSource(&fakeRepo{err: errors.New("db down")})

	_, err := src.ListBrands(context.Background())
	assert.Error(t, err)
}

func TestSource_GetBrandNotFound(t *testing.T) {
	src := NewSource(&fakeRepo{})

	_, err := src.GetBrand(context.Background(), 7)
	assert.ErrorIs(t, err, ports.ErrBrandNotFound)
}

func TestSource_GetBrand(t *testing.T) {
	src := NewSource(&fakeRepo{brands: []brandsdomain.Brand{{ID: 3, Name: "Initech", URL: "initech"}}})

	b, err := src.GetBrand(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "initech", b.URL)
}
