package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"support-dashboard-service/internal/brands/core/domain"
	"support-dashboard-service/internal/brands/core/ports"

	"github.com/lib/pq"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type BrandRepository struct {
	db DB
}

func NewBrandRepository(db DB) *BrandRepository {
	return &BrandRepository{db: db}
}

var _ ports.BrandRepositoryPort = (*BrandRepository)(nil)

const uniqueViolation = "23505"

const brandColumns = `id, name, url, email, api_token, created_at`

const listBrandsSQL = `
SELECT ` + brandColumns + `
FROM brands
ORDER BY id`

const getBrandSQL = `
SELECT ` + brandColumns + `
FROM brands
WHERE id = $1`

const insertBrandSQL = `
INSERT INTO brands (name, url, email, api_token)
VALUES ($1, $2, $3, $4)
RETURNING ` + brandColumns

const deleteBrandSQL = `DELETE FROM brands WHERE id = $1`

func (r *BrandRepository) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	rows, err := r.db.QueryContext(ctx, listBrandsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	brands := []domain.Brand{}
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return brands, nil
}

func (r *BrandRepository) GetBrand(ctx context.Context, id int64) (*domain.Brand, error) {
	rows, err := r.db.QueryContext(ctx, getBrandSQL, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ports.ErrBrandNotFound
	}

	b, err := scanBrand(rows)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BrandRepository) InsertBrand(ctx context.Context, in *domain.Brand) (*domain.Brand, error) {
	rows, err := r.db.QueryContext(ctx, insertBrandSQL,
		in.Name,
		in.URL,
		nullable(in.Email),
		nullable(in.APIToken),
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ports.ErrBrandExists
		}
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, errors.New("insert brand: no row returned")
	}

	b, err := scanBrand(rows)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BrandRepository) DeleteBrand(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteBrandSQL, id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ports.ErrBrandNotFound
	}
	return nil
}

func scanBrand(rows RowScanner) (domain.Brand, error) {
	var (
		b         domain.Brand
		email     sql.NullString
		apiToken  sql.NullString
		createdAt time.Time
	)
	if err := rows.Scan(&b.ID, &b.Name, &b.URL, &email, &apiToken, &createdAt); err != nil {
		return domain.Brand{}, err
	}
	b.Email = email.String
	b.APIToken = apiToken.String
	b.CreatedAt = createdAt.UTC()
	return b, nil
}

// nullable stores empty optional columns as NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
