package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"support-dashboard-service/internal/brands/core/domain"
	"support-dashboard-service/internal/brands/core/ports"

	"github.com/lib/pq"
)

// fakeRowScanner implements RowScanner for tests.
type fakeRowScanner struct {
	rows   []fakeRow
	i      int
	err    error
	closed bool
}

type fakeRow struct {
	values []any
}

func (f *fakeRowScanner) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRowScanner) Scan(dest ...any) error {
	if f.i >= len(f.rows) {
		return errors.New("no more rows")
	}
	row := f.rows[f.i]
	if len(dest) != len(row.values) {
		return errors.New("dest length mismatch")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *int64:
			v, ok := row.values[i].(int64)
			if !ok {
				return errors.New("type assertion to int64 failed")
			}
			*d = v
		case *string:
			v, ok := row.values[i].(string)
			if !ok {
				return errors.New("type assertion to string failed")
			}
			*d = v
		case *sql.NullString:
			if row.values[i] == nil {
				*d = sql.NullString{}
				continue
			}
			v, ok := row.values[i].(string)
			if !ok {
				return errors.New("type assertion to string failed")
			}
			*d = sql.NullString{String: v, Valid: true}
		case *time.Time:
			v, ok := row.values[i].(time.Time)
			if !ok {
				return errors.New("type assertion to time.Time failed")
			}
			*d = v
		default:
			return errors.New("unsupported dest type")
		}
	}
	f.i++
	return nil
}

func (f *fakeRowScanner) Err() error {
	return f.err
}

func (f *fakeRowScanner) Close() error {
	f.closed = true
	return nil
}

// fakeResult implements sql.Result for tests.
type fakeResult struct {
	rowsAffected int64
}

func (f *fakeResult) LastInsertId() (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeResult) RowsAffected() (int64, error) {
	return f.rowsAffected, nil
}

// fakeDB implements DB interface.
type fakeDB struct {
	QueryFn   func(ctx context.Context, query string, args ...any) (RowScanner, error)
	ExecFn    func(ctx context.Context, query string, args ...any) (sql.Result, error)
	lastQuery string
	lastArgs  []any
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	f.lastQuery = query
	f.lastArgs = args
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	return &fakeRowScanner{}, nil
}

func (f *fakeDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.lastQuery = query
	f.lastArgs = args
	if f.ExecFn != nil {
		return f.ExecFn(ctx, query, args...)
	}
	return &fakeResult{rowsAffected: 1}, nil
}

var createdAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func brandRow(id int64, name, url string, email, token any) fakeRow {
	return fakeRow{values: []any{id, name, url, email, token, createdAt}}
}

// ------------------------------------------------------------
// LIST
// ------------------------------------------------------------

func TestBrandRepository_ListBrands(t *testing.T) {
	scanner := &fakeRowScanner{
		rows: []fakeRow{
			brandRow(1, "Acme", "acme", "ops@acme.test", "tok"),
			brandRow(2, "Globex", "globex", nil, nil),
		},
	}
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if !strings.Contains(query, "FROM brands") {
				t.Fatalf("unexpected query: %s", query)
			}
			return scanner, nil
		},
	}

	repo := NewBrandRepository(db)

	brands, err := repo.ListBrands(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(brands) != 2 {
		t.Fatalf("expected 2 brands, got %d", len(brands))
	}
	if brands[0].Email != "ops@acme.test" || brands[0].APIToken != "tok" {
		t.Fatalf("unexpected credentials: %+v", brands[0])
	}
	if brands[1].Email != "" || brands[1].APIToken != "" {
		t.Fatalf("expected NULL credentials to map to empty strings: %+v", brands[1])
	}
	if !scanner.closed {
		t.Fatalf("expected rows to be closed")
	}
}

func TestBrandRepository_ListBrands_Empty(t *testing.T) {
	repo := NewBrandRepository(&fakeDB{})

	brands, err := repo.ListBrands(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if brands == nil || len(brands) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", brands)
	}
}

func TestBrandRepository_ListBrands_RowsErr(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{err: errors.New("conn reset")}, nil
		},
	}

	if _, err := NewBrandRepository(db).ListBrands(context.Background()); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

// ------------------------------------------------------------
// GET
// ------------------------------------------------------------

func TestBrandRepository_GetBrand(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if args[0] != int64(3) {
				t.Fatalf("expected id arg 3, got %v", args[0])
			}
			return &fakeRowScanner{rows: []fakeRow{brandRow(3, "Acme", "acme", nil, nil)}}, nil
		},
	}

	b, err := NewBrandRepository(db).GetBrand(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.ID != 3 || b.URL != "acme" {
		t.Fatalf("unexpected brand: %+v", b)
	}
}

func TestBrandRepository_GetBrand_NotFound(t *testing.T) {
	_, err := NewBrandRepository(&fakeDB{}).GetBrand(context.Background(), 99)
	if !errors.Is(err, ports.ErrBrandNotFound) {
		t.Fatalf("expected ErrBrandNotFound, got %v", err)
	}
}

// ------------------------------------------------------------
// INSERT
// ------------------------------------------------------------

func TestBrandRepository_InsertBrand(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if !strings.Contains(query, "INSERT INTO brands") {
				t.Fatalf("unexpected query: %s", query)
			}
			return &fakeRowScanner{rows: []fakeRow{brandRow(5, "Acme", "acme", nil, nil)}}, nil
		},
	}

	repo := NewBrandRepository(db)

	out, err := repo.InsertBrand(context.Background(), &domain.Brand{Name: "Acme", URL: "acme"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ID != 5 {
		t.Fatalf("expected id=5, got %d", out.ID)
	}
	// empty optional fields go in as NULL
	if db.lastArgs[2] != nil || db.lastArgs[3] != nil {
		t.Fatalf("expected nil email/api_token args, got %v %v", db.lastArgs[2], db.lastArgs[3])
	}
}

func TestBrandRepository_InsertBrand_UniqueViolation(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return nil, &pq.Error{Code: "23505"}
		},
	}

	_, err := NewBrandRepository(db).InsertBrand(context.Background(), &domain.Brand{Name: "Acme", URL: "acme"})
	if !errors.Is(err, ports.ErrBrandExists) {
		t.Fatalf("expected ErrBrandExists, got %v", err)
	}
}

// ------------------------------------------------------------
// DELETE
// ------------------------------------------------------------

func TestBrandRepository_DeleteBrand(t *testing.T) {
	db := &fakeDB{}

	if err := NewBrandRepository(db).DeleteBrand(context.Background(), 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(db.lastQuery, "DELETE FROM brands") {
		t.Fatalf("unexpected query: %s", db.lastQuery)
	}
}

func TestBrandRepository_DeleteBrand_NotFound(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			return &fakeResult{rowsAffected: 0}, nil
		},
	}

	err := NewBrandRepository(db).DeleteBrand(context.Background(), 4)
	if !errors.Is(err, ports.ErrBrandNotFound) {
		t.Fatalf("expected ErrBrandNotFound, got %v", err)
	}
}

func TestBrandRepository_DBError(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return nil, errors.New("db failure")
		},
	}

	_, err := NewBrandRepository(db).ListBrands(context.Background())
	if err == nil || err.Error() != "db failure" {
		t.Fatalf("expected db failure, got %v", err)
	}
}
