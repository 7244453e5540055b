package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("POSTGRES_DSN", "postgres://localhost/dashboard?sslmode=disable")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$hash")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 20, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "reamaze.io", cfg.Reamaze.Domain)
	assert.Equal(t, "https", cfg.Reamaze.Scheme)
	assert.Equal(t, 0, cfg.Reamaze.MaxConcurrency)
	assert.Equal(t, uint32(8), cfg.Reamaze.BreakerHalfOpenRequests)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REAMAZE_EMAIL", "ops@example.com")
	t.Setenv("REAMAZE_API_TOKEN", "tok")
	t.Setenv("REAMAZE_TIMEOUT", "5s")
	t.Setenv("TOKEN_TTL", "1h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "ops@example.com", cfg.Reamaze.Email)
	assert.Equal(t, "tok", cfg.Reamaze.APIToken)
	assert.Equal(t, 5*time.Second, cfg.Reamaze.Timeout)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
}

func TestLoad_MissingDSN(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("JWT_SECRET", "secret")

	_, err := Load()
	require.Error(t, err)
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := &Config{Reamaze: ReamazeConfig{MaxConcurrency: -1}}

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingJWTSecret))
	assert.True(t, errors.Is(err, ErrMissingAdminUser))
	assert.True(t, errors.Is(err, ErrMissingAdminHash))
	assert.True(t, errors.Is(err, ErrInvalidConcurrency))
}
