package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v9"
)

var (
	ErrMissingJWTSecret   = errors.New("JWT_SECRET is not set")
	ErrMissingAdminUser   = errors.New("ADMIN_USERNAME is not set")
	ErrMissingAdminHash   = errors.New("ADMIN_PASSWORD_HASH is not set")
	ErrInvalidConcurrency = errors.New("REAMAZE_MAX_CONCURRENCY must not be negative")
)

type Config struct {
	Server    ServerConfig
	Postgres  PostgresConfig
	Auth      AuthConfig
	Reamaze   ReamazeConfig
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

type ServerConfig struct {
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	CORSOrigins     string        `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`
}

type PostgresConfig struct {
	DSN             string        `env:"POSTGRES_DSN,required,notEmpty"`
	MaxOpenConns    int           `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"20"`
	MaxIdleConns    int           `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"10"`
	ConnMaxLifetime time.Duration `env:"POSTGRES_CONN_MAX_LIFETIME" envDefault:"30m"`
	Migrate         bool          `env:"POSTGRES_MIGRATE" envDefault:"true"`
}

type AuthConfig struct {
	JWTSecret         string        `env:"JWT_SECRET"`
	TokenTTL          time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	AdminUsername     string        `env:"ADMIN_USERNAME"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
}

// ReamazeConfig holds the helpdesk connection settings. Email and APIToken are
// the account-wide credentials used for brands that carry none of their own.
type ReamazeConfig struct {
	Domain                  string        `env:"REAMAZE_DOMAIN" envDefault:"reamaze.io"`
	Scheme                  string        `env:"REAMAZE_SCHEME" envDefault:"https"`
	Email                   string        `env:"REAMAZE_EMAIL"`
	APIToken                string        `env:"REAMAZE_API_TOKEN"`
	Timeout                 time.Duration `env:"REAMAZE_TIMEOUT" envDefault:"30s"`
	MaxConcurrency          int           `env:"REAMAZE_MAX_CONCURRENCY" envDefault:"0"`
	BreakerThreshold        uint32        `env:"REAMAZE_BREAKER_THRESHOLD" envDefault:"5"`
	BreakerCooldown         time.Duration `env:"REAMAZE_BREAKER_COOLDOWN" envDefault:"30s"`
	BreakerHalfOpenRequests uint32        `env:"REAMAZE_BREAKER_HALF_OPEN_REQUESTS" envDefault:"8"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Auth.JWTSecret == "" {
		errs = append(errs, ErrMissingJWTSecret)
	}
	if c.Auth.AdminUsername == "" {
		errs = append(errs, ErrMissingAdminUser)
	}
	if c.Auth.AdminPasswordHash == "" {
		errs = append(errs, ErrMissingAdminHash)
	}
	if c.Reamaze.MaxConcurrency < 0 {
		errs = append(errs, ErrInvalidConcurrency)
	}
	return errors.Join(errs...)
}
