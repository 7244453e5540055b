package reamaze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"support-dashboard-service/internal/platform/metrics"
	"support-dashboard-service/internal/reports/core/domain"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

const maxBodyBytes = 10 << 20

var (
	ErrNoCredentials = errors.New("brand has no helpdesk credentials and no global fallback is configured")
	ErrInvalidBody   = errors.New("helpdesk returned a body that is not JSON")
)

// StatusError is returned for any non-2xx helpdesk response.
type StatusError struct {
	StatusCode int
	Body       string
}

// Error leaves Body out; it reaches API callers, Body is only logged.
func (e *StatusError) Error() string {
	return fmt.Sprintf("helpdesk returned status %d", e.StatusCode)
}

type Config struct {
	Domain   string
	Scheme   string
	Email    string
	APIToken string
	Timeout  time.Duration

	// BaseURL replaces {scheme}://{subdomain}.{domain} when set. The Host
	// header still names the brand subdomain.
	BaseURL string

	BreakerThreshold uint32
	BreakerCooldown  time.Duration
	// BreakerHalfOpenRequests is how many trial requests a recovering
	// subdomain admits, and how many successes close its breaker again.
	BreakerHalfOpenRequests uint32
}

// Client fetches reports from the Re:amaze reporting API. Each brand
// subdomain gets its own circuit breaker, so one failing tenant does not
// starve the others.
type Client struct {
	cfg     Config
	http    *http.Client
	log     logrus.FieldLogger
	metrics *metrics.Metrics

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker
}

type Option func(*Client)

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) { c.log = log }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func NewClient(cfg Config, opts ...Option) *Client {
	if cfg.Domain == "" {
		cfg.Domain = "reamaze.io"
	}
	if cfg.Scheme == "" {
		cfg.Scheme = "https"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.BreakerThreshold == 0 {
		cfg.BreakerThreshold = 5
	}
	if cfg.BreakerCooldown == 0 {
		cfg.BreakerCooldown = 30 * time.Second
	}
	if cfg.BreakerHalfOpenRequests == 0 {
		cfg.BreakerHalfOpenRequests = 8
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Client{
		cfg:      cfg,
		http:     &http.Client{Timeout: cfg.Timeout},
		log:      discard,
		breakers: map[string]*gobreaker.CircuitBreaker{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchReport performs GET /api/v1/reports/{metric} for one brand. The date
// range is sent only when both bounds are set.
func (c *Client) FetchReport(ctx context.Context, brand domain.Brand, metric domain.Metric, rng domain.DateRange) (json.RawMessage, error) {
	email, token := c.credentials(brand)
	if email == "" || token == "" {
		return nil, ErrNoCredentials
	}

	log := c.log.WithFields(logrus.Fields{
		"brand":  brand.URL,
		"metric": metric,
	})

	start := time.Now()
	out, err := c.breaker(brand.URL).Execute(func() (interface{}, error) {
		return c.do(ctx, brand.URL, email, token, metric, rng)
	})
	if errors.Is(err, gobreaker.ErrTooManyRequests) {
		// half-open with every trial slot taken
		log.Debug("helpdesk breaker half-open, request bypasses it")
		out, err = c.do(ctx, brand.URL, email, token, metric, rng)
	}
	c.metrics.ObserveUpstream(string(metric), outcome(err), time.Since(start))

	if err != nil {
		entry := log.WithError(err)
		var se *StatusError
		if errors.As(err, &se) && se.Body != "" {
			entry = entry.WithField("body", se.Body)
		}
		entry.Debug("helpdesk request failed")
		return nil, fmt.Errorf("fetch %s report: %w", metric, err)
	}
	return out.(json.RawMessage), nil
}

func (c *Client) credentials(b domain.Brand) (string, string) {
	if b.Email != "" && b.APIToken != "" {
		return b.Email, b.APIToken
	}
	return c.cfg.Email, c.cfg.APIToken
}

func (c *Client) do(ctx context.Context, subdomain, email, token string, metric domain.Metric, rng domain.DateRange) (json.RawMessage, error) {
	host := subdomain + "." + c.cfg.Domain
	endpoint := c.cfg.Scheme + "://" + host
	if c.cfg.BaseURL != "" {
		endpoint = strings.TrimRight(c.cfg.BaseURL, "/")
	}
	endpoint += "/api/v1/reports/" + string(metric)

	if rng.IsSet() {
		q := url.Values{}
		q.Set("start_date", rng.StartString())
		q.Set("end_date", rng.EndString())
		endpoint += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Host = host
	req.SetBasicAuth(email, token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// url.Error repeats the full request URL, brand subdomain included
		var ue *url.Error
		if errors.As(err, &ue) {
			err = ue.Err
		}
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: snippet(body)}
	}
	if !json.Valid(body) {
		return nil, ErrInvalidBody
	}

	return json.RawMessage(body), nil
}

func (c *Client) breaker(subdomain string) *gobreaker.CircuitBreaker {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cb, ok := c.breakers[subdomain]; ok {
		return cb
	}

	threshold := c.cfg.BreakerThreshold
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        subdomain,
		MaxRequests: c.cfg.BreakerHalfOpenRequests,
		Timeout:     c.cfg.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// 4xx responses do not count against the breaker
		IsSuccessful: func(err error) bool {
			var se *StatusError
			if errors.As(err, &se) {
				return se.StatusCode < 500
			}
			return err == nil
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.log.WithFields(logrus.Fields{
				"brand": name,
				"from":  from.String(),
				"to":    to.String(),
			}).Warn("helpdesk circuit breaker state changed")
		},
	})
	c.breakers[subdomain] = cb
	return cb
}

func outcome(err error) string {
	var se *StatusError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "breaker_open"
	case errors.As(err, &se):
		return fmt.Sprintf("status_%dxx", se.StatusCode/100)
	case errors.Is(err, ErrInvalidBody):
		return "invalid_body"
	default:
		return "transport_error"
	}
}

func snippet(b []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(b))
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
