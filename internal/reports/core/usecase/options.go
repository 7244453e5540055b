package usecase

import (
	"io"
	"time"

	"support-dashboard-service/internal/platform/metrics"

	"github.com/sirupsen/logrus"
)

type options struct {
	log            logrus.FieldLogger
	metrics        *metrics.Metrics
	maxConcurrency int
	now            func() time.Time
}

type Option func(*options)

func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) { o.log = log }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithMaxConcurrency caps the number of simultaneous per-brand fetches of one
// aggregation. Zero or less means one goroutine per brand.
func WithMaxConcurrency(n int) Option {
	return func(o *options) { o.maxConcurrency = n }
}

// WithClock overrides the time source used to resolve range presets.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func buildOptions(opts []Option) options {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	o := options{log: discard, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
