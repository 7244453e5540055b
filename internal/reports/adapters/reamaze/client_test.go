package reamaze

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"support-dashboard-service/internal/platform/metrics"
	"support-dashboard-service/internal/reports/core/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc, cfg Config, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	cfg.BaseURL = srv.URL
	return NewClient(cfg, opts...)
}

func march() domain.DateRange {
	return domain.DateRange{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC),
	}
}

func TestFetchReport_RequestShape(t *testing.T) {
	var (
		gotPath, gotQuery, gotHost, gotAccept string
		gotUser, gotPass                      string
	)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotHost = r.Host
		gotAccept = r.Header.Get("Accept")
		gotUser, gotPass, _ = r.BasicAuth()
		_, _ = w.Write([]byte(`{"tags":{"billing":2}}`))
	}, Config{})

	brand := domain.Brand{URL: "acme", Email: "ops@acme.test", APIToken: "tok"}
	raw, err := c.FetchReport(context.Background(), brand, domain.MetricTags, march())
	require.NoError(t, err)

	assert.JSONEq(t, `{"tags":{"billing":2}}`, string(raw))
	assert.Equal(t, "/api/v1/reports/tags", gotPath)
	assert.Equal(t, "end_date=2025-03-07&start_date=2025-03-01", gotQuery)
	assert.Equal(t, "acme.reamaze.io", gotHost)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "ops@acme.test", gotUser)
	assert.Equal(t, "tok", gotPass)
}

func TestFetchReport_NoRangeSendsNoQuery(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{}`))
	}, Config{})

	brand := domain.Brand{URL: "acme", Email: "a", APIToken: "b"}
	half := domain.DateRange{Start: march().Start}

	_, err := c.FetchReport(context.Background(), brand, domain.MetricVolume, half)
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
}

func TestFetchReport_GlobalCredentialsFallback(t *testing.T) {
	var gotUser string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotUser, _, _ = r.BasicAuth()
		_, _ = w.Write([]byte(`{}`))
	}, Config{Email: "global@support.test", APIToken: "global"})

	_, err := c.FetchReport(context.Background(), domain.Brand{URL: "acme"}, domain.MetricStaff, domain.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, "global@support.test", gotUser)
}

func TestFetchReport_NoCredentials(t *testing.T) {
	var hits int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}, Config{})

	_, err := c.FetchReport(context.Background(), domain.Brand{URL: "acme"}, domain.MetricStaff, domain.DateRange{})
	assert.ErrorIs(t, err, ErrNoCredentials)
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestFetchReport_Non2xx(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"bad token"}`))
	}, Config{})

	brand := domain.Brand{URL: "acme", Email: "a", APIToken: "b"}
	_, err := c.FetchReport(context.Background(), brand, domain.MetricTags, domain.DateRange{})

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
	assert.Contains(t, se.Body, "bad token")

	assert.Equal(t, "fetch tags report: helpdesk returned status 401", err.Error())
	assert.NotContains(t, err.Error(), "acme")
}

func TestFetchReport_TransportErrorHidesURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	c := NewClient(Config{BaseURL: base})
	brand := domain.Brand{URL: "acme", Email: "a", APIToken: "b"}

	_, err := c.FetchReport(context.Background(), brand, domain.MetricTags, domain.DateRange{})
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "acme")
	assert.NotContains(t, err.Error(), base)
}

func TestFetchReport_InvalidJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}, Config{})

	brand := domain.Brand{URL: "acme", Email: "a", APIToken: "b"}
	_, err := c.FetchReport(context.Background(), brand, domain.MetricTags, domain.DateRange{})
	assert.ErrorIs(t, err, ErrInvalidBody)
}

func TestFetchReport_Timeout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}, Config{Timeout: 20 * time.Millisecond})

	brand := domain.Brand{URL: "acme", Email: "a", APIToken: "b"}
	_, err := c.FetchReport(context.Background(), brand, domain.MetricTags, domain.DateRange{})
	require.Error(t, err)
}

func TestFetchReport_BreakerOpensPerBrand(t *testing.T) {
	var hits int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if r.Host == "broken.reamaze.io" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}, Config{BreakerThreshold: 2, BreakerCooldown: time.Minute})

	broken := domain.Brand{URL: "broken", Email: "a", APIToken: "b"}
	healthy := domain.Brand{URL: "healthy", Email: "a", APIToken: "b"}

	for i := 0; i < 2; i++ {
		_, err := c.FetchReport(context.Background(), broken, domain.MetricTags, domain.DateRange{})
		require.Error(t, err)
	}

	_, err := c.FetchReport(context.Background(), broken, domain.MetricTags, domain.DateRange{})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))

	_, err = c.FetchReport(context.Background(), healthy, domain.MetricTags, domain.DateRange{})
	assert.NoError(t, err)
}

func TestFetchReport_HalfOpenBreakerServesConcurrentFetches(t *testing.T) {
	var failing atomic.Bool
	failing.Store(true)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		time.Sleep(20 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}, Config{BreakerThreshold: 1, BreakerCooldown: 50 * time.Millisecond})

	brand := domain.Brand{URL: "acme", Email: "a", APIToken: "b"}

	_, err := c.FetchReport(context.Background(), brand, domain.MetricTags, domain.DateRange{})
	require.Error(t, err)
	_, err = c.FetchReport(context.Background(), brand, domain.MetricTags, domain.DateRange{})
	require.ErrorIs(t, err, gobreaker.ErrOpenState)

	failing.Store(false)
	time.Sleep(100 * time.Millisecond)

	const n = 16
	metrics := []domain.Metric{
		domain.MetricChannelSummary, domain.MetricTags, domain.MetricStaff,
		domain.MetricResponseTime, domain.MetricVolume,
	}
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = c.FetchReport(context.Background(), brand, metrics[i%len(metrics)], domain.DateRange{})
		}()
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "fetch %d", i)
	}
}

func TestFetchReport_ClientErrorsDoNotTripBreaker(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}, Config{BreakerThreshold: 1})

	brand := domain.Brand{URL: "acme", Email: "a", APIToken: "b"}
	for i := 0; i < 3; i++ {
		_, err := c.FetchReport(context.Background(), brand, domain.MetricTags, domain.DateRange{})
		var se *StatusError
		require.True(t, errors.As(err, &se))
	}
}

func TestFetchReport_RecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}, Config{}, WithMetrics(m))

	brand := domain.Brand{URL: "acme", Email: "a", APIToken: "b"}
	_, err := c.FetchReport(context.Background(), brand, domain.MetricVolume, domain.DateRange{})
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("volume", "ok")))
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "ok", outcome(nil))
	assert.Equal(t, "breaker_open", outcome(gobreaker.ErrOpenState))
	assert.Equal(t, "status_5xx", outcome(&StatusError{StatusCode: 503}))
	assert.Equal(t, "invalid_body", outcome(ErrInvalidBody))
	assert.Equal(t, "transport_error", outcome(errors.New("dial tcp: refused")))
}
