package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"support-dashboard-service/internal/platform/metrics"
	"support-dashboard-service/internal/reports/core/domain"
	"support-dashboard-service/internal/reports/core/ports"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	ErrBrandStore  = errors.New("brand store unavailable")
	ErrAggregation = errors.New("report aggregation failed")
)

// AggregateReportsUseCase fetches one helpdesk report per configured brand
// and folds them into a single cross-brand report. A brand whose fetch fails
// is listed with its error and left out of every sum.
type AggregateReportsUseCase struct {
	brands  ports.BrandReader
	fetcher ports.ReportFetcher

	log            logrus.FieldLogger
	metrics        *metrics.Metrics
	maxConcurrency int
}

func NewAggregateReportsUseCase(brands ports.BrandReader, fetcher ports.ReportFetcher, opts ...Option) *AggregateReportsUseCase {
	o := buildOptions(opts)
	return &AggregateReportsUseCase{
		brands:         brands,
		fetcher:        fetcher,
		log:            o.log,
		metrics:        o.metrics,
		maxConcurrency: o.maxConcurrency,
	}
}

func (uc *AggregateReportsUseCase) ChannelSummary(ctx context.Context, in ReportInput) (*domain.ChannelSummaryReport, error) {
	return aggregate(ctx, uc, domain.MetricChannelSummary, in, emptyChannelSummary, foldChannelSummary)
}

func (uc *AggregateReportsUseCase) Tags(ctx context.Context, in ReportInput) (*domain.TagsReport, error) {
	return aggregate(ctx, uc, domain.MetricTags, in, emptyTags, foldTags)
}

func (uc *AggregateReportsUseCase) Staff(ctx context.Context, in ReportInput) (*domain.StaffReport, error) {
	return aggregate(ctx, uc, domain.MetricStaff, in, emptyStaff, foldStaff)
}

func (uc *AggregateReportsUseCase) ResponseTime(ctx context.Context, in ReportInput) (*domain.ResponseTimeReport, error) {
	return aggregate(ctx, uc, domain.MetricResponseTime, in, emptyResponseTime, foldResponseTime)
}

func (uc *AggregateReportsUseCase) Volume(ctx context.Context, in ReportInput) (*domain.VolumeReport, error) {
	return aggregate(ctx, uc, domain.MetricVolume, in, emptyVolume, foldVolume)
}

// fetched pairs a brand's result with its decoded payload; payload is nil
// when the result is a failure.
type fetched[P any] struct {
	result  domain.BrandResult
	payload *P
}

func aggregate[P, R any](
	ctx context.Context,
	uc *AggregateReportsUseCase,
	metric domain.Metric,
	in ReportInput,
	empty func(domain.DateRange) *R,
	fold func([]fetched[P], domain.DateRange) *R,
) (*R, error) {
	rng, err := ParseDateRange(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}

	brands, err := uc.brands.ListBrands(ctx)
	if err != nil {
		uc.log.WithError(err).WithField("metric", metric).Error("list brands failed")
		return nil, fmt.Errorf("%w: %v", ErrBrandStore, err)
	}
	if len(brands) == 0 {
		return empty(rng), nil
	}

	items := collect[P](ctx, uc, brands, metric, rng)

	return safeFold(metric, fold, items, rng)
}

// collect runs every brand fetch concurrently and waits for all of them.
// Results keep the order of brands.
func collect[P any](
	ctx context.Context,
	uc *AggregateReportsUseCase,
	brands []domain.Brand,
	metric domain.Metric,
	rng domain.DateRange,
) []fetched[P] {
	out := make([]fetched[P], len(brands))

	var g errgroup.Group
	if uc.maxConcurrency > 0 {
		g.SetLimit(uc.maxConcurrency)
	}

	for i, b := range brands {
		g.Go(func() error {
			out[i] = fetchOne[P](ctx, uc, b, metric, rng)
			return nil
		})
	}
	_ = g.Wait()

	return out
}

func fetchOne[P any](
	ctx context.Context,
	uc *AggregateReportsUseCase,
	b domain.Brand,
	metric domain.Metric,
	rng domain.DateRange,
) (item fetched[P]) {
	label := brandLabel(b)

	defer func() {
		if r := recover(); r != nil {
			item = failedFetch[P](uc, label, metric, fmt.Errorf("fetch %s report: panic: %v", metric, r))
		}
	}()

	raw, err := uc.fetcher.FetchReport(ctx, b, metric, rng)
	if err != nil {
		return failedFetch[P](uc, label, metric, err)
	}

	var p P
	if err := json.Unmarshal(raw, &p); err != nil {
		return failedFetch[P](uc, label, metric, fmt.Errorf("decode %s report: %w", metric, err))
	}

	return fetched[P]{result: domain.Succeeded(label, raw), payload: &p}
}

func failedFetch[P any](uc *AggregateReportsUseCase, label string, metric domain.Metric, err error) fetched[P] {
	uc.log.WithFields(logrus.Fields{
		"brand":  label,
		"metric": metric,
	}).WithError(err).Warn("brand report excluded from aggregate")
	uc.metrics.BrandFailed(string(metric))
	return fetched[P]{result: domain.Failed(label, err)}
}

func safeFold[P, R any](
	metric domain.Metric,
	fold func([]fetched[P], domain.DateRange) *R,
	items []fetched[P],
	rng domain.DateRange,
) (out *R, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("%w: %s: %v", ErrAggregation, metric, r)
		}
	}()
	return fold(items, rng), nil
}

func brandLabel(b domain.Brand) string {
	if b.Name != "" {
		return b.Name
	}
	return b.URL
}

func results[P any](items []fetched[P]) []domain.BrandResult {
	out := make([]domain.BrandResult, len(items))
	for i, it := range items {
		out[i] = it.result
	}
	return out
}
