package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"support-dashboard-service/internal/reports/core/domain"
	"support-dashboard-service/internal/reports/core/ports"

	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownMetric  = errors.New("unknown report metric")
	ErrInvalidBrandID = errors.New("brand id must be a positive integer")
	ErrUpstream       = errors.New("helpdesk request failed")
)

type BrandReportInput struct {
	BrandID   int64
	Metric    string
	StartDate string
	EndDate   string
}

// BrandReportUseCase returns one brand's report exactly as the helpdesk sent
// it.
type BrandReportUseCase struct {
	brands  ports.BrandReader
	fetcher ports.ReportFetcher
	log     logrus.FieldLogger
}

func NewBrandReportUseCase(brands ports.BrandReader, fetcher ports.ReportFetcher, opts ...Option) *BrandReportUseCase {
	o := buildOptions(opts)
	return &BrandReportUseCase{brands: brands, fetcher: fetcher, log: o.log}
}

func (uc *BrandReportUseCase) Execute(ctx context.Context, in BrandReportInput) (json.RawMessage, error) {
	if in.BrandID <= 0 {
		return nil, ErrInvalidBrandID
	}
	metric, ok := domain.ParseMetric(in.Metric)
	if !ok {
		return nil, ErrUnknownMetric
	}
	rng, err := ParseDateRange(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}

	brand, err := uc.brands.GetBrand(ctx, in.BrandID)
	if err != nil {
		if errors.Is(err, ports.ErrBrandNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrBrandStore, err)
	}

	raw, err := uc.fetcher.FetchReport(ctx, *brand, metric, rng)
	if err != nil {
		uc.log.WithFields(logrus.Fields{
			"brand":  brandLabel(*brand),
			"metric": metric,
		}).WithError(err).Warn("brand report fetch failed")
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return raw, nil
}
