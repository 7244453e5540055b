package usecase

import (
	"errors"
	"time"

	"support-dashboard-service/internal/reports/core/domain"
)

var (
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDateRange = errors.New("start_date must not be after end_date")
)

// ReportInput carries the optional caller-supplied bounds. A single bound is
// validated and echoed back but does not filter anything.
type ReportInput struct {
	StartDate string
	EndDate   string
}

func ParseDateRange(start, end string) (domain.DateRange, error) {
	var rng domain.DateRange
	var err error

	if start != "" {
		if rng.Start, err = time.Parse(domain.DateLayout, start); err != nil {
			return domain.DateRange{}, ErrInvalidDate
		}
	}
	if end != "" {
		if rng.End, err = time.Parse(domain.DateLayout, end); err != nil {
			return domain.DateRange{}, ErrInvalidDate
		}
	}
	if rng.IsSet() && rng.Start.After(rng.End) {
		return domain.DateRange{}, ErrInvalidDateRange
	}

	return rng, nil
}
