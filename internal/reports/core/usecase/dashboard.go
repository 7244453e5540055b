package usecase

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"support-dashboard-service/internal/reports/core/domain"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidPreset   = errors.New("preset must be one of 7d, 30d, month")
	ErrIncompleteRange = errors.New("start_date and end_date must be supplied together")
)

const (
	Preset7Days  = "7d"
	Preset30Days = "30d"
	PresetMonth  = "month"

	DefaultPreset = Preset7Days

	dashboardTopTags = 5
)

// ReportAggregator is the subset of AggregateReportsUseCase the dashboard
// builds on.
type ReportAggregator interface {
	ChannelSummary(ctx context.Context, in ReportInput) (*domain.ChannelSummaryReport, error)
	Tags(ctx context.Context, in ReportInput) (*domain.TagsReport, error)
	Staff(ctx context.Context, in ReportInput) (*domain.StaffReport, error)
	ResponseTime(ctx context.Context, in ReportInput) (*domain.ResponseTimeReport, error)
	Volume(ctx context.Context, in ReportInput) (*domain.VolumeReport, error)
}

// DashboardInput selects the current period. Explicit dates take precedence
// over Preset; an empty input means the last 7 days.
type DashboardInput struct {
	Preset    string
	StartDate string
	EndDate   string
}

type DashboardUseCase struct {
	reports ReportAggregator
	log     logrus.FieldLogger
	now     func() time.Time
}

func NewDashboardUseCase(reports ReportAggregator, opts ...Option) *DashboardUseCase {
	o := buildOptions(opts)
	return &DashboardUseCase{
		reports: reports,
		log:     o.log,
		now:     o.now,
	}
}

func (uc *DashboardUseCase) Execute(ctx context.Context, in DashboardInput) (*domain.DashboardSummary, error) {
	current, err := uc.resolveRange(in)
	if err != nil {
		return nil, err
	}
	previous := previousPeriod(current)

	cur := ReportInput{StartDate: current.StartString(), EndDate: current.EndString()}
	prev := ReportInput{StartDate: previous.StartString(), EndDate: previous.EndString()}

	var (
		channels, prevChannels *domain.ChannelSummaryReport
		volume, prevVolume     *domain.VolumeReport
		rt, prevRT             *domain.ResponseTimeReport
		tags                   *domain.TagsReport
		staff                  *domain.StaffReport
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { channels, err = uc.reports.ChannelSummary(gctx, cur); return })
	g.Go(func() (err error) { volume, err = uc.reports.Volume(gctx, cur); return })
	g.Go(func() (err error) { rt, err = uc.reports.ResponseTime(gctx, cur); return })
	g.Go(func() (err error) { tags, err = uc.reports.Tags(gctx, cur); return })
	g.Go(func() (err error) { staff, err = uc.reports.Staff(gctx, cur); return })
	g.Go(func() (err error) { prevChannels, err = uc.reports.ChannelSummary(gctx, prev); return })
	g.Go(func() (err error) { prevVolume, err = uc.reports.Volume(gctx, prev); return })
	g.Go(func() (err error) { prevRT, err = uc.reports.ResponseTime(gctx, prev); return })

	if err := g.Wait(); err != nil {
		uc.log.WithError(err).Error("dashboard aggregation failed")
		return nil, err
	}

	out := &domain.DashboardSummary{
		Current:  current,
		Previous: previous,
		KPIs: domain.DashboardKPIs{
			AvgResponseTimeSeconds: newKPI(inRangeAverage(rt), inRangeAverage(prevRT)),
			TotalTickets: newKPI(
				floatPtr(float64(sumCounts(volume.ConversationCounts))),
				floatPtr(float64(sumCounts(prevVolume.ConversationCounts))),
			),
			CSAT: newKPI(
				channels.Aggregated.AverageSatisfactionRating,
				prevChannels.Aggregated.AverageSatisfactionRating,
			),
			ActiveTickets: newKPI(
				floatPtr(float64(channels.Aggregated.ActiveConversations)),
				floatPtr(float64(prevChannels.Aggregated.ActiveConversations)),
			),
		},
		Volume:       volumeSeries(volume.ConversationCounts),
		ResponseTime: responseTimeSeries(rt.ResponseTimes),
		TopTags:      topTags(tags.Tags, dashboardTopTags),
		Staff:        staffRows(staff.Report),
		FailedBrands: failedBrands(channels.Brands, volume.Brands, rt.Brands, tags.Brands, staff.Brands),
	}

	return out, nil
}

func (uc *DashboardUseCase) resolveRange(in DashboardInput) (domain.DateRange, error) {
	if in.StartDate != "" || in.EndDate != "" {
		if in.StartDate == "" || in.EndDate == "" {
			return domain.DateRange{}, ErrIncompleteRange
		}
		return ParseDateRange(in.StartDate, in.EndDate)
	}

	now := uc.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	preset := in.Preset
	if preset == "" {
		preset = DefaultPreset
	}

	switch preset {
	case Preset7Days:
		return domain.DateRange{Start: today.AddDate(0, 0, -7), End: today}, nil
	case Preset30Days:
		return domain.DateRange{Start: today.AddDate(0, 0, -30), End: today}, nil
	case PresetMonth:
		return domain.DateRange{Start: today.AddDate(0, 0, 1-today.Day()), End: today}, nil
	default:
		return domain.DateRange{}, ErrInvalidPreset
	}
}

// previousPeriod is the range of the same length ending the day before
// current starts.
func previousPeriod(current domain.DateRange) domain.DateRange {
	end := current.Start.AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -(current.Days() - 1))
	return domain.DateRange{Start: start, End: end}
}

func newKPI(current, previous *float64) domain.KPI {
	k := domain.KPI{Current: current, Previous: previous}
	if current != nil && previous != nil && *previous != 0 {
		d := round((*current-*previous) / *previous * 100, 1)
		k.DeltaPct = &d
	}
	return k
}

func floatPtr(v float64) *float64 {
	return &v
}

func inRangeAverage(r *domain.ResponseTimeReport) *float64 {
	if !r.InRangeReported {
		return nil
	}
	return floatPtr(float64(r.InRangeAverage))
}

func sumCounts(m map[string]int64) int64 {
	var n int64
	for _, v := range m {
		n += v
	}
	return n
}

func volumeSeries(counts map[string]int64) []domain.SeriesPoint {
	out := make([]domain.SeriesPoint, 0, len(counts))
	for date, n := range counts {
		out = append(out, domain.SeriesPoint{Date: date, Value: float64(n)})
	}
	sortSeries(out)
	return out
}

func responseTimeSeries(secs map[string]float64) []domain.SeriesPoint {
	out := make([]domain.SeriesPoint, 0, len(secs))
	for date, s := range secs {
		out = append(out, domain.SeriesPoint{Date: date, Value: math.Round(s / 60)})
	}
	sortSeries(out)
	return out
}

func sortSeries(s []domain.SeriesPoint) {
	sort.Slice(s, func(i, j int) bool { return s[i].Date < s[j].Date })
}

func topTags(tags map[string]int64, limit int) []domain.TagCount {
	out := make([]domain.TagCount, 0, len(tags))
	for name, n := range tags {
		out = append(out, domain.TagCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func staffRows(report map[string]domain.StaffTotals) []domain.StaffRow {
	out := make([]domain.StaffRow, 0, len(report))
	for name, s := range report {
		out = append(out, domain.StaffRow{
			Name:                name,
			ResponseCount:       s.ResponseCount,
			ResponseTimeMinutes: int64(math.Round(float64(s.ResponseTimeSeconds) / 60)),
			AppreciationsCount:  s.AppreciationsCount,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ResponseCount != out[j].ResponseCount {
			return out[i].ResponseCount > out[j].ResponseCount
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func failedBrands(sets ...[]domain.BrandResult) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, set := range sets {
		for _, r := range set {
			if r.OK() {
				continue
			}
			if _, ok := seen[r.Brand]; ok {
				continue
			}
			seen[r.Brand] = struct{}{}
			out = append(out, r.Brand)
		}
	}
	sort.Strings(out)
	return out
}
