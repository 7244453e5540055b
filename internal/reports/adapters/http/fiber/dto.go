package fiber

import (
	"encoding/json"

	"support-dashboard-service/internal/reports/core/domain"
)

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_date"`
	Message string `json:"message,omitempty" example:"invalid date, expected YYYY-MM-DD"`
}

// BrandResult is one brand's outcome: data on success, error otherwise.
// @Description Exactly one of data and error is present.
type BrandResult struct {
	Brand string          `json:"brand" example:"Acme"`
	Data  json.RawMessage `json:"data,omitempty" swaggertype:"object"`
	Error string          `json:"error,omitempty" example:"helpdesk returned status 401"`
}

// RangeEcho repeats the requested bounds; empty when not supplied.
type RangeEcho struct {
	StartDate string `json:"start_date,omitempty" example:"2025-03-01"`
	EndDate   string `json:"end_date,omitempty" example:"2025-03-07"`
}

type ChannelTotals struct {
	ActiveConversations       int64    `json:"active_conversations" example:"12"`
	AverageSatisfactionRating *float64 `json:"average_satisfaction_rating" example:"4.25"`
	TotalSatisfactionRatings  int64    `json:"total_satisfaction_ratings" example:"8"`
}

type ChannelSummaryResponse struct {
	Channels   map[string]ChannelTotals `json:"channels"`
	Aggregated ChannelTotals            `json:"aggregated"`
	Brands     []BrandResult            `json:"brands"`
	RangeEcho
}

type TagsResponse struct {
	Tags   map[string]int64 `json:"tags"`
	Brands []BrandResult    `json:"brands"`
	RangeEcho
}

type StaffTotals struct {
	ResponseCount       int64 `json:"response_count" example:"40"`
	ResponseTimeSeconds int64 `json:"response_time_seconds" example:"62"`
	AppreciationsCount  int64 `json:"appreciations_count" example:"3"`
}

type StaffResponse struct {
	Report map[string]StaffTotals `json:"report"`
	Brands []BrandResult          `json:"brands"`
	RangeEcho
}

type ResponseTimeAverages struct {
	InRange int64 `json:"in_range" example:"96"`
}

type ResponseTimeSummary struct {
	Averages ResponseTimeAverages `json:"averages"`
}

type ResponseTimeResponse struct {
	ResponseTimes map[string]float64  `json:"response_times"`
	Summary       ResponseTimeSummary `json:"summary"`
	Brands        []BrandResult       `json:"brands"`
	RangeEcho
}

type VolumeResponse struct {
	ConversationCounts map[string]int64 `json:"conversation_counts"`
	Brands             []BrandResult    `json:"brands"`
	RangeEcho
}

type KPI struct {
	Current  *float64 `json:"current" example:"50"`
	Previous *float64 `json:"previous" example:"40"`
	DeltaPct *float64 `json:"delta_pct" example:"25"`
}

type DashboardKPIs struct {
	AvgResponseTimeSeconds KPI `json:"avg_response_time_seconds"`
	TotalTickets           KPI `json:"total_tickets"`
	CSAT                   KPI `json:"csat"`
	ActiveTickets          KPI `json:"active_tickets"`
}

type SeriesPoint struct {
	Date  string  `json:"date" example:"2025-03-01"`
	Value float64 `json:"value" example:"30"`
}

type TagCount struct {
	Name  string `json:"name" example:"billing"`
	Count int64  `json:"count" example:"5"`
}

type StaffRow struct {
	Name                string `json:"name" example:"Ann"`
	ResponseCount       int64  `json:"response_count" example:"40"`
	ResponseTimeMinutes int64  `json:"response_time_minutes" example:"1"`
	AppreciationsCount  int64  `json:"appreciations_count" example:"3"`
}

type DashboardResponse struct {
	Current      RangeEcho     `json:"current"`
	Previous     RangeEcho     `json:"previous"`
	KPIs         DashboardKPIs `json:"kpis"`
	Volume       []SeriesPoint `json:"volume"`
	ResponseTime []SeriesPoint `json:"response_time_minutes"`
	TopTags      []TagCount    `json:"top_tags"`
	Staff        []StaffRow    `json:"staff"`
	FailedBrands []string      `json:"failed_brands"`
}

func toBrandResults(in []domain.BrandResult) []BrandResult {
	out := make([]BrandResult, 0, len(in))
	for _, r := range in {
		if r.OK() {
			out = append(out, BrandResult{Brand: r.Brand, Data: r.Data})
			continue
		}
		out = append(out, BrandResult{Brand: r.Brand, Error: r.Err.Error()})
	}
	return out
}

func toRangeEcho(in ReportQuery) RangeEcho {
	return RangeEcho{StartDate: in.StartDate, EndDate: in.EndDate}
}

func toChannelTotals(t domain.ChannelTotals) ChannelTotals {
	return ChannelTotals{
		ActiveConversations:       t.ActiveConversations,
		AverageSatisfactionRating: t.AverageSatisfactionRating,
		TotalSatisfactionRatings:  t.TotalSatisfactionRatings,
	}
}

func toChannelSummaryResponse(r *domain.ChannelSummaryReport, q ReportQuery) ChannelSummaryResponse {
	channels := make(map[string]ChannelTotals, len(r.Channels))
	for k, v := range r.Channels {
		channels[k] = toChannelTotals(v)
	}
	return ChannelSummaryResponse{
		Channels:   channels,
		Aggregated: toChannelTotals(r.Aggregated),
		Brands:     toBrandResults(r.Brands),
		RangeEcho:  toRangeEcho(q),
	}
}

func toStaffResponse(r *domain.StaffReport, q ReportQuery) StaffResponse {
	report := make(map[string]StaffTotals, len(r.Report))
	for k, v := range r.Report {
		report[k] = StaffTotals{
			ResponseCount:       v.ResponseCount,
			ResponseTimeSeconds: v.ResponseTimeSeconds,
			AppreciationsCount:  v.AppreciationsCount,
		}
	}
	return StaffResponse{Report: report, Brands: toBrandResults(r.Brands), RangeEcho: toRangeEcho(q)}
}

func toKPI(k domain.KPI) KPI {
	return KPI{Current: k.Current, Previous: k.Previous, DeltaPct: k.DeltaPct}
}

func toSeries(in []domain.SeriesPoint) []SeriesPoint {
	out := make([]SeriesPoint, 0, len(in))
	for _, p := range in {
		out = append(out, SeriesPoint{Date: p.Date, Value: p.Value})
	}
	return out
}

func toDashboardResponse(s *domain.DashboardSummary) DashboardResponse {
	tags := make([]TagCount, 0, len(s.TopTags))
	for _, t := range s.TopTags {
		tags = append(tags, TagCount{Name: t.Name, Count: t.Count})
	}
	staff := make([]StaffRow, 0, len(s.Staff))
	for _, r := range s.Staff {
		staff = append(staff, StaffRow{
			Name:                r.Name,
			ResponseCount:       r.ResponseCount,
			ResponseTimeMinutes: r.ResponseTimeMinutes,
			AppreciationsCount:  r.AppreciationsCount,
		})
	}

	return DashboardResponse{
		Current:  RangeEcho{StartDate: s.Current.StartString(), EndDate: s.Current.EndString()},
		Previous: RangeEcho{StartDate: s.Previous.StartString(), EndDate: s.Previous.EndString()},
		KPIs: DashboardKPIs{
			AvgResponseTimeSeconds: toKPI(s.KPIs.AvgResponseTimeSeconds),
			TotalTickets:           toKPI(s.KPIs.TotalTickets),
			CSAT:                   toKPI(s.KPIs.CSAT),
			ActiveTickets:          toKPI(s.KPIs.ActiveTickets),
		},
		Volume:       toSeries(s.Volume),
		ResponseTime: toSeries(s.ResponseTime),
		TopTags:      tags,
		Staff:        staff,
		FailedBrands: s.FailedBrands,
	}
}
