package fiber

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"support-dashboard-service/internal/reports/core/domain"
	"support-dashboard-service/internal/reports/core/ports"
	"support-dashboard-service/internal/reports/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type AggregateReportsUseCase interface {
	ChannelSummary(ctx context.Context, in usecase.ReportInput) (*domain.ChannelSummaryReport, error)
	Tags(ctx context.Context, in usecase.ReportInput) (*domain.TagsReport, error)
	Staff(ctx context.Context, in usecase.ReportInput) (*domain.StaffReport, error)
	ResponseTime(ctx context.Context, in usecase.ReportInput) (*domain.ResponseTimeReport, error)
	Volume(ctx context.Context, in usecase.ReportInput) (*domain.VolumeReport, error)
}

type DashboardUseCase interface {
	Execute(ctx context.Context, in usecase.DashboardInput) (*domain.DashboardSummary, error)
}

type BrandReportUseCase interface {
	Execute(ctx context.Context, in usecase.BrandReportInput) (json.RawMessage, error)
}

// ReportQuery holds the optional date bounds shared by every report route.
type ReportQuery struct {
	StartDate string
	EndDate   string
}

type ReportHandler struct {
	reports     AggregateReportsUseCase
	dashboard   DashboardUseCase
	brandReport BrandReportUseCase
}

func NewReportHandler(reports AggregateReportsUseCase, dashboard DashboardUseCase, brandReport BrandReportUseCase) *ReportHandler {
	return &ReportHandler{reports: reports, dashboard: dashboard, brandReport: brandReport}
}

func parseQuery(c *fiber.Ctx) ReportQuery {
	return ReportQuery{StartDate: c.Query("start_date"), EndDate: c.Query("end_date")}
}

func (q ReportQuery) input() usecase.ReportInput {
	return usecase.ReportInput{StartDate: q.StartDate, EndDate: q.EndDate}
}

// ChannelSummary godoc
// @Summary Channel summary across all brands
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Inclusive start (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end (YYYY-MM-DD)"
// @Success 200 {object} ChannelSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/channel-summary [get]
func (h *ReportHandler) ChannelSummary(c *fiber.Ctx) error {
	q := parseQuery(c)
	r, err := h.reports.ChannelSummary(c.UserContext(), q.input())
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toChannelSummaryResponse(r, q))
}

// Tags godoc
// @Summary Tag counts across all brands
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Inclusive start (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end (YYYY-MM-DD)"
// @Success 200 {object} TagsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/tags [get]
func (h *ReportHandler) Tags(c *fiber.Ctx) error {
	q := parseQuery(c)
	r, err := h.reports.Tags(c.UserContext(), q.input())
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(TagsResponse{
		Tags:      r.Tags,
		Brands:    toBrandResults(r.Brands),
		RangeEcho: toRangeEcho(q),
	})
}

// Staff godoc
// @Summary Staff performance across all brands
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Inclusive start (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end (YYYY-MM-DD)"
// @Success 200 {object} StaffResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/staff [get]
func (h *ReportHandler) Staff(c *fiber.Ctx) error {
	q := parseQuery(c)
	r, err := h.reports.Staff(c.UserContext(), q.input())
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toStaffResponse(r, q))
}

// ResponseTime godoc
// @Summary Daily response time across all brands
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Inclusive start (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end (YYYY-MM-DD)"
// @Success 200 {object} ResponseTimeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/response-time [get]
func (h *ReportHandler) ResponseTime(c *fiber.Ctx) error {
	q := parseQuery(c)
	r, err := h.reports.ResponseTime(c.UserContext(), q.input())
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(ResponseTimeResponse{
		ResponseTimes: r.ResponseTimes,
		Summary:       ResponseTimeSummary{Averages: ResponseTimeAverages{InRange: r.InRangeAverage}},
		Brands:        toBrandResults(r.Brands),
		RangeEcho:     toRangeEcho(q),
	})
}

// Volume godoc
// @Summary Daily conversation volume across all brands
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Inclusive start (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end (YYYY-MM-DD)"
// @Success 200 {object} VolumeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/volume [get]
func (h *ReportHandler) Volume(c *fiber.Ctx) error {
	q := parseQuery(c)
	r, err := h.reports.Volume(c.UserContext(), q.input())
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(VolumeResponse{
		ConversationCounts: r.ConversationCounts,
		Brands:             toBrandResults(r.Brands),
		RangeEcho:          toRangeEcho(q),
	})
}

// Dashboard godoc
// @Summary Dashboard KPIs with deltas against the previous period
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param preset query string false "7d, 30d or month" default(7d)
// @Param start_date query string false "Inclusive start (YYYY-MM-DD), overrides preset"
// @Param end_date query string false "Inclusive end (YYYY-MM-DD), overrides preset"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	q := parseQuery(c)
	s, err := h.dashboard.Execute(c.UserContext(), usecase.DashboardInput{
		Preset:    c.Query("preset"),
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toDashboardResponse(s))
}

// BrandReport godoc
// @Summary Raw report of a single brand
// @Description Returns the helpdesk response body unchanged.
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Brand ID"
// @Param metric path string true "channel_summary, tags, staff, response_time or volume"
// @Param start_date query string false "Inclusive start (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end (YYYY-MM-DD)"
// @Success 200 {object} object
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/brands/{id}/reports/{metric} [get]
func (h *ReportHandler) BrandReport(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_brand_id"})
	}

	q := parseQuery(c)
	raw, err := h.brandReport.Execute(c.UserContext(), usecase.BrandReportInput{
		BrandID:   int64(id),
		Metric:    c.Params("metric"),
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
	})
	if err != nil {
		return h.fail(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(http.StatusOK).Send(raw)
}

func (h *ReportHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidDate),
		errors.Is(err, usecase.ErrInvalidDateRange),
		errors.Is(err, usecase.ErrIncompleteRange):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_date", Message: err.Error()})
	case errors.Is(err, usecase.ErrInvalidPreset):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_preset", Message: err.Error()})
	case errors.Is(err, usecase.ErrInvalidBrandID):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_brand_id"})
	case errors.Is(err, usecase.ErrUnknownMetric):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "unknown_metric", Message: err.Error()})
	case errors.Is(err, ports.ErrBrandNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{Error: "brand_not_found"})
	case errors.Is(err, usecase.ErrUpstream):
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{Error: "upstream_error", Message: err.Error()})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
