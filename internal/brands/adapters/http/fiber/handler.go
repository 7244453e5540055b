package fiber

import (
	"context"
	"errors"
	"net/http"

	"support-dashboard-service/internal/brands/core/domain"
	"support-dashboard-service/internal/brands/core/ports"
	"support-dashboard-service/internal/brands/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type ManageBrandsUseCase interface {
	List(ctx context.Context) ([]domain.Brand, error)
	Get(ctx context.Context, id int64) (*domain.Brand, error)
	Create(ctx context.Context, in usecase.CreateBrandInput) (*domain.Brand, error)
	Delete(ctx context.Context, id int64) error
}

type BrandHandler struct {
	uc ManageBrandsUseCase
}

func NewBrandHandler(uc ManageBrandsUseCase) *BrandHandler {
	return &BrandHandler{uc: uc}
}

// ListBrands godoc
// @Summary List configured brands
// @Tags Brands
// @Produce json
// @Security BearerAuth
// @Success 200 {array} BrandResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/brands [get]
func (h *BrandHandler) ListBrands(c *fiber.Ctx) error {
	brands, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}

	resp := make([]BrandResponse, 0, len(brands))
	for _, b := range brands {
		resp = append(resp, toBrandResponse(b))
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetBrand godoc
// @Summary Get one brand
// @Tags Brands
// @Produce json
// @Security BearerAuth
// @Param id path int true "Brand ID"
// @Success 200 {object} BrandResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/brands/{id} [get]
func (h *BrandHandler) GetBrand(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_brand_id"})
	}

	b, err := h.uc.Get(c.UserContext(), int64(id))
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toBrandResponse(*b))
}

// CreateBrand godoc
// @Summary Add a helpdesk brand
// @Tags Brands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBrandRequest true "Brand payload"
// @Success 201 {object} BrandResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/brands [post]
func (h *BrandHandler) CreateBrand(c *fiber.Ctx) error {
	var req CreateBrandRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}

	b, err := h.uc.Create(c.UserContext(), usecase.CreateBrandInput{
		Name:     req.Name,
		URL:      req.URL,
		Email:    req.Email,
		APIToken: req.APIToken,
	})
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(http.StatusCreated).JSON(toBrandResponse(*b))
}

// DeleteBrand godoc
// @Summary Remove a brand
// @Tags Brands
// @Security BearerAuth
// @Param id path int true "Brand ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/brands/{id} [delete]
func (h *BrandHandler) DeleteBrand(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_brand_id"})
	}

	if err := h.uc.Delete(c.UserContext(), int64(id)); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *BrandHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidBrand):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_brand",
			Message: "name and a valid helpdesk subdomain are required",
		})
	case errors.Is(err, usecase.ErrInvalidBrandID):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_brand_id"})
	case errors.Is(err, ports.ErrBrandNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{Error: "brand_not_found"})
	case errors.Is(err, ports.ErrBrandExists):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{Error: "brand_exists"})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
