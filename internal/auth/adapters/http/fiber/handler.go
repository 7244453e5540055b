package fiber

import (
	"context"
	"errors"
	"net/http"

	"support-dashboard-service/internal/auth/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type LoginUseCase interface {
	Execute(ctx context.Context, in usecase.LoginInput) (string, error)
}

type AuthHandler struct {
	login LoginUseCase
}

func NewAuthHandler(login LoginUseCase) *AuthHandler {
	return &AuthHandler{login: login}
}

// Login godoc
// @Summary Exchange admin credentials for a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Admin credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}

	token, err := h.login.Execute(c.UserContext(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_credentials",
				Message: "invalid username or password",
			})
		}
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Error: "internal_server_error"})
	}

	return c.Status(http.StatusOK).JSON(LoginResponse{Token: token})
}

// Verify godoc
// @Summary Check that the bearer token is still valid
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} VerifyResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /auth/verify [get]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(VerifyResponse{Valid: true})
}
