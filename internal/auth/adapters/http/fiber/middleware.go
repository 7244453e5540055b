package fiber

import (
	"net/http"
	"strings"

	"support-dashboard-service/internal/auth/core/ports"

	"github.com/gofiber/fiber/v2"
)

// SubjectKey is the fiber.Ctx locals key holding the authenticated subject.
const SubjectKey = "subject"

// RequireAuth rejects requests without a bearer token (401) or with one that
// does not validate (403).
func RequireAuth(tokens ports.TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		token = strings.TrimSpace(token)
		if !found || token == "" {
			return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "access_denied",
				Message: "bearer token required",
			})
		}

		subject, err := tokens.Validate(token)
		if err != nil {
			return c.Status(http.StatusForbidden).JSON(ErrorResponse{
				Error:   "invalid_token",
				Message: err.Error(),
			})
		}

		c.Locals(SubjectKey, subject)
		return c.Next()
	}
}
