package middleware

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"support-dashboard-service/internal/platform/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	HeaderRequestID = "X-Request-ID"
	LocalRequestID  = "requestID"
)

func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(HeaderRequestID, requestID)
		c.Locals(LocalRequestID, requestID)
		return c.Next()
	}
}

func RequestLogger(log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		log.WithFields(logrus.Fields{
			"request_id": c.Locals(LocalRequestID),
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     c.Response().StatusCode(),
			"latency":    time.Since(start).String(),
		}).Info("request handled")

		return err
	}
}

// RequestMetrics records latency per matched route, so path parameters do not
// explode label cardinality.
func RequestMetrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		m.ObserveRequest(
			c.Method(),
			c.Route().Path,
			strconv.Itoa(c.Response().StatusCode()),
			time.Since(start),
		)
		return err
	}
}

func Recovery(log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(logrus.Fields{
					"request_id": c.Locals(LocalRequestID),
					"panic":      r,
				}).Error("panic recovered")

				err = c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "internal_server_error",
				})
			}
		}()

		return c.Next()
	}
}

// ErrorHandler renders errors that escape the handlers, such as unmatched
// routes, in the same JSON shape the handlers use.
func ErrorHandler(log logrus.FieldLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		label := "internal_server_error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			label = strings.ReplaceAll(strings.ToLower(fe.Message), " ", "_")
		}
		if code >= fiber.StatusInternalServerError {
			log.WithField("request_id", c.Locals(LocalRequestID)).WithError(err).Error("unhandled error")
			label = "internal_server_error"
		}

		return c.Status(code).JSON(fiber.Map{"error": label})
	}
}
