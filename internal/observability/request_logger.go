package observability

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs each request outcome and records request metrics.
// It never logs request bodies or Authorization headers, so bearer
// tokens stay out of the logs.
func RequestLogger(logger *zap.Logger, metrics *Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		status := c.Response().StatusCode()
		metrics.RecordRequest(c.Path(), c.Method(), status, duration)

		logger.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", duration),
		)
		return err
	}
}
