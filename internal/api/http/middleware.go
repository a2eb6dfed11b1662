package http

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/andrewserrazina/friendly-paws-backend/internal/config"
	"github.com/andrewserrazina/friendly-paws-backend/internal/observability"
	apperrors "github.com/andrewserrazina/friendly-paws-backend/pkg/util"
)

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, corsCfg config.CORSConfig, timeout time.Duration) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsCfg.AllowOrigins,
		AllowHeaders: corsCfg.AllowHeaders,
	}))
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(errorHandlingMiddleware(logger, metrics))
	app.Use(observability.RequestLogger(logger, metrics))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				domainErr := apperrors.ToDomainError(err)
				if metrics != nil {
					metrics.RecordError(c.Path(), c.Method(), domainErr.Code)
				}
				response := fiber.Map{"error": fiber.Map{
					"code":    domainErr.Code,
					"message": domainErr.Message,
				}}
				if len(domainErr.Details) > 0 {
					response["error"].(fiber.Map)["details"] = domainErr.Details
				}
				if domainErr.HTTPStatus >= 500 {
					logger.Error("request failed", zap.Error(domainErr))
				}
				c.Status(domainErr.HTTPStatus)
				_ = c.JSON(response)
				err = nil
			}
		}()
		return c.Next()
	}
}
