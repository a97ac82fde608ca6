package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"skysports_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the app-wide chain in order: panic recovery,
// request id/timeout, access log, CORS, compression, etag, global limiter.
func SetupMiddlewares(app *fiber.App, corsOrigins string, requestTimeout time.Duration) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestContext(requestTimeout))
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware(corsOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(GlobalRateLimiter())
}
