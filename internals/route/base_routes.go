package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

// BaseRoutes mounts the liveness endpoints. dbHealthy may be nil when no
// monitor runs; the database is then reported as unknown.
func BaseRoutes(app *fiber.App, dbHealthy func() bool) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("HELLO Word")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	app.Get("/health/db", func(c *fiber.Ctx) error {
		dbStatus := "unknown"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if dbHealthy != nil {
			if dbHealthy() {
				dbStatus = "connected"
			} else {
				dbStatus = "database connection error"
				serverStatus = "DOWN"
				httpStatus = fiber.StatusServiceUnavailable
			}
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})
}
