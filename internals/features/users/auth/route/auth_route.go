// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	controller "skysports_backend/internals/features/users/auth/controller"
	rateLimiter "skysports_backend/internals/middlewares"
)

func AuthRoutes(app fiber.Router, tokens controller.TokenIssuer) {
	authController := controller.NewAuthController(tokens)

	app.Post("/jwt", rateLimiter.LoginRateLimiter(), authController.IssueToken)
}
