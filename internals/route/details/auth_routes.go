package details

import (
	"github.com/gofiber/fiber/v2"

	authRoute "skysports_backend/internals/features/users/auth/route"
	"skysports_backend/internals/features/users/auth/service"
)

func AuthRoutes(app *fiber.App, tokens *service.TokenService) {
	authRoute.AuthRoutes(app, tokens)
}
