package details

import (
	"github.com/gofiber/fiber/v2"

	userRepository "skysports_backend/internals/features/users/user/repository"
	userRoute "skysports_backend/internals/features/users/user/route"
	auth "skysports_backend/internals/middlewares/auth"
)

func UserRoutes(app *fiber.App, users *userRepository.UserRepository, gate *auth.Gate, listPolicy auth.RolePolicy) {
	userRoute.UserRoutes(app, users, gate, listPolicy)
}
