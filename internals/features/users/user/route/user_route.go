package route

import (
	"github.com/gofiber/fiber/v2"

	"skysports_backend/internals/constants"
	userController "skysports_backend/internals/features/users/user/controller"
	auth "skysports_backend/internals/middlewares/auth"
)

// UserRoutes mounts the user endpoints on the app root. listPolicy decides
// whether GET /users needs admin OR instructor ("any") or both ("all").
func UserRoutes(app fiber.Router, users userController.UserStore, gate *auth.Gate, listPolicy auth.RolePolicy) {
	ctrl := userController.NewUserController(users)

	app.Get("/users",
		gate.VerifyJWT(),
		gate.RequireRoles(listPolicy, constants.StaffRoles...),
		ctrl.GetUsers,
	)
	app.Get("/alluser", ctrl.GetUsers)
	app.Get("/user", ctrl.FindUser)

	// Self checks are registered before /users/:id so the literal segments win.
	app.Get("/users/instructor/:email", gate.VerifyJWT(), auth.RequireSelf("email", constants.RoleInstructor), ctrl.IsInstructor)
	app.Get("/users/admin/:email", gate.VerifyJWT(), auth.RequireSelf("email", constants.RoleAdmin), ctrl.IsAdmin)

	app.Get("/users/:id", ctrl.GetUserByID)
	app.Post("/users", ctrl.CreateUser)
	app.Patch("/users/:id", gate.VerifyJWT(), gate.RequireAdmin(), ctrl.UpdateRole)
}
