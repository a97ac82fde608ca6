package route

import (
	"github.com/gofiber/fiber/v2"

	topClassController "skysports_backend/internals/features/classes/top_classes/controller"
	auth "skysports_backend/internals/middlewares/auth"
)

func TopClassRoutes(app fiber.Router, classes topClassController.TopClassStore, gate *auth.Gate) {
	ctrl := topClassController.NewTopClassController(classes)

	app.Post("/topclass", ctrl.Create)
	app.Get("/topclass", ctrl.List)
	app.Get("/topclass/email", ctrl.ListByEmail)
	app.Get("/topclass/:id", ctrl.GetByID)
	app.Put("/topclass/:id", ctrl.Upsert)
	// Approving or denying a submission is an admin action.
	app.Patch("/topclass/:id", gate.VerifyJWT(), gate.RequireAdmin(), ctrl.UpdateStatus)
}
