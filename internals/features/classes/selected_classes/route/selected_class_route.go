package route

import (
	"github.com/gofiber/fiber/v2"

	selectedClassController "skysports_backend/internals/features/classes/selected_classes/controller"
)

func SelectedClassRoutes(app fiber.Router, selections selectedClassController.SelectionStore) {
	ctrl := &selectedClassController.SelectedClassController{Selections: selections}

	app.Post("/selectCourse", ctrl.Create)
	app.Get("/selectCourse", ctrl.ListByEmail)
	app.Delete("/selectCourse/:id", ctrl.Delete)
}
