package route

import (
	"github.com/gofiber/fiber/v2"

	instructorController "skysports_backend/internals/features/classes/instructors/controller"
)

func InstructorRoutes(app fiber.Router, instructors instructorController.InstructorLister) {
	ctrl := &instructorController.InstructorController{Instructors: instructors}
	app.Get("/instructors", ctrl.List)
}
