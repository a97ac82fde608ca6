package route

import (
	"github.com/gofiber/fiber/v2"

	sportController "skysports_backend/internals/features/classes/sports/controller"
)

func SportRoutes(app fiber.Router, sports sportController.SportLister) {
	ctrl := &sportController.SportController{Sports: sports}
	app.Get("/allsports", ctrl.List)
}
