package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	instructorRepository "skysports_backend/internals/features/classes/instructors/repository"
	instructorRoute "skysports_backend/internals/features/classes/instructors/route"
	selectedClassRepository "skysports_backend/internals/features/classes/selected_classes/repository"
	selectedClassRoute "skysports_backend/internals/features/classes/selected_classes/route"
	sportRepository "skysports_backend/internals/features/classes/sports/repository"
	sportRoute "skysports_backend/internals/features/classes/sports/route"
	topClassRepository "skysports_backend/internals/features/classes/top_classes/repository"
	topClassRoute "skysports_backend/internals/features/classes/top_classes/route"
	auth "skysports_backend/internals/middlewares/auth"
)

func ClassRoutes(app *fiber.App, db *gorm.DB, gate *auth.Gate) {
	topClassRoute.TopClassRoutes(app, topClassRepository.NewTopClassRepository(db), gate)
	instructorRoute.InstructorRoutes(app, instructorRepository.NewInstructorRepository(db))
	sportRoute.SportRoutes(app, sportRepository.NewSportRepository(db))
	selectedClassRoute.SelectedClassRoutes(app, selectedClassRepository.NewSelectedClassRepository(db))
}
