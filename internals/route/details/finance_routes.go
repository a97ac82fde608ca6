package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	selectedClassRepository "skysports_backend/internals/features/classes/selected_classes/repository"
	paymentController "skysports_backend/internals/features/finance/payments/controller"
	paymentRepository "skysports_backend/internals/features/finance/payments/repository"
	paymentRoute "skysports_backend/internals/features/finance/payments/route"
	"skysports_backend/internals/features/finance/payments/service"
	auth "skysports_backend/internals/middlewares/auth"
)

func FinanceRoutes(app *fiber.App, db *gorm.DB, gate *auth.Gate, intents service.IntentProvider, currency string) {
	ctrl := &paymentController.PaymentController{
		Intents:  intents,
		Payments: paymentRepository.NewPaymentRepository(db),
		Cart:     selectedClassRepository.NewSelectedClassRepository(db),
		Currency: currency,
	}
	paymentRoute.PaymentRoutes(app, ctrl, gate)
}
