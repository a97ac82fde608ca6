package route

import (
	"github.com/gofiber/fiber/v2"

	paymentController "skysports_backend/internals/features/finance/payments/controller"
	auth "skysports_backend/internals/middlewares/auth"
)

func PaymentRoutes(app fiber.Router, ctrl *paymentController.PaymentController, gate *auth.Gate) {
	app.Post("/create-payment", gate.VerifyJWT(), ctrl.CreatePaymentIntent)
	app.Post("/payments", gate.VerifyJWT(), ctrl.CreatePayment)
	app.Get("/payments", gate.VerifyJWT(), auth.RequireSelfQuery("email"), ctrl.ListByEmail)
}
