package controller

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"skysports_backend/internals/constants"
	"skysports_backend/internals/features/finance/payments/dto"
	"skysports_backend/internals/features/finance/payments/model"
	"skysports_backend/internals/features/finance/payments/service"
	helper "skysports_backend/internals/helpers"
	auth "skysports_backend/internals/middlewares/auth"
)

type PaymentStore interface {
	Create(ctx context.Context, m *model.PaymentModel) error
	ListByEmail(ctx context.Context, email string) ([]model.PaymentModel, error)
}

// CartCleaner drops paid cart lines.
type CartCleaner interface {
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type PaymentController struct {
	Intents  service.IntentProvider
	Payments PaymentStore
	Cart     CartCleaner
	Currency string
}

// POST /create-payment
func (pc *PaymentController) CreatePaymentIntent(c *fiber.Ctx) error {
	var req dto.CreateIntentRequest
	if err := helper.ParseAndValidate(c, &req); err != nil {
		return err
	}
	amount, err := service.ToMinorUnits(req.Price)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var email string
	if id, ok := auth.IdentityFrom(c); ok {
		email = id.Email
	}

	intent, err := pc.Intents.CreateIntent(c.UserContext(), service.IntentRequest{
		Amount:   amount,
		Currency: pc.Currency,
		Email:    email,
		OrderID:  uuid.NewString(),
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) || errors.Is(err, service.ErrUnsupportedCurrency) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}

	log.Info().Str("provider", intent.Provider).Int64("amount", amount).Str("email", email).Msg("payment intent created")
	return c.JSON(dto.CreateIntentResponse{
		ClientSecret: intent.ClientSecret,
		Provider:     intent.Provider,
		RedirectURL:  intent.RedirectURL,
	})
}

// POST /payments stores the payment, then clears the paid cart lines. The two
// writes are not atomic: a failed cleanup leaves the payment recorded.
func (pc *PaymentController) CreatePayment(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := helper.ParseAndValidate(c, &req); err != nil {
		return err
	}
	// Payments are recorded only under the caller's own email, same rule as GET /payments.
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, constants.MsgUnauthorized)
	}
	if !auth.SameEmail(identity.Email, req.Email) {
		return fiber.NewError(fiber.StatusForbidden, constants.MsgForbidden)
	}
	cartIDs, err := helper.ParseUUIDs(req.CartItems)
	if err != nil {
		return err
	}

	m := req.ToModel()
	if err := pc.Payments.Create(c.UserContext(), &m); err != nil {
		return err
	}

	deleted, err := pc.Cart.DeleteMany(c.UserContext(), cartIDs)
	if err != nil {
		log.Error().Err(err).Str("payment_id", m.ID.String()).Int("cart_items", len(cartIDs)).
			Msg("payment stored but cart cleanup failed")
		return err
	}

	log.Info().Str("payment_id", m.ID.String()).Str("email", m.Email).Int64("cart_cleared", deleted).Msg("payment recorded")
	return c.JSON(dto.CreatePaymentResponse{
		InsertResult: helper.Inserted(m.ID),
		DeleteResult: helper.Deleted(deleted),
	})
}

// GET /payments?email=
func (pc *PaymentController) ListByEmail(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		return helper.JsonOK(c, []model.PaymentModel{})
	}
	out, err := pc.Payments.ListByEmail(c.UserContext(), email)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, out)
}
