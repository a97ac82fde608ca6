package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"skysports_backend/internals/features/finance/payments/service"
	tokenService "skysports_backend/internals/features/users/auth/service"
	userRepository "skysports_backend/internals/features/users/user/repository"
	auth "skysports_backend/internals/middlewares/auth"
	routeDetails "skysports_backend/internals/route/details"
)

var startTime time.Time

type Deps struct {
	DB              *gorm.DB
	Tokens          *tokenService.TokenService
	Payments        service.IntentProvider
	Currency        string
	UsersListPolicy auth.RolePolicy
	DBHealthy       func() bool
}

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()

	users := userRepository.NewUserRepository(d.DB)
	// Every role check resolves against the users table.
	gate := auth.NewGate(d.Tokens, users)

	log.Info().Msg("setting up base routes")
	BaseRoutes(app, d.DBHealthy)

	log.Info().Msg("setting up auth routes")
	routeDetails.AuthRoutes(app, d.Tokens)

	log.Info().Str("users_list_policy", string(d.UsersListPolicy)).Msg("setting up user routes")
	routeDetails.UserRoutes(app, users, gate, d.UsersListPolicy)

	log.Info().Msg("setting up class routes")
	routeDetails.ClassRoutes(app, d.DB, gate)

	log.Info().Msg("setting up finance routes")
	routeDetails.FinanceRoutes(app, d.DB, gate, d.Payments, d.Currency)
}
