package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"skysports_backend/internals/configs"
	database "skysports_backend/internals/databases"
	paymentService "skysports_backend/internals/features/finance/payments/service"
	tokenService "skysports_backend/internals/features/users/auth/service"
	middlewares "skysports_backend/internals/middlewares"
	auth "skysports_backend/internals/middlewares/auth"
	routes "skysports_backend/internals/route"
	"skysports_backend/internals/seeds"
)

func main() {
	configs.SetupLogger(os.Getenv("LOG_LEVEL"))
	configs.LoadEnv()
	configs.SetupLogger(configs.LogLevel)

	// A server that cannot sign tokens must not start.
	tokens, err := tokenService.NewTokenService(configs.JWTSecret)
	if err != nil {
		if errors.Is(err, tokenService.ErrMissingSecret) {
			log.Fatal().Msg("❌ ACCESS_TOKEN_SECRET is required")
		}
		log.Fatal().Err(err).Msg("❌ token service")
	}

	listPolicy, err := auth.ParseRolePolicy(configs.UsersListRolePolicy)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ invalid USERS_LIST_ROLE_POLICY")
	}

	intents, err := paymentService.NewProvider(paymentService.Config{
		Provider:          configs.PaymentProvider,
		StripeKey:         configs.PaymentToken,
		Currency:          configs.PaymentCurrency,
		MidtransServerKey: configs.MidtransServerKey,
		MidtransUseProd:   configs.MidtransUseProd,
	})
	if err != nil {
		log.Fatal().Err(err).Str("provider", configs.PaymentProvider).Msg("❌ payment provider not configured")
	}

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ErrorHandler:            middlewares.ErrorHandler,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	middlewares.SetupMiddlewares(app, configs.CorsAllowOrigins, configs.RequestTimeout)

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()
	if configs.DBAutoMigrate {
		if err := database.AutoMigrate(database.DB); err != nil {
			log.Fatal().Err(err).Msg("❌ migration failed")
		}
	}
	if configs.DBSeed {
		if err := seeds.RunAllSeeds(database.DB, configs.SeedDir); err != nil {
			log.Fatal().Err(err).Msg("❌ seeding failed")
		}
	}

	monitor := database.NewMonitor(database.DB)
	if err := monitor.Start("@every 1m"); err != nil {
		log.Fatal().Err(err).Msg("❌ DB monitor")
	}

	routes.SetupRoutes(app, routes.Deps{
		DB:              database.DB,
		Tokens:          tokens,
		Payments:        intents,
		Currency:        configs.PaymentCurrency,
		UsersListPolicy: listPolicy,
		DBHealthy:       monitor.Healthy,
	})

	// 🔒 Keep-Alive & connection timeouts
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Info().Str("port", configs.Port).Msg("✅ listening")
		if err := app.Listen("0.0.0.0:" + configs.Port); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// graceful shutdown + close DB pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
	monitor.Stop()

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
