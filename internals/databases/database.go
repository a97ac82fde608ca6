package database

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"skysports_backend/internals/configs"
)

var DB *gorm.DB

func ConnectDB() {
	log.Info().Msg("🔌 connecting to PostgreSQL...")

	db, err := Open(configs.DatabaseDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("❌ database connection failed")
	}
	DB = db
	log.Info().Msg("✅ DB connected")
}

// Open dials Postgres with the app's GORM settings. TranslateError maps unique
// violations to gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // PgBouncer transaction pooling
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true,
	})
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Warn().Err(err).Msg("pool tune skipped")
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		ctx, cancel := context.WithTimeout(context.Background(), DefaultPingTimeout)
		defer cancel()
		if err := Ping(ctx, DB); err != nil {
			log.Warn().Err(err).Msg("warm-up ping failed")
		}
	}()
}

const DefaultPingTimeout = 3 * time.Second

// Ping checks the pool; ctx bounds how long a hung connection may block.
func Ping(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return gorm.ErrInvalidDB
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
