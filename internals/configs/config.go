package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var (
	Port                string
	JWTSecret           string
	PaymentProvider     string
	PaymentToken        string
	PaymentCurrency     string
	MidtransServerKey   string
	MidtransUseProd     bool
	UsersListRolePolicy string
	RequestTimeout      time.Duration
	LogLevel            string
	CorsAllowOrigins    string
	DBAutoMigrate       bool
	DBSeed              bool
	SeedDir             string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Warn().Msg("no .env file found, using system environment")
		} else {
			log.Info().Msg(".env file loaded")
		}
	} else {
		log.Info().Msg("running on Railway, using system environment")
	}

	Port = GetEnv("PORT", "5000")
	// ACCESS_TOKEN_SECRET is the name the web client deployments already use.
	JWTSecret = GetEnv("ACCESS_TOKEN_SECRET", GetEnv("JWT_SECRET"))
	PaymentProvider = strings.ToLower(GetEnv("PAYMENT_PROVIDER", "stripe"))
	PaymentToken = GetEnv("PAYMENT_TOKEN")
	PaymentCurrency = strings.ToLower(GetEnv("PAYMENT_CURRENCY", DefaultCurrency(PaymentProvider)))
	MidtransServerKey = GetEnv("MIDTRANS_SERVER_KEY")
	MidtransUseProd = GetBool("MIDTRANS_USE_PROD", false)
	UsersListRolePolicy = strings.ToLower(GetEnv("USERS_LIST_ROLE_POLICY", "any"))
	RequestTimeout = GetDuration("HTTP_REQUEST_TIMEOUT", 5*time.Second)
	LogLevel = GetEnv("LOG_LEVEL", "info")
	CorsAllowOrigins = GetEnv("CORS_ALLOW_ORIGINS", "*")
	DBAutoMigrate = GetBool("DB_AUTO_MIGRATE", false)
	DBSeed = GetBool("DB_SEED", false)
	SeedDir = GetEnv("SEED_DIR", "internals/seeds/data")

	if JWTSecret == "" {
		log.Error().Msg("❌ ACCESS_TOKEN_SECRET is not set")
	} else {
		log.Info().Msg("✅ ACCESS_TOKEN_SECRET loaded")
	}
}

// DefaultCurrency is the settlement currency a provider works in when
// PAYMENT_CURRENCY is unset. Midtrans settles only in rupiah.
func DefaultCurrency(provider string) string {
	if strings.EqualFold(strings.TrimSpace(provider), "midtrans") {
		return "idr"
	}
	return "usd"
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetBool(key string, defaultValue bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Warn().Str("key", key).Str("value", raw).Msg("invalid boolean, using default")
		return defaultValue
	}
	return v
}

// GetDuration accepts Go duration strings ("5s") or a bare number of seconds.
func GetDuration(key string, defaultValue time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Warn().Str("key", key).Str("value", raw).Msg("invalid duration, using default")
	return defaultValue
}

// =======================
// DATABASE DSN
// =======================
func DatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=skysports&options=-c statement_timeout=3000",
		GetEnv("DB_USER"),
		GetEnv("DB_PASSWORD"),
		GetEnv("DB_HOST", "localhost"),
		GetEnv("DB_PORT", "5432"),
		GetEnv("DB_NAME", "sky"),
		GetEnv("DB_SSLMODE", "require"),
	)
}
