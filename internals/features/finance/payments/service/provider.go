package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	ProviderStripe   = "stripe"
	ProviderMidtrans = "midtrans"
)

var (
	ErrInvalidAmount       = errors.New("payment amount must be positive")
	ErrMissingKey          = errors.New("payment provider key is not configured")
	ErrUnsupportedCurrency = errors.New("currency not supported by payment provider")
	ErrUnknownProvider     = errors.New("unknown payment provider")
)

// IntentRequest asks a provider to open a payment. Amount is in the smallest
// currency unit (cents for usd).
type IntentRequest struct {
	Amount   int64
	Currency string
	Email    string
	OrderID  string
}

// Intent is what the client needs to finish paying.
type Intent struct {
	ClientSecret string
	Provider     string
	RedirectURL  string
}

type IntentProvider interface {
	CreateIntent(ctx context.Context, req IntentRequest) (Intent, error)
}

// ToMinorUnits converts a price in major units to the smallest unit.
func ToMinorUnits(price float64) (int64, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, ErrInvalidAmount
	}
	return int64(math.Round(price * 100)), nil
}

// Config selects and configures a provider.
type Config struct {
	Provider          string
	StripeKey         string
	Currency          string
	MidtransServerKey string
	MidtransUseProd   bool
}

// NewProvider builds the provider named by cfg.Provider.
func NewProvider(cfg Config) (IntentProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", ProviderStripe:
		return NewStripeProvider(cfg.StripeKey, cfg.Currency)
	case ProviderMidtrans:
		// Snap refuses anything but IDR; fail at startup, not on every checkout.
		if c := strings.ToLower(strings.TrimSpace(cfg.Currency)); c != "" && c != "idr" {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, c)
		}
		return NewMidtransProvider(cfg.MidtransServerKey, cfg.MidtransUseProd)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
