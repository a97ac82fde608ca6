package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

type StripeProvider struct {
	api      *client.API
	currency string
}

func NewStripeProvider(key, currency string) (*StripeProvider, error) {
	if strings.TrimSpace(key) == "" {
		return nil, ErrMissingKey
	}
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}
	api := &client.API{}
	api.Init(key, nil)
	return &StripeProvider{api: api, currency: strings.ToLower(currency)}, nil
}

func (p *StripeProvider) CreateIntent(ctx context.Context, req IntentRequest) (Intent, error) {
	if req.Amount <= 0 {
		return Intent{}, ErrInvalidAmount
	}
	currency := p.currency
	if req.Currency != "" {
		currency = strings.ToLower(req.Currency)
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(req.Amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	if req.Email != "" {
		params.ReceiptEmail = stripe.String(req.Email)
		params.AddMetadata("email", req.Email)
	}

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return Intent{}, fmt.Errorf("stripe payment intent: %w", err)
	}
	return Intent{ClientSecret: pi.ClientSecret, Provider: ProviderStripe}, nil
}
