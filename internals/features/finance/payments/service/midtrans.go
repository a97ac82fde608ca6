package service

import (
	"context"
	"fmt"
	"strings"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

/* =========================================================
   Midtrans Snap
========================================================= */

// MidtransProvider opens Snap transactions. Snap only settles IDR, so the
// token it returns is handed to the client as the client secret.
type MidtransProvider struct {
	snap snap.Client
}

// useProduction=true for Production, false for Sandbox.
func NewMidtransProvider(serverKey string, useProduction bool) (*MidtransProvider, error) {
	if strings.TrimSpace(serverKey) == "" {
		return nil, ErrMissingKey
	}
	p := &MidtransProvider{}
	if useProduction {
		p.snap.New(serverKey, midtrans.Production)
	} else {
		p.snap.New(serverKey, midtrans.Sandbox)
	}
	return p, nil
}

func (p *MidtransProvider) CreateIntent(_ context.Context, req IntentRequest) (Intent, error) {
	snapReq, err := buildSnapRequest(req)
	if err != nil {
		return Intent{}, err
	}
	resp, mErr := p.snap.CreateTransaction(snapReq)
	if mErr != nil {
		return Intent{}, fmt.Errorf("midtrans snap: %w", mErr)
	}
	return Intent{ClientSecret: resp.Token, Provider: ProviderMidtrans, RedirectURL: resp.RedirectURL}, nil
}

func buildSnapRequest(req IntentRequest) (*snap.Request, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if c := strings.ToLower(req.Currency); c != "" && c != "idr" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, c)
	}
	if req.OrderID == "" {
		return nil, fmt.Errorf("midtrans: order id is required")
	}

	// Snap takes whole rupiah.
	gross := req.Amount / 100
	if gross <= 0 {
		return nil, ErrInvalidAmount
	}

	r := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: gross,
		},
		CreditCard: &snap.CreditCardDetails{Secure: true},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       req.OrderID,
				Price:    gross,
				Qty:      1,
				Name:     "Sports class",
				Category: "class",
			},
		},
	}
	if req.Email != "" {
		r.CustomerDetail = &midtrans.CustomerDetails{Email: req.Email}
	}
	return r, nil
}
