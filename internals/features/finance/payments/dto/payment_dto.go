package dto

import (
	"strings"

	"gorm.io/datatypes"

	"skysports_backend/internals/features/finance/payments/model"
	helper "skysports_backend/internals/helpers"
)

// POST /create-payment
type CreateIntentRequest struct {
	Price float64 `json:"price" validate:"gt=0"`
}

type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
	Provider     string `json:"provider,omitempty"`
	RedirectURL  string `json:"redirectUrl,omitempty"`
}

// POST /payments. cartItem holds selected-class ids, classItems the class ids
// they pointed at.
type CreatePaymentRequest struct {
	Email         string         `json:"email" validate:"required,email"`
	TransactionID string         `json:"transactionId" validate:"required"`
	Price         float64        `json:"price" validate:"gte=0"`
	CartItems     []string       `json:"cartItem"`
	ClassItems    []string       `json:"classItems"`
	Status        string         `json:"status"`
	Details       map[string]any `json:"details"`
}

func (r CreatePaymentRequest) ToModel() model.PaymentModel {
	status := strings.TrimSpace(r.Status)
	if status == "" {
		status = model.PaymentStatusSucceeded
	}
	m := model.PaymentModel{
		Email:         strings.TrimSpace(r.Email),
		TransactionID: strings.TrimSpace(r.TransactionID),
		Price:         r.Price,
		CartItems:     append([]string{}, r.CartItems...),
		ClassItems:    append([]string{}, r.ClassItems...),
		Status:        status,
	}
	if len(r.Details) > 0 {
		m.Details = datatypes.JSONMap(r.Details)
	}
	return m
}

type CreatePaymentResponse struct {
	InsertResult helper.InsertResult `json:"insertResult"`
	DeleteResult helper.DeleteResult `json:"deleteResult"`
}
