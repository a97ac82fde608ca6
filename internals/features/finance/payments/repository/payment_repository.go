package repository

import (
	"context"

	"gorm.io/gorm"

	"skysports_backend/internals/features/finance/payments/model"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(ctx context.Context, m *model.PaymentModel) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

// ListByEmail returns the newest payments first.
func (r *PaymentRepository) ListByEmail(ctx context.Context, email string) ([]model.PaymentModel, error) {
	out := []model.PaymentModel{}
	err := r.DB.WithContext(ctx).Where("email = ?", email).Order("created_at DESC").Find(&out).Error
	return out, err
}
