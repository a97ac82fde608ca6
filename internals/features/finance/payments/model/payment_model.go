package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusSucceeded = "succeeded"
)

type PaymentModel struct {
	ID            uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Email         string            `gorm:"size:255;not null;index" json:"email"`
	TransactionID string            `gorm:"column:transaction_id;size:255;index" json:"transactionId"`
	Price         float64           `gorm:"type:numeric(12,2);not null;default:0" json:"price"`
	CartItems     pq.StringArray    `gorm:"column:cart_items;type:text[]" json:"cartItem"`
	ClassItems    pq.StringArray    `gorm:"column:class_items;type:text[]" json:"classItems"`
	Status        string            `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Details       datatypes.JSONMap `gorm:"type:jsonb" json:"details,omitempty"`
	CreatedAt     time.Time         `gorm:"autoCreateTime" json:"created_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
