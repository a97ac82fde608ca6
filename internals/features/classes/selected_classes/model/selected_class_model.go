package model

import (
	"time"

	"github.com/google/uuid"
)

// SelectedClassModel is one cart line: a class a student picked but has not paid for yet.
type SelectedClassModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	ClassID        *uuid.UUID `gorm:"type:uuid;index" json:"class_id,omitempty"`
	Email          string     `gorm:"size:255;not null;index" json:"email"`
	SportName      string     `gorm:"size:120" json:"sport_name"`
	InstructorName string     `gorm:"size:120" json:"instructor_name"`
	Picture        string     `gorm:"type:text" json:"picture"`
	Price          float64    `gorm:"type:numeric(12,2);not null;default:0" json:"price"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SelectedClassModel) TableName() string {
	return "selected_classes"
}
