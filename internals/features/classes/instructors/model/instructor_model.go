package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type InstructorModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Name      string         `gorm:"size:120;not null" json:"name"`
	Email     string         `gorm:"size:255;index" json:"email"`
	Picture   string         `gorm:"type:text" json:"picture"`
	Students  int            `gorm:"not null;default:0;index" json:"students"`
	Classes   pq.StringArray `gorm:"type:text[]" json:"classes"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (InstructorModel) TableName() string {
	return "instructors"
}
