package model

import (
	"time"

	"github.com/google/uuid"
)

type TopClassModel struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	SportName      string    `gorm:"size:120;not null" json:"sport_name"`
	InstructorName string    `gorm:"size:120" json:"instructor_name"`
	Email          string    `gorm:"size:255;index" json:"email"`
	Picture        string    `gorm:"type:text" json:"picture"`
	Price          float64   `gorm:"type:numeric(12,2);not null;default:0" json:"price"`
	AvailableSeats int       `gorm:"not null;default:0" json:"available_seats"`
	StudentNumber  int       `gorm:"not null;default:0;index" json:"student_number"`
	Status         string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	FeedBack       *string   `gorm:"column:feed_back;type:text" json:"feedBack,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TopClassModel) TableName() string {
	return "top_classes"
}
