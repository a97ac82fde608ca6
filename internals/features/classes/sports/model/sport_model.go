package model

import "github.com/google/uuid"

type SportModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Name        string    `gorm:"size:120;not null;uniqueIndex" json:"name"`
	Picture     string    `gorm:"type:text" json:"picture"`
	Description string    `gorm:"type:text" json:"description"`
}

func (SportModel) TableName() string {
	return "all_sports"
}
