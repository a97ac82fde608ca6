package model

import (
	"time"

	"github.com/google/uuid"

	"skysports_backend/internals/constants"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Name      string    `gorm:"size:120" json:"name"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PhotoURL  string    `gorm:"column:photo_url;type:text" json:"photo,omitempty"`
	Role      string    `gorm:"type:varchar(20);not null;default:''" json:"role,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) IsAdmin() bool      { return u != nil && u.Role == constants.RoleAdmin }
func (u *UserModel) IsInstructor() bool { return u != nil && u.Role == constants.RoleInstructor }
