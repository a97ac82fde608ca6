package dto

import (
	"strings"

	"github.com/google/uuid"

	"skysports_backend/internals/features/classes/selected_classes/model"
)

type SelectClassRequest struct {
	ClassID        *uuid.UUID `json:"class_id"`
	Email          string     `json:"email" validate:"required,email"`
	SportName      string     `json:"sport_name" validate:"max=120"`
	InstructorName string     `json:"instructor_name" validate:"max=120"`
	Picture        string     `json:"picture"`
	Price          float64    `json:"price" validate:"gte=0"`
}

func (r SelectClassRequest) ToModel() model.SelectedClassModel {
	return model.SelectedClassModel{
		ClassID:        r.ClassID,
		Email:          strings.TrimSpace(r.Email),
		SportName:      strings.TrimSpace(r.SportName),
		InstructorName: strings.TrimSpace(r.InstructorName),
		Picture:        strings.TrimSpace(r.Picture),
		Price:          r.Price,
	}
}
