package dto

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"skysports_backend/internals/constants"
	"skysports_backend/internals/features/classes/top_classes/model"
)

// POST /topclass
type CreateTopClassRequest struct {
	SportName      string  `json:"sport_name" validate:"required,max=120"`
	InstructorName string  `json:"instructor_name" validate:"max=120"`
	Email          string  `json:"email" validate:"required,email"`
	Picture        string  `json:"picture"`
	Price          float64 `json:"price" validate:"gte=0"`
	AvailableSeats int     `json:"available_seats" validate:"gte=0"`
	StudentNumber  int     `json:"student_number" validate:"gte=0"`
}

func (r CreateTopClassRequest) ToModel() model.TopClassModel {
	return model.TopClassModel{
		SportName:      strings.TrimSpace(r.SportName),
		InstructorName: strings.TrimSpace(r.InstructorName),
		Email:          strings.TrimSpace(r.Email),
		Picture:        strings.TrimSpace(r.Picture),
		Price:          r.Price,
		AvailableSeats: r.AvailableSeats,
		StudentNumber:  r.StudentNumber,
		Status:         constants.ClassStatusPending,
	}
}

// PUT /topclass/:id. Only these four fields are written.
type UpsertTopClassRequest struct {
	SportName      string  `json:"sport_name" validate:"required,max=120"`
	AvailableSeats int     `json:"available_seats" validate:"gte=0"`
	Price          float64 `json:"price" validate:"gte=0"`
	Picture        string  `json:"picture"`
}

func (r UpsertTopClassRequest) Fields() map[string]any {
	return map[string]any{
		"sport_name":      strings.TrimSpace(r.SportName),
		"available_seats": r.AvailableSeats,
		"price":           r.Price,
		"picture":         strings.TrimSpace(r.Picture),
	}
}

// PATCH /topclass/:id
type UpdateStatusRequest struct {
	Status   string  `json:"status" validate:"required"`
	FeedBack *string `json:"feedBack"`
}

// Normalize trims the status and checks it against the known review states.
func (r *UpdateStatusRequest) Normalize() error {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	if !constants.IsClassStatus(r.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "Status must be one of "+strings.Join(constants.ClassStatuses, " "))
	}
	return nil
}
