package dto

import (
	"strings"

	"skysports_backend/internals/features/users/user/model"
)

// CreateUserRequest is the sign-up payload. Role is never taken from it.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"max=120"`
	Email    string `json:"email" validate:"required,email"`
	PhotoURL string `json:"photo"`
}

func (r CreateUserRequest) ToModel() model.UserModel {
	return model.UserModel{
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.TrimSpace(r.Email),
		PhotoURL: strings.TrimSpace(r.PhotoURL),
	}
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin instructor user"`
}

// UserFilter is the whitelist GET /user accepts as query params.
type UserFilter struct {
	Email string `query:"email"`
	Name  string `query:"name"`
	Role  string `query:"role"`
}

type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}

type InstructorCheckResponse struct {
	Instructor bool `json:"instructor"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
