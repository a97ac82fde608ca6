package controller

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"skysports_backend/internals/features/classes/selected_classes/dto"
	"skysports_backend/internals/features/classes/selected_classes/model"
	helper "skysports_backend/internals/helpers"
)

type SelectionStore interface {
	Create(ctx context.Context, m *model.SelectedClassModel) error
	ListByEmail(ctx context.Context, email string) ([]model.SelectedClassModel, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type SelectedClassController struct {
	Selections SelectionStore
}

// POST /selectCourse
func (sc *SelectedClassController) Create(c *fiber.Ctx) error {
	var req dto.SelectClassRequest
	if err := helper.ParseAndValidate(c, &req); err != nil {
		return err
	}
	m := req.ToModel()
	if err := sc.Selections.Create(c.UserContext(), &m); err != nil {
		return err
	}
	return helper.JsonCreated(c, m.ID)
}

// GET /selectCourse?email=
func (sc *SelectedClassController) ListByEmail(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		return helper.JsonOK(c, []model.SelectedClassModel{})
	}
	out, err := sc.Selections.ListByEmail(c.UserContext(), email)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, out)
}

// DELETE /selectCourse/:id
func (sc *SelectedClassController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	n, err := sc.Selections.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, helper.Deleted(n))
}
