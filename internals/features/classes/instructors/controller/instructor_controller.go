package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"skysports_backend/internals/features/classes/instructors/model"
	helper "skysports_backend/internals/helpers"
)

type InstructorLister interface {
	ListPopular(ctx context.Context) ([]model.InstructorModel, error)
}

type InstructorController struct {
	Instructors InstructorLister
}

// GET /instructors
func (ic *InstructorController) List(c *fiber.Ctx) error {
	out, err := ic.Instructors.ListPopular(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, out)
}
