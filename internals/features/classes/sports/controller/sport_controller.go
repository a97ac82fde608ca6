package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"skysports_backend/internals/features/classes/sports/model"
	helper "skysports_backend/internals/helpers"
)

type SportLister interface {
	List(ctx context.Context) ([]model.SportModel, error)
}

type SportController struct {
	Sports SportLister
}

// GET /allsports
func (sc *SportController) List(c *fiber.Ctx) error {
	out, err := sc.Sports.List(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, out)
}
