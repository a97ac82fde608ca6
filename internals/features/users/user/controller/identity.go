package controller

import (
	"github.com/gofiber/fiber/v2"

	auth "skysports_backend/internals/middlewares/auth"
)

func authIdentity(c *fiber.Ctx) (string, bool) {
	id, ok := auth.IdentityFrom(c)
	if !ok || id.Email == "" {
		return "", false
	}
	return id.Email, true
}
