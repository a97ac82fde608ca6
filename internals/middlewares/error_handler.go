package middlewares

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	helper "skysports_backend/internals/helpers"
)

// ErrorHandler is the fiber.Config ErrorHandler. *fiber.Error keeps its status
// and message; every other error is logged and answered with a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		log.Error().
			Err(err).
			Interface("reqid", c.Locals(LocRequestID)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("unhandled request error")
	}
	return helper.FromFiberError(c, err)
}
