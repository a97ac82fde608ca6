package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"skysports_backend/internals/constants"
)

// ErrorBody is the only error shape this API sends.
type ErrorBody struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// JsonError writes {error:true,message} with the given status.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		if status >= fiber.StatusInternalServerError {
			message = constants.MsgInternal
		} else {
			message = fiber.ErrBadRequest.Message
		}
	}
	return c.Status(status).JSON(ErrorBody{Error: true, Message: message})
}

// FromFiberError turns *fiber.Error into the standard error body; anything
// else becomes a generic 500 so internals never reach the client.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, constants.MsgInternal)
}

// JsonOK sends data as-is with 200. A nil pointer renders as JSON null,
// matching what clients get for a missing single document.
func JsonOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}
