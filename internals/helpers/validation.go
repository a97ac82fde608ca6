package helper

import (
	"errors"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Validator instance
var validate = validator.New()

// Validate runs struct tags and returns a 400 *fiber.Error listing the bad fields.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, formatValidationError(err))
	}
	return nil
}

// ParseAndValidate decodes the JSON body into dst and validates it.
func ParseAndValidate(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return Validate(dst)
}

// formatValidationError mengubah error validasi menjadi pesan yang lebih jelas
func formatValidationError(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return "invalid input"
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "email":
			msgs = append(msgs, field+" must be a valid email")
		case "gt":
			msgs = append(msgs, field+" must be greater than "+orZero(fe.Param()))
		case "gte", "min":
			msgs = append(msgs, field+" must be at least "+orZero(fe.Param()))
		case "max":
			msgs = append(msgs, field+" must be at most "+fe.Param())
		case "oneof":
			msgs = append(msgs, field+" must be one of "+fe.Param())
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
