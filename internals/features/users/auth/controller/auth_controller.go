package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"skysports_backend/internals/features/users/auth/dto"
	helper "skysports_backend/internals/helpers"
)

// TokenIssuer mints access tokens for an identity payload.
type TokenIssuer interface {
	Issue(payload map[string]any) (string, error)
}

type AuthController struct {
	Tokens TokenIssuer
}

func NewAuthController(tokens TokenIssuer) *AuthController {
	return &AuthController{Tokens: tokens}
}

// POST /jwt
func (ac *AuthController) IssueToken(c *fiber.Ctx) error {
	var req dto.IssueTokenRequest
	if err := helper.ParseAndValidate(c, &req); err != nil {
		return err
	}

	payload := map[string]any{}
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	token, err := ac.Tokens.Issue(payload)
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("issue access token")
		return err
	}
	return c.JSON(dto.IssueTokenResponse{Token: token})
}
