package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"skysports_backend/internals/features/users/auth/service"
)

// TokenVerifier validates a raw access token.
type TokenVerifier interface {
	Verify(token string) (service.Identity, error)
}

// RoleLookup resolves the stored role for an email. found is false when no
// user record exists.
type RoleLookup interface {
	RoleByEmail(ctx context.Context, email string) (role string, found bool, err error)
}

// Check is one gate stage. A non-nil error means the stage could not decide
// (e.g. the database is down) and becomes a 500.
type Check func(c *fiber.Ctx) (Decision, error)

// Gate builds route guards from a token verifier and a role lookup.
type Gate struct {
	tokens TokenVerifier
	roles  RoleLookup
}

func NewGate(tokens TokenVerifier, roles RoleLookup) *Gate {
	return &Gate{tokens: tokens, roles: roles}
}

// Guard adapts a Check into a fiber handler. c.Next is only reached on Proceed.
func Guard(name string, check Check) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d, err := check(c)
		if err != nil {
			return err
		}
		if r, rejected := d.Rejected(); rejected {
			log.Debug().
				Str("guard", name).
				Str("path", c.Path()).
				Int("status", r.Status).
				Msg("request rejected")
			return c.Status(r.Status).JSON(r.Body)
		}
		return c.Next()
	}
}
