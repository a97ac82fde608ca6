// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Authenticate verifies the Authorization header and attaches the decoded
// identity under LocDecoded.
func (g *Gate) Authenticate(c *fiber.Ctx) (Decision, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return Unauthorized(), nil
	}
	token, ok := extractToken(header)
	if !ok {
		return Unauthorized(), nil
	}

	identity, err := g.tokens.Verify(token)
	if err != nil {
		log.Debug().Err(err).Str("path", c.Path()).Msg("token verification failed")
		return Unauthorized(), nil
	}

	c.Locals(LocDecoded, identity)
	return Proceed(), nil
}

// VerifyJWT is the first stage of every protected route.
func (g *Gate) VerifyJWT() fiber.Handler {
	return Guard("verifyJWT", g.Authenticate)
}
