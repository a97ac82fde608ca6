// internals/middlewares/auth/claims_utils.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"skysports_backend/internals/features/users/auth/service"
)

// LocDecoded is the Locals key holding the verified service.Identity.
const LocDecoded = "decoded"

// extractToken returns the second field of "<scheme> <token>". The scheme is
// not checked; clients send both "Bearer" and "bearer".
func extractToken(header string) (string, bool) {
	fields := strings.Fields(header)
	if len(fields) < 2 {
		return "", false
	}
	tok := strings.TrimSpace(fields[1])
	return tok, tok != ""
}

// IdentityFrom returns the identity VerifyJWT attached to this request.
func IdentityFrom(c *fiber.Ctx) (service.Identity, bool) {
	id, ok := c.Locals(LocDecoded).(service.Identity)
	return id, ok
}
