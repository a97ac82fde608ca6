package auth

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequireSelf compares the verified email with the :param path value. On a
// mismatch it answers 200 {flag:false} and nothing after it runs, so no
// record of another user is ever looked up.
func RequireSelf(param, flag string) fiber.Handler {
	return Guard("requireSelf", func(c *fiber.Ctx) (Decision, error) {
		identity, ok := IdentityFrom(c)
		if !ok {
			return Unauthorized(), nil
		}
		if !SameEmail(identity.Email, pathValue(c, param)) {
			return Reject(fiber.StatusOK, fiber.Map{flag: false}), nil
		}
		return Proceed(), nil
	})
}

// RequireSelfQuery is RequireSelf for a query string value; a mismatch is 403.
func RequireSelfQuery(key string) fiber.Handler {
	return Guard("requireSelfQuery", func(c *fiber.Ctx) (Decision, error) {
		identity, ok := IdentityFrom(c)
		if !ok {
			return Unauthorized(), nil
		}
		if !SameEmail(identity.Email, c.Query(key)) {
			return Forbidden(), nil
		}
		return Proceed(), nil
	})
}

// SameEmail is an exact comparison after trimming; an empty side never matches.
func SameEmail(a, b string) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	return a != "" && a == b
}

func pathValue(c *fiber.Ctx, param string) string {
	raw := c.Params(param)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
