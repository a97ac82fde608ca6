package auth

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"skysports_backend/internals/constants"
)

// RolePolicy picks how a multi-role guard combines its roles.
type RolePolicy string

const (
	// RolePolicyAny passes when the stored role equals any listed role.
	RolePolicyAny RolePolicy = "any"
	// RolePolicyAll passes only when the stored role equals every listed
	// role. With two distinct roles no user can pass, since a record holds
	// exactly one role.
	RolePolicyAll RolePolicy = "all"
)

func ParseRolePolicy(s string) (RolePolicy, error) {
	switch RolePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case RolePolicyAny, "":
		return RolePolicyAny, nil
	case RolePolicyAll:
		return RolePolicyAll, nil
	default:
		return "", fmt.Errorf("unknown role policy %q (want any|all)", s)
	}
}

// Authorize returns a Check that loads the caller's role by the verified
// email claim and applies policy to roles. The email always comes from the
// token, never from request input.
func (g *Gate) Authorize(policy RolePolicy, roles ...string) Check {
	return func(c *fiber.Ctx) (Decision, error) {
		identity, ok := IdentityFrom(c)
		if !ok {
			// mounted without VerifyJWT in front
			return Unauthorized(), nil
		}

		role, found, err := g.roles.RoleByEmail(c.UserContext(), identity.Email)
		if err != nil {
			return Decision{}, fmt.Errorf("resolve role for %s: %w", identity.Email, err)
		}
		if !found || !matches(policy, role, roles) {
			return Forbidden(), nil
		}
		return Proceed(), nil
	}
}

func matches(policy RolePolicy, role string, roles []string) bool {
	if len(roles) == 0 {
		return false
	}
	switch policy {
	case RolePolicyAll:
		for _, r := range roles {
			if role != r {
				return false
			}
		}
		return true
	default:
		for _, r := range roles {
			if role == r {
				return true
			}
		}
		return false
	}
}

func (g *Gate) RequireAnyRole(roles ...string) fiber.Handler {
	return Guard("requireAnyRole", g.Authorize(RolePolicyAny, roles...))
}

func (g *Gate) RequireAllRoles(roles ...string) fiber.Handler {
	return Guard("requireAllRoles", g.Authorize(RolePolicyAll, roles...))
}

// RequireRoles lets configuration decide between any/all.
func (g *Gate) RequireRoles(policy RolePolicy, roles ...string) fiber.Handler {
	return Guard("requireRoles", g.Authorize(policy, roles...))
}

func (g *Gate) RequireAdmin() fiber.Handler {
	return Guard("requireAdmin", g.Authorize(RolePolicyAll, constants.RoleAdmin))
}

func (g *Gate) RequireInstructor() fiber.Handler {
	return Guard("requireInstructor", g.Authorize(RolePolicyAll, constants.RoleInstructor))
}
