package auth

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skysports_backend/internals/features/users/auth/service"
	helper "skysports_backend/internals/helpers"
)

const testSecret = "test-secret"

type fakeRoles struct {
	mu    sync.Mutex
	roles map[string]string
	err   error
	calls int
}

func (f *fakeRoles) RoleByEmail(_ context.Context, email string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return "", false, f.err
	}
	role, ok := f.roles[email]
	return role, ok, nil
}

func (f *fakeRoles) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTokens(t *testing.T) *service.TokenService {
	t.Helper()
	s, err := service.NewTokenService(testSecret)
	require.NoError(t, err)
	return s
}

func issue(t *testing.T, s *service.TokenService, email string) string {
	t.Helper()
	tok, err := s.Issue(map[string]any{"email": email})
	require.NoError(t, err)
	return tok
}

func newApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error { return helper.FromFiberError(c, err) },
	})
}

func reached(c *fiber.Ctx) error {
	id, _ := IdentityFrom(c)
	return c.JSON(fiber.Map{"ok": true, "email": id.Email})
}

func do(t *testing.T, app *fiber.App, path, authHeader string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

var (
	unauthorizedBody = map[string]any{"error": true, "message": "unauthorized access"}
	forbiddenBody    = map[string]any{"error": true, "message": "forbidden message"}
)

func TestVerifyJWT_RejectsBeforeRoleLookup(t *testing.T) {
	tokens := newTokens(t)
	roles := &fakeRoles{roles: map[string]string{"admin@x.com": "admin"}}
	gate := NewGate(tokens, roles)

	app := newApp()
	app.Get("/admin", gate.VerifyJWT(), gate.RequireAdmin(), reached)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "admin@x.com",
		"exp":   time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	other, err := service.NewTokenService("other-secret")
	require.NoError(t, err)

	cases := map[string]string{
		"missing header": "",
		"scheme only":    "Bearer",
		"garbage token":  "Bearer not.a.jwt",
		"expired token":  "Bearer " + expired,
		"foreign secret": "Bearer " + issue(t, other, "admin@x.com"),
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			status, body := do(t, app, "/admin", header)
			assert.Equal(t, fiber.StatusUnauthorized, status)
			assert.Equal(t, unauthorizedBody, body)
		})
	}
	assert.Zero(t, roles.Calls())
}

func TestVerifyJWT_SchemeIsNotValidated(t *testing.T) {
	tokens := newTokens(t)
	gate := NewGate(tokens, &fakeRoles{})

	app := newApp()
	app.Get("/me", gate.VerifyJWT(), reached)

	status, body := do(t, app, "/me", "Token "+issue(t, tokens, "a@b.com"))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "a@b.com", body["email"])
}

func TestRequireAdmin(t *testing.T) {
	tokens := newTokens(t)
	roles := &fakeRoles{roles: map[string]string{
		"admin@x.com":      "admin",
		"instructor@x.com": "instructor",
		"member@x.com":     "",
	}}
	gate := NewGate(tokens, roles)

	app := newApp()
	app.Get("/admin", gate.VerifyJWT(), gate.RequireAdmin(), reached)

	status, body := do(t, app, "/admin", "Bearer "+issue(t, tokens, "admin@x.com"))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["ok"])

	for _, email := range []string{"instructor@x.com", "member@x.com", "ghost@x.com"} {
		t.Run(email, func(t *testing.T) {
			status, body := do(t, app, "/admin", "Bearer "+issue(t, tokens, email))
			assert.Equal(t, fiber.StatusForbidden, status)
			assert.Equal(t, forbiddenBody, body)
		})
	}
}

func TestRequireInstructor(t *testing.T) {
	tokens := newTokens(t)
	gate := NewGate(tokens, &fakeRoles{roles: map[string]string{
		"admin@x.com":      "admin",
		"instructor@x.com": "instructor",
	}})

	app := newApp()
	app.Get("/teach", gate.VerifyJWT(), gate.RequireInstructor(), reached)

	status, _ := do(t, app, "/teach", "Bearer "+issue(t, tokens, "instructor@x.com"))
	assert.Equal(t, fiber.StatusOK, status)

	status, body := do(t, app, "/teach", "Bearer "+issue(t, tokens, "admin@x.com"))
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, forbiddenBody, body)
}

// Chaining two single-role guards means AND: nobody holds two roles at once.
func TestChainedAdminAndInstructor_LocksEveryoneOut(t *testing.T) {
	tokens := newTokens(t)
	gate := NewGate(tokens, &fakeRoles{roles: map[string]string{
		"admin@x.com":      "admin",
		"instructor@x.com": "instructor",
	}})

	app := newApp()
	app.Get("/chained", gate.VerifyJWT(), gate.RequireAdmin(), gate.RequireInstructor(), reached)
	app.Get("/all", gate.VerifyJWT(), gate.RequireAllRoles("admin", "instructor"), reached)
	app.Get("/any", gate.VerifyJWT(), gate.RequireAnyRole("admin", "instructor"), reached)

	for _, email := range []string{"admin@x.com", "instructor@x.com"} {
		tok := "Bearer " + issue(t, tokens, email)

		status, body := do(t, app, "/chained", tok)
		assert.Equal(t, fiber.StatusForbidden, status, email)
		assert.Equal(t, forbiddenBody, body)

		status, _ = do(t, app, "/all", tok)
		assert.Equal(t, fiber.StatusForbidden, status, email)

		status, _ = do(t, app, "/any", tok)
		assert.Equal(t, fiber.StatusOK, status, email)
	}
}

func TestRequireRoles_PolicyFromConfig(t *testing.T) {
	tokens := newTokens(t)
	gate := NewGate(tokens, &fakeRoles{roles: map[string]string{"admin@x.com": "admin"}})
	tok := "Bearer " + issue(t, tokens, "admin@x.com")

	anyPolicy, err := ParseRolePolicy("ANY")
	require.NoError(t, err)
	allPolicy, err := ParseRolePolicy("all")
	require.NoError(t, err)

	app := newApp()
	app.Get("/any", gate.VerifyJWT(), gate.RequireRoles(anyPolicy, "admin", "instructor"), reached)
	app.Get("/all", gate.VerifyJWT(), gate.RequireRoles(allPolicy, "admin", "instructor"), reached)

	status, _ := do(t, app, "/any", tok)
	assert.Equal(t, fiber.StatusOK, status)
	status, _ = do(t, app, "/all", tok)
	assert.Equal(t, fiber.StatusForbidden, status)

	_, err = ParseRolePolicy("either")
	assert.Error(t, err)
}

func TestRoleGuard_WithoutVerifyJWTIsUnauthorized(t *testing.T) {
	roles := &fakeRoles{roles: map[string]string{"admin@x.com": "admin"}}
	gate := NewGate(newTokens(t), roles)

	app := newApp()
	app.Get("/admin", gate.RequireAdmin(), reached)

	status, body := do(t, app, "/admin", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, unauthorizedBody, body)
	assert.Zero(t, roles.Calls())
}

func TestRoleGuard_LookupFailureIs500(t *testing.T) {
	tokens := newTokens(t)
	gate := NewGate(tokens, &fakeRoles{err: errors.New("connection refused")})

	app := newApp()
	app.Get("/admin", gate.VerifyJWT(), gate.RequireAdmin(), reached)

	status, body := do(t, app, "/admin", "Bearer "+issue(t, tokens, "admin@x.com"))
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, map[string]any{"error": true, "message": "internal server error"}, body)
}

func TestDecision_ZeroValueProceeds(t *testing.T) {
	_, rejected := Decision{}.Rejected()
	assert.False(t, rejected)

	r, rejected := Forbidden().Rejected()
	require.True(t, rejected)
	assert.Equal(t, fiber.StatusForbidden, r.Status)
}
