package route

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skysports_backend/internals/features/users/auth/service"
	"skysports_backend/internals/features/users/user/dto"
	"skysports_backend/internals/features/users/user/model"
	"skysports_backend/internals/features/users/user/repository"
	"skysports_backend/internals/middlewares"
	auth "skysports_backend/internals/middlewares/auth"
)

// memUsers is an in-memory UserStore that also serves as the gate's role lookup.
type memUsers struct {
	mu          sync.Mutex
	byEmail     map[string]*model.UserModel
	emailLookup int
	raceOnSave  bool
}

func newMemUsers(users ...model.UserModel) *memUsers {
	m := &memUsers{byEmail: map[string]*model.UserModel{}}
	for i := range users {
		u := users[i]
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
		m.byEmail[u.Email] = &u
	}
	return m
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*model.UserModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emailLookup++
	if u, ok := m.byEmail[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (m *memUsers) FindByID(_ context.Context, id uuid.UUID) (*model.UserModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUsers) FindOne(_ context.Context, f dto.UserFilter) (*model.UserModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byEmail {
		if (f.Email == "" || u.Email == f.Email) && (f.Name == "" || u.Name == f.Name) && (f.Role == "" || u.Role == f.Role) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUsers) List(_ context.Context) ([]model.UserModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.UserModel, 0, len(m.byEmail))
	for _, u := range m.byEmail {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memUsers) Create(_ context.Context, u *model.UserModel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.raceOnSave {
		return repository.ErrEmailTaken
	}
	u.ID = uuid.New()
	cp := *u
	m.byEmail[u.Email] = &cp
	return nil
}

func (m *memUsers) UpdateRole(_ context.Context, id uuid.UUID, role string) (int64, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byEmail {
		if u.ID == id {
			if u.Role == role {
				return 1, 0, nil
			}
			u.Role = role
			return 1, 1, nil
		}
	}
	return 0, 0, nil
}

func (m *memUsers) RoleByEmail(_ context.Context, email string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byEmail[email]
	if !ok {
		return "", false, nil
	}
	return u.Role, true, nil
}

func (m *memUsers) EmailLookups() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.emailLookup
}

type harness struct {
	app    *fiber.App
	users  *memUsers
	tokens *service.TokenService
}

func newHarness(t *testing.T, policy auth.RolePolicy, users *memUsers) *harness {
	t.Helper()
	tokens, err := service.NewTokenService("route-secret")
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: middlewares.ErrorHandler})
	UserRoutes(app, users, auth.NewGate(tokens, users), policy)
	return &harness{app: app, users: users, tokens: tokens}
}

func (h *harness) bearer(t *testing.T, email string) string {
	t.Helper()
	tok, err := h.tokens.Issue(map[string]any{"email": email})
	require.NoError(t, err)
	return "Bearer " + tok
}

func (h *harness) do(t *testing.T, method, path, authz, body string) (int, string) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	resp, err := h.app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func seedUsers() *memUsers {
	return newMemUsers(
		model.UserModel{Email: "admin@x.com", Role: "admin", Name: "Ada"},
		model.UserModel{Email: "coach@x.com", Role: "instructor", Name: "Cole"},
		model.UserModel{Email: "kid@x.com", Name: "Kim"},
	)
}

func TestUsersList_Guarded(t *testing.T) {
	h := newHarness(t, auth.RolePolicyAny, seedUsers())

	status, body := h.do(t, "GET", "/users", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.JSONEq(t, `{"error":true,"message":"unauthorized access"}`, body)

	status, body = h.do(t, "GET", "/users", h.bearer(t, "kid@x.com"), "")
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.JSONEq(t, `{"error":true,"message":"forbidden message"}`, body)

	for _, email := range []string{"admin@x.com", "coach@x.com"} {
		status, body = h.do(t, "GET", "/users", h.bearer(t, email), "")
		assert.Equal(t, fiber.StatusOK, status, email)
		var list []map[string]any
		require.NoError(t, json.Unmarshal([]byte(body), &list))
		assert.Len(t, list, 3)
	}
}

func TestUsersList_AllPolicyLocksOut(t *testing.T) {
	h := newHarness(t, auth.RolePolicyAll, seedUsers())

	for _, email := range []string{"admin@x.com", "coach@x.com"} {
		status, _ := h.do(t, "GET", "/users", h.bearer(t, email), "")
		assert.Equal(t, fiber.StatusForbidden, status, email)
	}
}

func TestSelfChecks(t *testing.T) {
	h := newHarness(t, auth.RolePolicyAny, seedUsers())

	status, body := h.do(t, "GET", "/users/admin/admin@x.com", h.bearer(t, "admin@x.com"), "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"admin":true}`, body)

	status, body = h.do(t, "GET", "/users/instructor/coach@x.com", h.bearer(t, "coach@x.com"), "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"instructor":true}`, body)

	status, body = h.do(t, "GET", "/users/admin/kid@x.com", h.bearer(t, "kid@x.com"), "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"admin":false}`, body)
}

func TestSelfCheck_MismatchSkipsLookup(t *testing.T) {
	users := newMemUsers(model.UserModel{Email: "z@y.com", Role: "admin"})
	h := newHarness(t, auth.RolePolicyAny, users)

	status, body := h.do(t, "GET", "/users/admin/z@y.com", h.bearer(t, "x@y.com"), "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"admin":false}`, body)

	status, body = h.do(t, "GET", "/users/instructor/z@y.com", h.bearer(t, "x@y.com"), "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"instructor":false}`, body)

	assert.Zero(t, users.EmailLookups())
}

func TestCreateUser(t *testing.T) {
	users := seedUsers()
	h := newHarness(t, auth.RolePolicyAny, users)

	status, body := h.do(t, "POST", "/users", "", `{"name":"New","email":"new@x.com","role":"admin"}`)
	require.Equal(t, fiber.StatusOK, status)
	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &res))
	assert.Equal(t, true, res["acknowledged"])
	assert.NotEmpty(t, res["insertedId"])

	role, found, err := users.RoleByEmail(context.Background(), "new@x.com")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, role, "role must not be settable at sign-up")

	status, body = h.do(t, "POST", "/users", "", `{"email":"admin@x.com"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"message":"already exist"}`, body)

	status, _ = h.do(t, "POST", "/users", "", `{"email":"not-an-email"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestCreateUser_RaceReportsAlreadyExist(t *testing.T) {
	users := seedUsers()
	users.raceOnSave = true
	h := newHarness(t, auth.RolePolicyAny, users)

	status, body := h.do(t, "POST", "/users", "", `{"email":"late@x.com"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"message":"already exist"}`, body)
}

func TestGetUserByIDAndFilter(t *testing.T) {
	users := seedUsers()
	h := newHarness(t, auth.RolePolicyAny, users)
	kid, _ := users.FindByEmail(context.Background(), "kid@x.com")

	status, body := h.do(t, "GET", "/users/"+kid.ID.String(), "", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"email":"kid@x.com"`)

	status, body = h.do(t, "GET", "/users/"+uuid.NewString(), "", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "null", body)

	status, _ = h.do(t, "GET", "/users/64b7f0c0ffee", "", "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body = h.do(t, "GET", "/user?role=instructor", "", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"email":"coach@x.com"`)
}

func TestUpdateRole_AdminOnly(t *testing.T) {
	users := seedUsers()
	h := newHarness(t, auth.RolePolicyAny, users)
	kid, _ := users.FindByEmail(context.Background(), "kid@x.com")
	path := "/users/" + kid.ID.String()

	status, _ := h.do(t, "PATCH", path, h.bearer(t, "kid@x.com"), `{"role":"admin"}`)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, body := h.do(t, "PATCH", path, h.bearer(t, "admin@x.com"), `{"role":"instructor"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"acknowledged":true,"matchedCount":1,"modifiedCount":1,"upsertedCount":0,"upsertedId":null}`, body)

	status, _ = h.do(t, "PATCH", path, h.bearer(t, "admin@x.com"), `{"role":"superuser"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}
