package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleBody struct {
	Email string  `json:"email" validate:"required,email"`
	Price float64 `json:"price" validate:"gt=0"`
}

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error { return FromFiberError(c, err) },
	})
}

func decodeError(t *testing.T, body io.Reader) ErrorBody {
	t.Helper()
	var out ErrorBody
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestParseAndValidate(t *testing.T) {
	app := newTestApp()
	app.Post("/", func(c *fiber.Ctx) error {
		var b sampleBody
		if err := ParseAndValidate(c, &b); err != nil {
			return err
		}
		return JsonOK(c, b)
	})

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{"valid", `{"email":"a@b.com","price":10}`, fiber.StatusOK, ""},
		{"bad json", `{`, fiber.StatusBadRequest, "invalid request body"},
		{"bad email", `{"email":"nope","price":10}`, fiber.StatusBadRequest, "Email must be a valid email"},
		{"zero price", `{"email":"a@b.com"}`, fiber.StatusBadRequest, "Price must be greater than 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantMsg != "" {
				got := decodeError(t, resp.Body)
				assert.True(t, got.Error)
				assert.Equal(t, tt.wantMsg, got.Message)
			}
		})
	}
}

func TestFromFiberError_HidesInternalErrors(t *testing.T) {
	app := newTestApp()
	app.Get("/boom", func(c *fiber.Ctx) error { return io.ErrUnexpectedEOF })
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "short and stout") })

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, ErrorBody{Error: true, Message: "internal server error"}, decodeError(t, resp.Body))

	resp, err = app.Test(httptest.NewRequest("GET", "/teapot", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
	assert.Equal(t, "short and stout", decodeError(t, resp.Body).Message)
}

func TestParseUUIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	ids, err := ParseUUIDs([]string{a.String(), " " + b.String()})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, ids)

	_, err = ParseUUIDs([]string{a.String(), "64f0c0ffee"})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestWriteResultShapes(t *testing.T) {
	id := uuid.New()
	raw, err := json.Marshal(Upserted(id))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, true, m["acknowledged"])
	assert.Equal(t, id.String(), m["upsertedId"])
	assert.EqualValues(t, 0, m["matchedCount"])

	raw, err = json.Marshal(Updated(1, 0))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Nil(t, m["upsertedId"])
}
