package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", APIKeyAuthMiddleware(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestAPIKeyAuthMiddleware(t *testing.T) {
	t.Setenv("INTERNAL_API_KEY", "test-key-123")
	app := newProtectedApp()

	tests := []struct {
		name       string
		header     string
		value      string
		wantStatus int
	}{
		{name: "valid x-api-key", header: "X-API-Key", value: "test-key-123", wantStatus: fiber.StatusOK},
		{name: "valid bearer", header: "Authorization", value: "Bearer test-key-123", wantStatus: fiber.StatusOK},
		{name: "bearer case insensitive", header: "Authorization", value: "bearer test-key-123", wantStatus: fiber.StatusOK},
		{name: "wrong key", header: "X-API-Key", value: "nope", wantStatus: fiber.StatusUnauthorized},
		{name: "wrong bearer", header: "Authorization", value: "Bearer nope", wantStatus: fiber.StatusUnauthorized},
		{name: "missing key", wantStatus: fiber.StatusUnauthorized},
		{name: "non-bearer authorization", header: "Authorization", value: "Basic dXNlcjpwdw==", wantStatus: fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		req := httptest.NewRequest("GET", "/protected", nil)
		if tt.header != "" {
			req.Header.Set(tt.header, tt.value)
		}
		resp, err := app.Test(req)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.wantStatus, resp.StatusCode, tt.name)
	}
}

func TestAPIKeyAuthMiddlewareUnconfigured(t *testing.T) {
	t.Setenv("INTERNAL_API_KEY", "")
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("X-API-Key", "anything")
	resp, err := app.Test(req)
	require.NoError(t, err)
	// a missing server credential must fail closed, not open
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
