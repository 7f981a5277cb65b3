package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/openvault/openvault-edge/pkg/common"
	"github.com/openvault/openvault-edge/pkg/middleware"
)

func newAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	logger := logrus.New()
	authMiddleware := middleware.NewAuthMiddleware(logger)

	app := fiber.New()
	app.Use(authMiddleware.Middleware())
	app.Get("/test", func(c *fiber.Ctx) error {
		token, _ := c.Locals(common.BearerTokenContextKey).(string)
		return c.SendString(token)
	})
	return app
}

func TestAuthMiddleware_NoAuthorizationHeader(t *testing.T) {
	app := newAuthApp(t)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_NotBearerScheme(t *testing.T) {
	app := newAuthApp(t)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_EmptyBearerToken(t *testing.T) {
	app := newAuthApp(t)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer ")
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ValidBearerToken(t *testing.T) {
	app := newAuthApp(t)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer test-token")
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := make([]byte, 32)
	n, _ := resp.Body.Read(body)
	assert.Equal(t, "test-token", string(body[:n]))
}
