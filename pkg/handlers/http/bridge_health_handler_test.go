package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handlers "github.com/openvault/openvault-edge/pkg/handlers/http"
	"github.com/openvault/openvault-edge/pkg/handlers/http/response"
)

func TestBridgeHealthHandler_UpstreamHealthy(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "operational"}`))
	}))
	defer upstream.Close()

	app := fiber.New()
	app.Get("/health", handlers.NewBridgeHealthHandler(logrus.New(), newUpstreamClient(upstream.URL)).Handle)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var health response.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "operational", health.OpenVaultStatus)
	assert.NotEmpty(t, health.Timestamp)
}

func TestBridgeHealthHandler_UpstreamUnreachable(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	app := fiber.New()
	app.Get("/health", handlers.NewBridgeHealthHandler(logrus.New(), newUpstreamClient(upstream.URL)).Handle)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var health response.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "unavailable", health.OpenVaultStatus)
}
