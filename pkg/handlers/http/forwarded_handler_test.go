package http_test

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handlers "github.com/openvault/openvault-edge/pkg/handlers/http"
	"github.com/openvault/openvault-edge/pkg/infra/httpx"
)

func newGatewayApp(upstreamURL string) *fiber.App {
	app := fiber.New()
	handler := handlers.NewForwardedHandler(
		logrus.New(),
		upstreamURL,
		httpx.NewFastHTTPClient(),
		&http.Client{Timeout: 60 * time.Second},
	)
	app.Use(handler.Handle)
	return app
}

func TestForwardedHandler_RelaysMethodPathAndBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("X-Upstream", "yes")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, "%s %s?%s %s", r.Method, r.URL.Path, r.URL.RawQuery, body)
	}))
	defer upstream.Close()

	app := newGatewayApp(upstream.URL)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/anything/nested?x=1", bytes.NewReader([]byte("payload")))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "yes", resp.Header.Get("X-Upstream"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "PUT /api/v1/anything/nested?x=1 payload", string(body))
}

func TestForwardedHandler_ForwardsRequestHeaders(t *testing.T) {
	var gotHeader string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Custom")
		_, _ = w.Write([]byte("ok"))
	}))
	defer upstream.Close()

	app := newGatewayApp(upstream.URL)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/policies", nil)
	req.Header.Set("X-Custom", "value-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "value-123", gotHeader)
}

func TestForwardedHandler_RelaysUpstreamErrorStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))
	defer upstream.Close()

	app := newGatewayApp(upstream.URL)

	req := httptest.NewRequest(http.MethodGet, "/whatever", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "short and stout", string(body))
}

func TestForwardedHandler_UnreachableUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	app := newGatewayApp(upstream.URL)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/policies", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestForwardedHandler_ChatCompletionsBuffered(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/chat/completions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "hi"}}]}`))
	}))
	defer upstream.Close()

	app := newGatewayApp(upstream.URL)

	resp := postJSON(t, app, "/api/v1/chat/completions", `{"model": "gpt-4o-mini", "messages": []}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "choices")
}

func TestForwardedHandler_ChatCompletionsStreaming(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		flusher, ok := w.(http.Flusher)
		require.True(t, ok)
		for i := 0; i < 3; i++ {
			fmt.Fprintf(w, "data: {\"chunk\": %d}\n\n", i)
			flusher.Flush()
		}
	}))
	defer upstream.Close()

	app := newGatewayApp(upstream.URL)

	resp := postJSON(t, app, "/api/v1/chat/completions", `{"model": "gpt-4o-mini", "stream": true}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `data: {"chunk": 0}`)
	assert.Contains(t, string(body), `data: {"chunk": 2}`)
}

func TestGatewayHealthHandler_RelaysUpstreamHealth(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "ok", "uptime": 42}`))
	}))
	defer upstream.Close()

	app := fiber.New()
	app.Get("/health", handlers.NewGatewayHealthHandler(logrus.New(), newUpstreamClient(upstream.URL)).Handle)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"status":"ok"`)
}

func TestGatewayHealthHandler_UnreachableUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	app := fiber.New()
	app.Get("/health", handlers.NewGatewayHealthHandler(logrus.New(), newUpstreamClient(upstream.URL)).Handle)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}
