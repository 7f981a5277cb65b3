package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handlers "github.com/openvault/openvault-edge/pkg/handlers/http"
	"github.com/openvault/openvault-edge/pkg/infra/httpx"
	"github.com/openvault/openvault-edge/pkg/infra/openvault"
)

func newUpstreamClient(upstreamURL string) openvault.Client {
	return openvault.NewClient(upstreamURL, "bridge-key", httpx.NewFastHTTPClient(), logrus.New())
}

func postJSON(t *testing.T, app *fiber.App, path string, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAnalyzeSafetyHandler_ReshapesUpstreamResponse(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer bridge-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"safe": false,
			"score": 0.42,
			"violations": [{"category": "harassment", "severity": "high"}],
			"metadata": {"model": "safety-v2"}
		}`))
	}))
	defer upstream.Close()

	app := fiber.New()
	app.Post("/safety/analyze", handlers.NewAnalyzeSafetyHandler(logrus.New(), newUpstreamClient(upstream.URL)).Handle)

	resp := postJSON(t, app, "/safety/analyze", `{"text": "hello", "mode": "comprehensive"}`)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, false, result["safe"])
	assert.InDelta(t, 0.42, result["score"].(float64), 0.001)
	violations, ok := result["violations"].([]interface{})
	require.True(t, ok)
	require.Len(t, violations, 1)
	metadata, ok := result["metadata"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "safety-v2", metadata["model"])
}

func TestAnalyzeSafetyHandler_MalformedBody(t *testing.T) {
	upstreamCalled := false
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamCalled = true
	}))
	defer upstream.Close()

	app := fiber.New()
	app.Post("/safety/analyze", handlers.NewAnalyzeSafetyHandler(logrus.New(), newUpstreamClient(upstream.URL)).Handle)

	resp := postJSON(t, app, "/safety/analyze", `{"text": `)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.False(t, upstreamCalled)
}

func TestAnalyzeSafetyHandler_ForwardsEmptyText(t *testing.T) {
	var gotText *string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if text, ok := req["text"].(string); ok {
			gotText = &text
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"safe": true, "score": 1.0, "violations": [], "metadata": {}}`))
	}))
	defer upstream.Close()

	app := fiber.New()
	app.Post("/safety/analyze", handlers.NewAnalyzeSafetyHandler(logrus.New(), newUpstreamClient(upstream.URL)).Handle)

	// whether an empty text is acceptable is the upstream's call
	resp := postJSON(t, app, "/safety/analyze", `{"text": ""}`)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotNil(t, gotText)
	assert.Equal(t, "", *gotText)
}

func TestAnalyzeSafetyHandler_RelaysUpstreamStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"detail": "analysis backend down"}`))
	}))
	defer upstream.Close()

	app := fiber.New()
	app.Post("/safety/analyze", handlers.NewAnalyzeSafetyHandler(logrus.New(), newUpstreamClient(upstream.URL)).Handle)

	resp := postJSON(t, app, "/safety/analyze", `{"text": "hello"}`)

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "analysis backend down")
}
