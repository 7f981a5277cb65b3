package openvault

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/openvault/openvault-edge/pkg/common"
	"github.com/openvault/openvault-edge/pkg/handlers/http/request"
	"github.com/openvault/openvault-edge/pkg/handlers/http/response"
	"github.com/openvault/openvault-edge/pkg/infra/httpx"
	"github.com/sirupsen/logrus"
)

const (
	healthEndpoint         = "/health"
	analyzeEndpoint        = "/api/v1/safety/analyze"
	constitutionalEndpoint = "/api/v1/safety/constitutional"
	chatEndpoint           = "/api/v1/chat/completions"
	policiesEndpoint       = "/api/v1/policies"
)

// Client talks to the OpenVault platform's REST API.
type Client interface {
	Health(ctx context.Context) (map[string]interface{}, error)
	AnalyzeSafety(ctx context.Context, req *request.SafetyAnalysisRequest) (*response.SafetyAnalysisResponse, error)
	ApplyConstitutional(ctx context.Context, req *request.ConstitutionalAIRequest) (*response.ConstitutionalAIResponse, error)
	ChatCompletion(ctx context.Context, req *request.ChatCompletionRequest) (map[string]interface{}, error)
	ListPolicies(ctx context.Context) (json.RawMessage, error)
}

type client struct {
	baseURL    string
	apiKey     string
	httpClient httpx.Client
	logger     *logrus.Logger
}

func NewClient(baseURL, apiKey string, httpClient httpx.Client, logger *logrus.Logger) Client {
	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *client) Health(ctx context.Context) (map[string]interface{}, error) {
	body, err := c.doRequest(ctx, http.MethodGet, healthEndpoint, nil)
	if err != nil {
		return nil, err
	}
	var health map[string]interface{}
	if err := json.Unmarshal(body, &health); err != nil {
		return nil, fmt.Errorf("failed to decode health response: %w", err)
	}
	return health, nil
}

func (c *client) AnalyzeSafety(
	ctx context.Context,
	req *request.SafetyAnalysisRequest,
) (*response.SafetyAnalysisResponse, error) {
	body, err := c.doRequest(ctx, http.MethodPost, analyzeEndpoint, req)
	if err != nil {
		return nil, err
	}
	var result response.SafetyAnalysisResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode analysis response: %w", err)
	}
	result.Normalize()
	return &result, nil
}

func (c *client) ApplyConstitutional(
	ctx context.Context,
	req *request.ConstitutionalAIRequest,
) (*response.ConstitutionalAIResponse, error) {
	body, err := c.doRequest(ctx, http.MethodPost, constitutionalEndpoint, req)
	if err != nil {
		return nil, err
	}
	var result response.ConstitutionalAIResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode constitutional response: %w", err)
	}
	return &result, nil
}

func (c *client) ChatCompletion(
	ctx context.Context,
	req *request.ChatCompletionRequest,
) (map[string]interface{}, error) {
	body, err := c.doRequest(ctx, http.MethodPost, chatEndpoint, req)
	if err != nil {
		return nil, err
	}
	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode chat completion response: %w", err)
	}
	return result, nil
}

func (c *client) ListPolicies(ctx context.Context) (json.RawMessage, error) {
	return c.doRequest(ctx, http.MethodGet, policiesEndpoint, nil)
}

func (c *client) doRequest(ctx context.Context, method, endpoint string, payload interface{}) ([]byte, error) {
	url := c.baseURL + endpoint

	var bodyReader *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set(common.AuthorizationHeader, common.BearerPrefix+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.WithError(err).WithField("url", url).Error("upstream request failed")
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := readAll(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.logger.WithFields(logrus.Fields{
			"url":    url,
			"status": resp.StatusCode,
		}).Error("upstream returned error status")
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: respBody}
	}

	return respBody, nil
}
