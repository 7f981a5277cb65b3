package request

import (
	"fmt"
	"strings"
)

const (
	defaultChatModel   = "gpt-4o-mini"
	defaultSafetyMode  = "balanced"
	defaultTemperature = 0.7
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionRequest only carries the field shape; model names,
// temperature ranges and token limits are interpreted upstream.
type ChatCompletionRequest struct {
	Model       string        `json:"model,omitempty"`
	Messages    []ChatMessage `json:"messages"`
	SafetyMode  string        `json:"safety_mode,omitempty"`
	Temperature *float64      `json:"temperature,omitempty"`
	MaxTokens   *int          `json:"max_tokens,omitempty"`
}

func (r *ChatCompletionRequest) Validate() error {
	if len(r.Messages) == 0 {
		return fmt.Errorf("messages are required")
	}

	if strings.TrimSpace(r.Model) == "" {
		r.Model = defaultChatModel
	}
	if strings.TrimSpace(r.SafetyMode) == "" {
		r.SafetyMode = defaultSafetyMode
	}
	if r.Temperature == nil {
		temperature := defaultTemperature
		r.Temperature = &temperature
	}

	return nil
}
