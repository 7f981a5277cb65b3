package common

import "time"

const (
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "
	RequestIDHeader     = "X-Request-Id"

	SSEContentType = "text/event-stream"

	DefaultUpstreamTimeout = 30 * time.Second
	ChatUpstreamTimeout    = 60 * time.Second
)
