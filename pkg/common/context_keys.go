package common

type contextKey string

const (
	RequestIDContextKey   contextKey = "request_id"
	BearerTokenContextKey contextKey = "bearer_token"
	LatencyContextKey     contextKey = "__execution_time"
	WsSemaphoreContextKey contextKey = "ws_semaphore"
)
