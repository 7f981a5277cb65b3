package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Gateway
	ForwardedHandler     Handler
	GatewayHealthHandler Handler

	// Bridge
	RootHandler           Handler
	BridgeHealthHandler   Handler
	AnalyzeSafetyHandler  Handler
	ConstitutionalHandler Handler
	ChatCompletionHandler Handler
	ListPoliciesHandler   Handler
	BatchAnalyzeHandler   Handler
}
