package router

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	handlers "github.com/openvault/openvault-edge/pkg/handlers/http"
	wsHandlers "github.com/openvault/openvault-edge/pkg/handlers/websocket"
	"github.com/openvault/openvault-edge/pkg/middleware"
)

const (
	RootPath           = "/"
	AnalyzePath        = "/safety/analyze"
	ConstitutionalPath = "/safety/constitutional"
	ChatPath           = "/chat/completions"
	PoliciesPath       = "/policies"
	BatchAnalyzePath   = "/safety/analyze/batch"
	SafetyMonitorPath  = "/ws/safety"
)

type bridgeRouter struct {
	middlewareTransport middleware.Transport
	handlerTransport    handlers.HandlerTransport
	wsHandlerTransport  wsHandlers.HandlerTransport
}

func NewBridgeRouter(
	middlewareTransport middleware.Transport,
	handlerTransport handlers.HandlerTransport,
	wsHandlerTransport wsHandlers.HandlerTransport,
) ServerRouter {
	return &bridgeRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
		wsHandlerTransport:  wsHandlerTransport,
	}
}

func (r *bridgeRouter) BuildRoutes(router *fiber.App) error {
	router.Use(r.middlewareTransport.MetricsMiddleware.Middleware())

	// public routes
	router.Get(RootPath, r.handlerTransport.RootHandler.Handle)
	router.Get(HealthPath, r.handlerTransport.BridgeHealthHandler.Handle)

	// everything below requires a bearer token
	router.Use(r.middlewareTransport.AuthMiddleware.Middleware())

	router.Post(AnalyzePath, r.handlerTransport.AnalyzeSafetyHandler.Handle)
	router.Post(ConstitutionalPath, r.handlerTransport.ConstitutionalHandler.Handle)
	router.Post(ChatPath, r.handlerTransport.ChatCompletionHandler.Handle)
	router.Get(PoliciesPath, r.handlerTransport.ListPoliciesHandler.Handle)
	router.Post(BatchAnalyzePath, r.handlerTransport.BatchAnalyzeHandler.Handle)

	router.Get(SafetyMonitorPath,
		r.middlewareTransport.WebsocketMiddleware.Middleware(),
		websocket.New(
			r.wsHandlerTransport.SafetyMonitorHandler.Handle,
			websocket.Config{
				HandshakeTimeout: 15 * time.Second,
				ReadBufferSize:   1024,
				WriteBufferSize:  1024,
			},
		),
	)

	return nil
}
