package router

import (
	"github.com/gofiber/fiber/v2"

	handlers "github.com/openvault/openvault-edge/pkg/handlers/http"
	"github.com/openvault/openvault-edge/pkg/middleware"
)

const HealthPath = "/health"

type gatewayRouter struct {
	middlewareTransport middleware.Transport
	handlerTransport    handlers.HandlerTransport
}

func NewGatewayRouter(
	middlewareTransport middleware.Transport,
	handlerTransport handlers.HandlerTransport,
) ServerRouter {
	return &gatewayRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
	}
}

func (r *gatewayRouter) BuildRoutes(router *fiber.App) error {
	router.Use(r.middlewareTransport.MetricsMiddleware.Middleware())

	router.Get(HealthPath, r.handlerTransport.GatewayHealthHandler.Handle)

	// every other method and path is forwarded verbatim
	router.Use(r.handlerTransport.ForwardedHandler.Handle)

	return nil
}
