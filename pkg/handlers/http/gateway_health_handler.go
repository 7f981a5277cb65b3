package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/openvault/openvault-edge/pkg/infra/openvault"
)

type gatewayHealthHandler struct {
	logger *logrus.Logger
	client openvault.Client
}

func NewGatewayHealthHandler(logger *logrus.Logger, client openvault.Client) Handler {
	return &gatewayHealthHandler{
		logger: logger,
		client: client,
	}
}

// Handle relays the upstream health document; an unreachable upstream is
// the one condition the gateway reports as 503.
func (h *gatewayHealthHandler) Handle(c *fiber.Ctx) error {
	health, err := h.client.Health(c.Context())
	if err != nil {
		h.logger.WithError(err).Warn("upstream health check failed")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Service unavailable: " + err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(health)
}
