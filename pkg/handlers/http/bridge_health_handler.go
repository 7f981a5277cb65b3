package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/openvault/openvault-edge/pkg/handlers/http/response"
	"github.com/openvault/openvault-edge/pkg/infra/openvault"
)

const upstreamUnavailable = "unavailable"

type bridgeHealthHandler struct {
	logger *logrus.Logger
	client openvault.Client
}

func NewBridgeHealthHandler(logger *logrus.Logger, client openvault.Client) Handler {
	return &bridgeHealthHandler{
		logger: logger,
		client: client,
	}
}

// Handle reports the bridge itself as healthy regardless of the upstream;
// the upstream state only shows up in openvault_status.
func (h *bridgeHealthHandler) Handle(c *fiber.Ctx) error {
	upstreamStatus := upstreamUnavailable
	health, err := h.client.Health(c.Context())
	if err != nil {
		h.logger.WithError(err).Warn("openvault health check failed")
	} else {
		upstreamStatus = "unknown"
		if status, ok := health["status"].(string); ok && status != "" {
			upstreamStatus = status
		}
	}

	return c.Status(fiber.StatusOK).JSON(response.HealthResponse{
		Status:          "healthy",
		Timestamp:       time.Now().Format(time.RFC3339),
		OpenVaultStatus: upstreamStatus,
	})
}
