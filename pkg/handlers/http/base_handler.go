package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/openvault/openvault-edge/pkg/infra/openvault"
)

type BaseHandler struct {
	logger *logrus.Logger
}

func NewBaseHandler(logger *logrus.Logger) *BaseHandler {
	return &BaseHandler{logger: logger}
}

// HandleUpstreamError relays upstream non-success statuses as-is and maps
// transport failures to a plain 500, without retrying either.
func (h *BaseHandler) HandleUpstreamError(c *fiber.Ctx, err error) error {
	if statusErr, ok := openvault.AsStatusError(err); ok {
		return c.Status(statusErr.StatusCode).JSON(fiber.Map{
			"error": string(statusErr.Body),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func (h *BaseHandler) HandleValidationError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}
