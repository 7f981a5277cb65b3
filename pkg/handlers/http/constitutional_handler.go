package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/openvault/openvault-edge/pkg/handlers/http/request"
	"github.com/openvault/openvault-edge/pkg/infra/openvault"
)

type constitutionalHandler struct {
	*BaseHandler
	client openvault.Client
}

func NewConstitutionalHandler(logger *logrus.Logger, client openvault.Client) Handler {
	return &constitutionalHandler{
		BaseHandler: NewBaseHandler(logger),
		client:      client,
	}
}

func (h *constitutionalHandler) Handle(c *fiber.Ctx) error {
	var req request.ConstitutionalAIRequest
	if err := c.BodyParser(&req); err != nil {
		return h.HandleValidationError(c, err)
	}
	if err := req.Validate(); err != nil {
		return h.HandleValidationError(c, err)
	}

	result, err := h.client.ApplyConstitutional(c.Context(), &req)
	if err != nil {
		return h.HandleUpstreamError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
