package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/openvault/openvault-edge/pkg/handlers/http/request"
	"github.com/openvault/openvault-edge/pkg/infra/openvault"
)

type analyzeSafetyHandler struct {
	*BaseHandler
	client openvault.Client
}

func NewAnalyzeSafetyHandler(logger *logrus.Logger, client openvault.Client) Handler {
	return &analyzeSafetyHandler{
		BaseHandler: NewBaseHandler(logger),
		client:      client,
	}
}

func (h *analyzeSafetyHandler) Handle(c *fiber.Ctx) error {
	var req request.SafetyAnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return h.HandleValidationError(c, err)
	}
	if err := req.Validate(); err != nil {
		return h.HandleValidationError(c, err)
	}

	result, err := h.client.AnalyzeSafety(c.Context(), &req)
	if err != nil {
		return h.HandleUpstreamError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
