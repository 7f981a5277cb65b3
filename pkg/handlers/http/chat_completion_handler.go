package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/openvault/openvault-edge/pkg/handlers/http/request"
	"github.com/openvault/openvault-edge/pkg/infra/openvault"
)

type chatCompletionHandler struct {
	*BaseHandler
	client openvault.Client
}

func NewChatCompletionHandler(logger *logrus.Logger, client openvault.Client) Handler {
	return &chatCompletionHandler{
		BaseHandler: NewBaseHandler(logger),
		client:      client,
	}
}

func (h *chatCompletionHandler) Handle(c *fiber.Ctx) error {
	var req request.ChatCompletionRequest
	if err := c.BodyParser(&req); err != nil {
		return h.HandleValidationError(c, err)
	}
	if err := req.Validate(); err != nil {
		return h.HandleValidationError(c, err)
	}

	result, err := h.client.ChatCompletion(c.Context(), &req)
	if err != nil {
		return h.HandleUpstreamError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
