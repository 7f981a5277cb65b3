package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/openvault/openvault-edge/pkg/infra/openvault"
)

type listPoliciesHandler struct {
	*BaseHandler
	client openvault.Client
}

func NewListPoliciesHandler(logger *logrus.Logger, client openvault.Client) Handler {
	return &listPoliciesHandler{
		BaseHandler: NewBaseHandler(logger),
		client:      client,
	}
}

func (h *listPoliciesHandler) Handle(c *fiber.Ctx) error {
	policies, err := h.client.ListPolicies(c.Context())
	if err != nil {
		return h.HandleUpstreamError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(policies)
}
