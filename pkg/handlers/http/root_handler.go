package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/openvault/openvault-edge/pkg/version"
)

type rootHandler struct {
	logger *logrus.Logger
}

func NewRootHandler(logger *logrus.Logger) Handler {
	return &rootHandler{
		logger: logger,
	}
}

func (h *rootHandler) Handle(c *fiber.Ctx) error {
	info := version.GetInfo()
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": info.AppName + " Bridge",
		"version": info.Version,
		"build":   info,
		"health":  "/health",
	})
}
