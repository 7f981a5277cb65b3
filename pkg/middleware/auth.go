package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/openvault/openvault-edge/pkg/common"
)

// authMiddleware requires a non-empty bearer token on protected routes.
// The token is not verified against anything; presence is the contract,
// identity belongs to the upstream platform.
type authMiddleware struct {
	logger *logrus.Logger
}

func NewAuthMiddleware(logger *logrus.Logger) Middleware {
	return &authMiddleware{
		logger: logger,
	}
}

func (m *authMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get(common.AuthorizationHeader)
		if authHeader == "" {
			m.logger.Debug("no authorization header provided")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "authorization header required",
			})
		}

		if !strings.HasPrefix(authHeader, common.BearerPrefix) {
			m.logger.Debug("authorization header is not a bearer token")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid authentication credentials",
			})
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, common.BearerPrefix))
		if token == "" {
			m.logger.Debug("empty bearer token")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid authentication credentials",
			})
		}

		ctx.Locals(common.BearerTokenContextKey, token)

		return ctx.Next()
	}
}
