package middleware

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/openvault/openvault-edge/pkg/common"
	infraWebsocket "github.com/openvault/openvault-edge/pkg/infra/websocket"
)

// websocketMiddleware gates upgrades behind a server-level connection cap.
type websocketMiddleware struct {
	logger    *logrus.Logger
	semaphore *infraWebsocket.Semaphore
}

func NewWebsocketMiddleware(logger *logrus.Logger, maxConnections int) Middleware {
	return &websocketMiddleware{
		logger:    logger,
		semaphore: infraWebsocket.NewSemaphore(maxConnections),
	}
}

func (m *websocketMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		if !m.semaphore.Acquire() {
			m.logger.WithField("active_connections", m.semaphore.GetCurrentConnections()).
				Warn("maximum websocket connections reached, rejecting connection")
			return fiber.ErrTooManyRequests
		}
		c.Locals(string(common.WsSemaphoreContextKey), m.semaphore)

		return c.Next()
	}
}
