package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/openvault/openvault-edge/pkg/common"
	"github.com/openvault/openvault-edge/pkg/infra/prometheus"
)

type metricsMiddleware struct {
	logger     *logrus.Logger
	serverType string
}

func NewMetricsMiddleware(logger *logrus.Logger, serverType string) Middleware {
	return &metricsMiddleware{
		logger:     logger,
		serverType: serverType,
	}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(common.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Locals(common.RequestIDContextKey, requestID)
		c.Set(common.RequestIDHeader, requestID)

		startTime := time.Now()
		c.Locals(common.LatencyContextKey, startTime)

		err := c.Next()

		elapsed := time.Since(startTime)
		status := c.Response().StatusCode()
		path := c.Path()

		prometheus.RequestTotal.WithLabelValues(
			m.serverType, c.Method(), path, strconv.Itoa(status),
		).Inc()
		prometheus.RequestLatency.WithLabelValues(m.serverType, path).
			Observe(float64(elapsed.Milliseconds()))

		m.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Method(),
			"path":       path,
			"status":     status,
			"latency_ms": elapsed.Milliseconds(),
		}).Debug("request completed")

		return err
	}
}
