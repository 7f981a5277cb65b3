package websocket

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fastjson"

	"github.com/openvault/openvault-edge/pkg/common"
	"github.com/openvault/openvault-edge/pkg/handlers/http/request"
	"github.com/openvault/openvault-edge/pkg/infra/openvault"
	"github.com/openvault/openvault-edge/pkg/infra/prometheus"
	infraWebsocket "github.com/openvault/openvault-edge/pkg/infra/websocket"
)

type safetyMonitorHandler struct {
	logger *logrus.Logger
	client openvault.Client
}

func NewSafetyMonitorHandler(logger *logrus.Logger, client openvault.Client) Handler {
	return &safetyMonitorHandler{
		logger: logger,
		client: client,
	}
}

// Handle serves one safety monitoring connection. Each analyze frame
// triggers a single upstream analysis and one analysis_result frame;
// frames with any other type are ignored. The connection closes on the
// first unhandled error.
func (h *safetyMonitorHandler) Handle(c *websocket.Conn) {
	if semaphore, ok := c.Locals(string(common.WsSemaphoreContextKey)).(*infraWebsocket.Semaphore); ok {
		defer semaphore.Release()
	}

	prometheus.WebsocketConnections.WithLabelValues("bridge").Inc()
	defer prometheus.WebsocketConnections.WithLabelValues("bridge").Dec()

	h.logger.Info("websocket connection established for safety monitoring")
	defer h.logger.Info("websocket connection closed")

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			h.logger.WithError(err).Debug("websocket read ended")
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		parsed, err := fastjson.ParseBytes(message)
		if err != nil {
			h.logger.WithError(err).Error("websocket error")
			return
		}
		if string(parsed.GetStringBytes("type")) != infraWebsocket.AnalyzeMessageType {
			continue
		}

		if err := h.handleAnalyzeMessage(c, message); err != nil {
			h.logger.WithError(err).Error("websocket error")
			return
		}
	}
}

func (h *safetyMonitorHandler) handleAnalyzeMessage(c *websocket.Conn, message []byte) error {
	var inbound infraWebsocket.InboundMessage
	if err := json.Unmarshal(message, &inbound); err != nil {
		return err
	}

	var analyzeReq request.SafetyAnalysisRequest
	if err := decodePayload(inbound.Data, &analyzeReq); err != nil {
		return err
	}
	if err := analyzeReq.Validate(); err != nil {
		return err
	}

	result, err := h.client.AnalyzeSafety(context.Background(), &analyzeReq)
	if err != nil {
		return err
	}

	outbound, err := json.Marshal(infraWebsocket.OutboundMessage{
		Type:      infraWebsocket.AnalysisResultMessageType,
		Data:      result,
		Timestamp: time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	return c.WriteMessage(websocket.TextMessage, outbound)
}

// decodePayload maps the frame's data object onto the analyze request
// using its json field names.
func decodePayload(data map[string]interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(data)
}
