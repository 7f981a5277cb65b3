package http

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/openvault/openvault-edge/pkg/common"
	"github.com/openvault/openvault-edge/pkg/infra/httpx"
)

const chatCompletionsPath = "/api/v1/chat/completions"

// hop-by-hop headers are not forwarded to the upstream
var hopHeaders = map[string]struct{}{
	"Connection":          {},
	"Proxy-Connection":    {},
	"Keep-Alive":          {},
	"Proxy-Authenticate":  {},
	"Proxy-Authorization": {},
	"Te":                  {},
	"Trailer":             {},
	"Transfer-Encoding":   {},
	"Upgrade":             {},
	"Host":                {},
	"Content-Length":      {},
}

type forwardedHandler struct {
	logger       *logrus.Logger
	baseURL      string
	client       httpx.Client
	streamClient *http.Client
}

// NewForwardedHandler builds the gateway's catch-all proxy. Buffered
// forwards go through the shared fasthttp pool; the chat completions
// route uses a net/http client so an event-stream body can be relayed
// incrementally.
func NewForwardedHandler(
	logger *logrus.Logger,
	baseURL string,
	client httpx.Client,
	streamClient *http.Client,
) Handler {
	return &forwardedHandler{
		logger:       logger,
		baseURL:      strings.TrimRight(baseURL, "/"),
		client:       client,
		streamClient: streamClient,
	}
}

func (h *forwardedHandler) Handle(c *fiber.Ctx) error {
	upstreamURL := h.baseURL + c.Path()
	if query := string(c.Request().URI().QueryString()); query != "" {
		upstreamURL += "?" + query
	}

	httpReq, err := http.NewRequestWithContext(
		c.Context(), c.Method(), upstreamURL, bytes.NewReader(c.Body()),
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to build upstream request: %v", err),
		})
	}

	for key, values := range c.GetReqHeaders() {
		if _, skip := hopHeaders[http.CanonicalHeaderKey(key)]; skip {
			continue
		}
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	if c.Path() == chatCompletionsPath {
		return h.forwardStreamAware(c, httpReq)
	}
	return h.forwardBuffered(c, httpReq)
}

func (h *forwardedHandler) forwardBuffered(c *fiber.Ctx, httpReq *http.Request) error {
	resp, err := h.client.Do(httpReq)
	if err != nil {
		h.logger.WithError(err).WithField("url", httpReq.URL.String()).Error("failed to forward request")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		h.logger.WithError(err).Error("failed to read upstream response")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	copyResponseHeaders(c, resp.Header)
	return c.Status(resp.StatusCode).Send(body)
}

// forwardStreamAware forwards the chat completions route. When the
// upstream answers with an event stream, the body is relayed through a
// stream writer instead of being buffered.
func (h *forwardedHandler) forwardStreamAware(c *fiber.Ctx, httpReq *http.Request) error {
	resp, err := h.streamClient.Do(httpReq)
	if err != nil {
		h.logger.WithError(err).WithField("url", httpReq.URL.String()).Error("failed to forward chat request")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if !strings.Contains(resp.Header.Get(fiber.HeaderContentType), common.SSEContentType) {
		defer func() { _ = resp.Body.Close() }()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			h.logger.WithError(err).Error("failed to read upstream response")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		copyResponseHeaders(c, resp.Header)
		return c.Status(resp.StatusCode).Send(body)
	}

	copyResponseHeaders(c, resp.Header)
	c.Set(fiber.HeaderContentType, common.SSEContentType)
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set("X-Accel-Buffering", "no")
	c.Status(resp.StatusCode)

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer func() { _ = resp.Body.Close() }()
		buf := make([]byte, 4096)
		for {
			n, err := resp.Body.Read(buf)
			if n > 0 {
				if _, werr := w.Write(buf[:n]); werr != nil {
					return
				}
				if werr := w.Flush(); werr != nil {
					return
				}
			}
			if err != nil {
				if err != io.EOF {
					h.logger.WithError(err).Error("error reading streaming response")
				}
				return
			}
		}
	})

	return nil
}

func copyResponseHeaders(c *fiber.Ctx, headers http.Header) {
	for key, values := range headers {
		if _, skip := hopHeaders[key]; skip {
			continue
		}
		for _, v := range values {
			c.Set(key, v)
		}
	}
}
