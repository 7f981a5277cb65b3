package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/openvault/openvault-edge/pkg/handlers/http/request"
	"github.com/openvault/openvault-edge/pkg/handlers/http/response"
	"github.com/openvault/openvault-edge/pkg/infra/openvault"
)

type batchAnalyzeHandler struct {
	*BaseHandler
	client openvault.Client
}

func NewBatchAnalyzeHandler(logger *logrus.Logger, client openvault.Client) Handler {
	return &batchAnalyzeHandler{
		BaseHandler: NewBaseHandler(logger),
		client:      client,
	}
}

// Handle fans out every item concurrently and always answers with one
// record per input, in input order. A failed item becomes an unsafe
// zero-score record carrying its error instead of failing the batch.
func (h *batchAnalyzeHandler) Handle(c *fiber.Ctx) error {
	var reqs []request.SafetyAnalysisRequest
	if err := json.Unmarshal(c.Body(), &reqs); err != nil {
		return h.HandleValidationError(c, err)
	}
	for i := range reqs {
		if err := reqs[i].Validate(); err != nil {
			return h.HandleValidationError(c, err)
		}
	}

	h.logger.WithField("items", len(reqs)).Info("batch safety analysis requested")

	results := make([]response.BatchAnalysisResult, len(reqs))
	g := &errgroup.Group{}
	for i := range reqs {
		i := i
		g.Go(func() error {
			result, err := h.client.AnalyzeSafety(c.Context(), &reqs[i])
			if err != nil {
				results[i] = response.BatchAnalysisResult{
					Index:      i,
					Error:      err.Error(),
					Safe:       false,
					Score:      0,
					Violations: []map[string]interface{}{},
					Metadata:   map[string]interface{}{"error": true},
				}
				return nil
			}
			results[i] = response.BatchAnalysisResult{
				Index:      i,
				Safe:       result.Safe,
				Score:      result.Score,
				Violations: result.Violations,
				Metadata:   result.Metadata,
			}
			return nil
		})
	}
	_ = g.Wait()

	return c.Status(fiber.StatusOK).JSON(response.BatchAnalysisResponse{Results: results})
}
