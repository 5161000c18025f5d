// Package feedback orchestrates the AI-backed writing operations:
// evaluation, rewriting, restructuring, figure review, and coherence
// analysis. Each operation analyzes the text locally, embeds that analysis
// into a prompt, calls the model client, parses and validates the reply,
// and persists a record of the exchange.
package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quillworks/inkwell/internal/ai"
	"github.com/quillworks/inkwell/internal/models"
	"github.com/quillworks/inkwell/internal/prompt"
	"github.com/quillworks/inkwell/internal/readability"
	"github.com/quillworks/inkwell/internal/storage"
	"go.uber.org/zap"
)

// Service runs feedback operations against a model client.
type Service struct {
	client   ai.Client
	prompts  *prompt.Registry
	analyzer *readability.Analyzer
	store    storage.Storage
	logger   *zap.Logger
}

// NewService wires a feedback service. All dependencies are required
// except logger, which may be nil.
func NewService(client ai.Client, prompts *prompt.Registry, analyzer *readability.Analyzer, store storage.Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:   client,
		prompts:  prompts,
		analyzer: analyzer,
		store:    store,
		logger:   logger,
	}
}

// persist writes a feedback record for the exchange. Persistence failures
// are logged, not returned: the user already has their result.
func (s *Service) persist(ctx context.Context, sub *models.Submission, kind models.FeedbackKind, opts, result interface{}, started time.Time) string {
	reqJSON, err := json.Marshal(opts)
	if err != nil {
		reqJSON = []byte("{}")
	}
	resJSON, err := json.Marshal(result)
	if err != nil {
		s.logger.Error("marshal feedback result", zap.Error(err))
		return ""
	}
	rec := &models.FeedbackRecord{
		ID:           uuid.NewString(),
		SubmissionID: sub.ID,
		Kind:         kind,
		Request:      string(reqJSON),
		Result:       string(resJSON),
		Model:        s.client.Model(),
		LatencyMS:    time.Since(started).Milliseconds(),
	}
	if err := s.store.CreateFeedback(ctx, rec); err != nil {
		s.logger.Error("persist feedback record",
			zap.String("submission_id", sub.ID),
			zap.String("kind", string(kind)),
			zap.Error(err))
		return ""
	}
	return rec.ID
}

// clampScore forces a model-supplied score into [0, 100].
func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// complete sends the request and returns the raw reply, wrapping context
// into the error message for the logs.
func (s *Service) complete(ctx context.Context, kind models.FeedbackKind, req *ai.Request) (string, error) {
	reply, err := s.client.Complete(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%s completion: %w", kind, err)
	}
	return reply, nil
}
