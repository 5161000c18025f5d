package feedback

import (
	"context"
	"time"

	"github.com/quillworks/inkwell/internal/ai"
	"github.com/quillworks/inkwell/internal/models"
	"go.uber.org/zap"
)

// Section is one entry of a proposed restructuring.
type Section struct {
	Title            string `json:"title"`
	Summary          string `json:"summary"`
	OriginalPosition int    `json:"original_position"`
}

// RestructureResult is the model's proposed section ordering.
type RestructureResult struct {
	Sections  []Section `json:"sections"`
	Rationale string    `json:"rationale"`
	RecordID  string    `json:"record_id,omitempty"`
	Model     string    `json:"model"`
}

// Restructure proposes a reordering of the submission's sections. The
// original positions should form a permutation of 1..n; when the model
// deviates the result passes through with a warning rather than failing,
// since the proposal is advisory.
func (s *Service) Restructure(ctx context.Context, sub *models.Submission, opts *models.RestructureOptions) (*RestructureResult, error) {
	started := time.Now()
	report := s.analyzer.Analyze(sub.Content)

	req, err := s.prompts.BuildRestructure(sub, report, opts)
	if err != nil {
		return nil, err
	}
	reply, err := s.complete(ctx, models.KindRestructure, req)
	if err != nil {
		return nil, err
	}

	var result RestructureResult
	if err := ai.ParseInto(reply, &result); err != nil {
		return nil, err
	}
	if !isPermutation(result.Sections) {
		s.logger.Warn("restructure positions are not a permutation",
			zap.String("submission_id", sub.ID),
			zap.Int("sections", len(result.Sections)))
	}

	result.Model = s.client.Model()
	result.RecordID = s.persist(ctx, sub, models.KindRestructure, opts, &result, started)
	return &result, nil
}

// isPermutation reports whether the sections' original positions cover
// 1..n exactly once.
func isPermutation(sections []Section) bool {
	if len(sections) == 0 {
		return false
	}
	seen := make(map[int]bool, len(sections))
	for _, sec := range sections {
		p := sec.OriginalPosition
		if p < 1 || p > len(sections) || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}
