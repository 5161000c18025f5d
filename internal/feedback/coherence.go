package feedback

import (
	"context"
	"time"

	"github.com/quillworks/inkwell/internal/ai"
	"github.com/quillworks/inkwell/internal/models"
	"github.com/quillworks/inkwell/internal/readability"
)

// Transition flags a weak join between two paragraphs.
type Transition struct {
	FromParagraph int    `json:"from_paragraph"`
	ToParagraph   int    `json:"to_paragraph"`
	Issue         string `json:"issue"`
	Suggestion    string `json:"suggestion"`
}

// CoherenceResult is the model's paragraph-flow analysis.
type CoherenceResult struct {
	Coherence       int                 `json:"coherence"`
	WeakTransitions []Transition        `json:"weak_transitions"`
	Readability     *readability.Report `json:"readability"`
	RecordID        string              `json:"record_id,omitempty"`
	Model           string              `json:"model"`
}

// AnalyzeCoherence asks the model where the argument flow breaks between
// paragraphs.
func (s *Service) AnalyzeCoherence(ctx context.Context, sub *models.Submission, opts *models.CoherenceOptions) (*CoherenceResult, error) {
	started := time.Now()
	report := s.analyzer.Analyze(sub.Content)

	req, err := s.prompts.BuildCoherence(sub, report, opts)
	if err != nil {
		return nil, err
	}
	reply, err := s.complete(ctx, models.KindCoherence, req)
	if err != nil {
		return nil, err
	}

	var result CoherenceResult
	if err := ai.ParseInto(reply, &result); err != nil {
		return nil, err
	}
	result.Coherence = clampScore(result.Coherence)
	result.Readability = report
	result.Model = s.client.Model()
	result.RecordID = s.persist(ctx, sub, models.KindCoherence, opts, &result, started)
	return &result, nil
}
