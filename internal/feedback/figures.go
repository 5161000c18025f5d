package feedback

import (
	"context"
	"time"

	"github.com/quillworks/inkwell/internal/ai"
	"github.com/quillworks/inkwell/internal/models"
)

// FigureResult is the model's review of a figure or table caption.
type FigureResult struct {
	Clarity            int      `json:"clarity"`
	CaptionSuggestions []string `json:"caption_suggestions"`
	Issues             []string `json:"issues"`
	RecordID           string   `json:"record_id,omitempty"`
	Model              string   `json:"model"`
}

// EvaluateFigure reviews a figure/table caption in the context of the
// submission. The description may carry tabular data extracted from an
// uploaded spreadsheet.
func (s *Service) EvaluateFigure(ctx context.Context, sub *models.Submission, opts *models.FigureOptions) (*FigureResult, error) {
	started := time.Now()

	req, err := s.prompts.BuildFigure(sub, opts)
	if err != nil {
		return nil, err
	}
	reply, err := s.complete(ctx, models.KindFigure, req)
	if err != nil {
		return nil, err
	}

	var result FigureResult
	if err := ai.ParseInto(reply, &result); err != nil {
		return nil, err
	}
	result.Clarity = clampScore(result.Clarity)
	result.Model = s.client.Model()
	result.RecordID = s.persist(ctx, sub, models.KindFigure, opts, &result, started)
	return &result, nil
}
