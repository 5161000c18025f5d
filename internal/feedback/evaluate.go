package feedback

import (
	"context"
	"time"

	"github.com/quillworks/inkwell/internal/ai"
	"github.com/quillworks/inkwell/internal/models"
	"github.com/quillworks/inkwell/internal/readability"
)

// Evaluation is the parsed model judgment of a submission.
type Evaluation struct {
	Overall     int      `json:"overall"`
	Clarity     int      `json:"clarity"`
	Structure   int      `json:"structure"`
	Grammar     int      `json:"grammar"`
	Originality int      `json:"originality"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Suggestions []string `json:"suggestions"`
}

// EvaluateResult pairs the model evaluation with the local readability
// report it was given as context.
type EvaluateResult struct {
	Evaluation  *Evaluation         `json:"evaluation"`
	Readability *readability.Report `json:"readability"`
	RecordID    string              `json:"record_id,omitempty"`
	Model       string              `json:"model"`
}

// Evaluate scores a submission. There is no degraded mode: an unusable
// model reply is an error for the caller to surface.
func (s *Service) Evaluate(ctx context.Context, sub *models.Submission, opts *models.EvaluateOptions) (*EvaluateResult, error) {
	started := time.Now()
	report := s.analyzer.Analyze(sub.Content)

	req, err := s.prompts.BuildEvaluation(sub, report, opts)
	if err != nil {
		return nil, err
	}
	reply, err := s.complete(ctx, models.KindEvaluation, req)
	if err != nil {
		return nil, err
	}

	var eval Evaluation
	if err := ai.ParseInto(reply, &eval); err != nil {
		return nil, err
	}
	eval.Overall = clampScore(eval.Overall)
	eval.Clarity = clampScore(eval.Clarity)
	eval.Structure = clampScore(eval.Structure)
	eval.Grammar = clampScore(eval.Grammar)
	eval.Originality = clampScore(eval.Originality)

	result := &EvaluateResult{
		Evaluation:  &eval,
		Readability: report,
		Model:       s.client.Model(),
	}
	result.RecordID = s.persist(ctx, sub, models.KindEvaluation, opts, result, started)
	return result, nil
}
