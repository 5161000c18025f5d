package feedback

import (
	"context"
	"errors"
	"time"

	"github.com/quillworks/inkwell/internal/ai"
	"github.com/quillworks/inkwell/internal/diff"
	"github.com/quillworks/inkwell/internal/models"
	"github.com/quillworks/inkwell/internal/readability"
)

// rewriteReply is the JSON shape the model is instructed to return.
type rewriteReply struct {
	Rewritten string `json:"rewritten"`
	Summary   string `json:"summary"`
}

// RewriteResult carries the rewritten text together with the locally
// computed word diff and before/after readability reports.
type RewriteResult struct {
	Rewritten string              `json:"rewritten"`
	Summary   string              `json:"summary"`
	Diff      []diff.Segment      `json:"diff"`
	Before    *readability.Report `json:"before"`
	After     *readability.Report `json:"after"`
	RecordID  string              `json:"record_id,omitempty"`
	Model     string              `json:"model"`
	// Degraded is true when the model reply could not be used and the
	// original text was returned unchanged instead.
	Degraded bool `json:"degraded,omitempty"`
}

// Rewrite produces a styled rewrite of the submission. When the model
// replies but its output cannot be parsed, the original text comes back
// unchanged with Degraded set, mirroring how a human editor would decline
// rather than hand over garbage. Transport-level failures remain errors.
func (s *Service) Rewrite(ctx context.Context, sub *models.Submission, opts *models.RewriteOptions) (*RewriteResult, error) {
	started := time.Now()
	before := s.analyzer.Analyze(sub.Content)

	req, err := s.prompts.BuildRewrite(sub, before, opts)
	if err != nil {
		return nil, err
	}
	reply, err := s.complete(ctx, models.KindRewrite, req)
	if err != nil {
		return nil, err
	}

	var parsed rewriteReply
	degraded := false
	if err := ai.ParseInto(reply, &parsed); err != nil || parsed.Rewritten == "" {
		if err != nil && !errors.Is(err, ai.ErrBadResponse) {
			return nil, err
		}
		s.logger.Warn("rewrite reply unusable, returning original text")
		parsed.Rewritten = sub.Content
		parsed.Summary = "The rewrite could not be completed; the original text is unchanged."
		degraded = true
	}

	result := &RewriteResult{
		Rewritten: parsed.Rewritten,
		Summary:   parsed.Summary,
		Diff:      diff.Diff(sub.Content, parsed.Rewritten),
		Before:    before,
		After:     s.analyzer.Analyze(parsed.Rewritten),
		Model:     s.client.Model(),
		Degraded:  degraded,
	}
	result.RecordID = s.persist(ctx, sub, models.KindRewrite, opts, result, started)
	return result, nil
}
