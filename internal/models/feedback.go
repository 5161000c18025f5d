package models

import "time"

// FeedbackKind identifies which operation produced a feedback record.
type FeedbackKind string

const (
	KindEvaluation  FeedbackKind = "evaluation"
	KindRewrite     FeedbackKind = "rewrite"
	KindRestructure FeedbackKind = "restructure"
	KindFigure      FeedbackKind = "figure"
	KindCoherence   FeedbackKind = "coherence"
)

// Valid reports whether k is a known feedback kind.
func (k FeedbackKind) Valid() bool {
	switch k {
	case KindEvaluation, KindRewrite, KindRestructure, KindFigure, KindCoherence:
		return true
	}
	return false
}

// FeedbackRecord persists one AI-backed operation: the request options and
// parsed result are stored as JSON alongside the model used and latency.
type FeedbackRecord struct {
	ID           string       `json:"id" db:"id"`
	SubmissionID string       `json:"submission_id" db:"submission_id"`
	Kind         FeedbackKind `json:"kind" db:"kind"`
	Request      string       `json:"request" db:"request"`
	Result       string       `json:"result" db:"result"`
	Model        string       `json:"model" db:"model"`
	LatencyMS    int64        `json:"latency_ms" db:"latency_ms"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
}
