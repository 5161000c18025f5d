// Package integration exercises the full feedback pipeline against real
// storage and a real archive index, with only the model client mocked.
package integration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/quillworks/inkwell/internal/ai"
	"github.com/quillworks/inkwell/internal/archive"
	"github.com/quillworks/inkwell/internal/feedback"
	"github.com/quillworks/inkwell/internal/models"
	"github.com/quillworks/inkwell/internal/prompt"
	"github.com/quillworks/inkwell/internal/readability"
	"github.com/quillworks/inkwell/internal/storage"
)

func TestIntegration_FeedbackFlow(t *testing.T) {
	dir := t.TempDir()

	store, err := storage.NewSQLiteStorage(filepath.Join(dir, "db.sqlite"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	idx, err := archive.Open(filepath.Join(dir, "archive.bleve"))
	if err != nil {
		t.Fatal(err)
	}
	defer idx.Close()

	registry, err := prompt.NewRegistry("", nil)
	if err != nil {
		t.Fatal(err)
	}

	mock := &ai.MockClient{Responses: []string{
		`{"overall": 68, "clarity": 70, "structure": 60, "grammar": 80, "originality": 55,
		  "strengths": ["focused"], "weaknesses": ["terse"], "suggestions": ["elaborate"]}`,
		`{"rewritten": "The experiment measured recall across three sessions.", "summary": "Tightened phrasing."}`,
	}}
	svc := feedback.NewService(mock, registry, readability.New(nil), store, nil)
	ctx := context.Background()

	sub := &models.Submission{
		ID:      "sub1",
		Title:   "Memory Study",
		Content: "The experiment was conducted to measure recall. Recall was measured across three sessions.",
	}
	if err := store.CreateSubmission(ctx, sub); err != nil {
		t.Fatal(err)
	}
	if err := idx.IndexSubmission(sub); err != nil {
		t.Fatal(err)
	}

	evalOpts := &models.EvaluateOptions{}
	if err := evalOpts.Validate(); err != nil {
		t.Fatal(err)
	}
	eval, err := svc.Evaluate(ctx, sub, evalOpts)
	if err != nil {
		t.Fatal(err)
	}
	if eval.Evaluation.Overall != 68 {
		t.Errorf("overall: got %d", eval.Evaluation.Overall)
	}
	if eval.Readability == nil || eval.Readability.TotalSentences != 2 {
		t.Errorf("readability: %+v", eval.Readability)
	}

	rwOpts := &models.RewriteOptions{Style: "concise"}
	if err := rwOpts.Validate(); err != nil {
		t.Fatal(err)
	}
	rw, err := svc.Rewrite(ctx, sub, rwOpts)
	if err != nil {
		t.Fatal(err)
	}
	if rw.Degraded {
		t.Error("rewrite should not degrade on a valid reply")
	}
	if len(rw.Diff) == 0 {
		t.Error("expected diff segments")
	}

	records, err := store.ListFeedbackBySubmission(ctx, sub.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 feedback records, got %d", len(records))
	}

	hits, err := idx.Search("memory", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 || hits[0].ID != "sub1" {
		t.Errorf("archive hits: %+v", hits)
	}

	if err := store.DeleteSubmission(ctx, sub.ID); err != nil {
		t.Fatal(err)
	}
	if err := idx.Delete(sub.ID); err != nil {
		t.Fatal(err)
	}
	records, err = store.ListFeedbackBySubmission(ctx, sub.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("cascade delete left %d records", len(records))
	}
}
