package prompt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quillworks/inkwell/internal/models"
	"github.com/quillworks/inkwell/internal/readability"
)

func testSubmission() *models.Submission {
	return &models.Submission{
		ID:      "s1",
		Title:   "On Cats",
		Content: "The cat sat on the mat. It was a nice day.",
	}
}

func testReport() *readability.Report {
	return readability.New(nil).Analyze(testSubmission().Content)
}

func TestRegistry_Defaults(t *testing.T) {
	r, err := NewRegistry("", nil)
	if err != nil {
		t.Fatal(err)
	}
	opts := &models.EvaluateOptions{}
	_ = opts.Validate()
	req, err := r.BuildEvaluation(testSubmission(), testReport(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if req.System == "" {
		t.Error("system prompt should be set")
	}
	if !strings.Contains(req.User, "On Cats") {
		t.Errorf("user prompt missing title: %s", req.User)
	}
	if !strings.Contains(req.User, "The cat sat on the mat.") {
		t.Error("user prompt missing text")
	}
	if !strings.Contains(req.User, "Flesch Reading Ease") {
		t.Error("user prompt missing readability context")
	}
	if !strings.Contains(req.User, "academic readers") {
		t.Error("user prompt missing audience")
	}
}

func TestRegistry_AllKindsRender(t *testing.T) {
	r, err := NewRegistry("", nil)
	if err != nil {
		t.Fatal(err)
	}
	sub := testSubmission()
	rep := testReport()

	eval := &models.EvaluateOptions{}
	_ = eval.Validate()
	if _, err := r.BuildEvaluation(sub, rep, eval); err != nil {
		t.Errorf("evaluation: %v", err)
	}
	rw := &models.RewriteOptions{}
	_ = rw.Validate()
	if _, err := r.BuildRewrite(sub, rep, rw); err != nil {
		t.Errorf("rewrite: %v", err)
	}
	rs := &models.RestructureOptions{}
	_ = rs.Validate()
	if _, err := r.BuildRestructure(sub, rep, rs); err != nil {
		t.Errorf("restructure: %v", err)
	}
	fig := &models.FigureOptions{Caption: "Figure 1: cats per mat"}
	if _, err := r.BuildFigure(sub, fig); err != nil {
		t.Errorf("figure: %v", err)
	}
	coh := &models.CoherenceOptions{}
	_ = coh.Validate()
	if _, err := r.BuildCoherence(sub, rep, coh); err != nil {
		t.Errorf("coherence: %v", err)
	}
}

func TestRegistry_Override(t *testing.T) {
	dir := t.TempDir()
	override := "CUSTOM EVALUATION PROMPT for {{.Title}}"
	if err := os.WriteFile(filepath.Join(dir, "evaluation.tmpl"), []byte(override), 0600); err != nil {
		t.Fatal(err)
	}
	r, err := NewRegistry(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	opts := &models.EvaluateOptions{}
	_ = opts.Validate()
	req, err := r.BuildEvaluation(testSubmission(), testReport(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(req.User, "CUSTOM EVALUATION PROMPT for On Cats") {
		t.Errorf("override not applied: %s", req.User)
	}
	// Other kinds keep their defaults.
	rw := &models.RewriteOptions{}
	_ = rw.Validate()
	req, err = r.BuildRewrite(testSubmission(), testReport(), rw)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(req.User, "Rewrite the following") {
		t.Error("rewrite default should be untouched")
	}
}

func TestRegistry_BadOverrideFailsStartup(t *testing.T) {
	dir := t.TempDir()
	_ = os.WriteFile(filepath.Join(dir, "rewrite.tmpl"), []byte("{{.Unclosed"), 0600)
	if _, err := NewRegistry(dir, nil); err == nil {
		t.Error("expected error for unparsable override")
	}
}

func TestFormatReport(t *testing.T) {
	if got := FormatReport(nil); got != "not available" {
		t.Errorf("nil report: got %q", got)
	}
	empty := readability.New(nil).Analyze("")
	if got := FormatReport(empty); !strings.Contains(got, "not available") {
		t.Errorf("unanalyzable report: got %q", got)
	}
	full := FormatReport(testReport())
	if !strings.Contains(full, "Flesch Reading Ease") || !strings.Contains(full, "Passive voice") {
		t.Errorf("report summary incomplete: %q", full)
	}
}
