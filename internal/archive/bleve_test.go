package archive

import (
	"path/filepath"
	"testing"

	"github.com/quillworks/inkwell/internal/models"
)

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := Open(filepath.Join(t.TempDir(), "bleve"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { idx.Close() })
	return idx
}

func TestIndex_SearchFindsSubmission(t *testing.T) {
	idx := newTestIndex(t)

	subs := []*models.Submission{
		{ID: "a", Title: "Bayesian methods", Content: "We apply Bayesian inference to survey data."},
		{ID: "b", Title: "Fieldwork notes", Content: "Observations from the northern site."},
	}
	for _, s := range subs {
		if err := idx.IndexSubmission(s); err != nil {
			t.Fatal(err)
		}
	}

	hits, err := idx.Search("bayesian", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 || hits[0].ID != "a" {
		t.Errorf("hits: %+v", hits)
	}
	if hits[0].Title != "Bayesian methods" {
		t.Errorf("title not returned: %+v", hits[0])
	}
}

func TestIndex_Delete(t *testing.T) {
	idx := newTestIndex(t)
	_ = idx.IndexSubmission(&models.Submission{ID: "a", Title: "T", Content: "about archaeology"})

	if err := idx.Delete("a"); err != nil {
		t.Fatal(err)
	}
	hits, err := idx.Search("archaeology", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 0 {
		t.Errorf("expected no hits after delete, got %+v", hits)
	}
}

func TestIndex_Count(t *testing.T) {
	idx := newTestIndex(t)
	_ = idx.IndexSubmission(&models.Submission{ID: "a", Title: "T", Content: "one"})
	_ = idx.IndexSubmission(&models.Submission{ID: "b", Title: "T", Content: "two"})
	n, err := idx.Count()
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("count: got %d, want 2", n)
	}
}

func TestIndex_LimitAndDefault(t *testing.T) {
	idx := newTestIndex(t)
	for _, id := range []string{"a", "b", "c"} {
		_ = idx.IndexSubmission(&models.Submission{ID: id, Title: "shared", Content: "shared topic words"})
	}
	hits, err := idx.Search("shared", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 2 {
		t.Errorf("limit not applied: got %d hits", len(hits))
	}
	if _, err := idx.Search("shared", 0); err != nil {
		t.Errorf("zero limit should fall back to default: %v", err)
	}
}
