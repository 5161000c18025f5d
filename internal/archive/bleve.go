// Package archive provides keyword search over past submissions using a
// Bleve index, so earlier drafts and their feedback can be found again.
package archive

import (
	"fmt"
	"os"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/quillworks/inkwell/internal/models"
)

// Index is a Bleve-backed submission index.
type Index struct {
	index bleve.Index
}

// indexedSubmission is the subset of a submission that gets indexed.
type indexedSubmission struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Hit is one search result.
type Hit struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// Open opens or creates a Bleve index at path. An existing index is
// reused; delete the directory to force a rebuild after mapping changes.
func Open(path string) (*Index, error) {
	if _, err := os.Stat(path); err == nil {
		index, openErr := bleve.Open(path)
		if openErr != nil {
			return nil, fmt.Errorf("failed to open archive index: %w", openErr)
		}
		return &Index{index: index}, nil
	}

	im := bleve.NewIndexMapping()
	docMapping := bleve.NewDocumentMapping()
	// Standard analyzer (lowercase + tokenize, no stemming) so technical
	// terms match exactly as written.
	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Analyzer = standard.Name
	docMapping.AddFieldMappingsAt("content", textFieldMapping)
	titleFieldMapping := bleve.NewTextFieldMapping()
	titleFieldMapping.Analyzer = standard.Name
	titleFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("title", titleFieldMapping)
	im.DefaultMapping = docMapping

	index, err := bleve.New(path, im)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive index: %w", err)
	}
	return &Index{index: index}, nil
}

// IndexSubmission adds or updates a submission in the index.
func (i *Index) IndexSubmission(sub *models.Submission) error {
	return i.index.Index(sub.ID, &indexedSubmission{Title: sub.Title, Content: sub.Content})
}

// Delete removes a submission from the index.
func (i *Index) Delete(id string) error {
	return i.index.Delete(id)
}

// Search runs a match query over title and content and returns up to
// limit hits, best first.
func (i *Index) Search(query string, limit int) ([]*Hit, error) {
	if limit <= 0 {
		limit = 10
	}
	q := bleve.NewMatchQuery(query)
	req := bleve.NewSearchRequestOptions(q, limit, 0, false)
	req.Fields = []string{"title"}
	res, err := i.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("archive search: %w", err)
	}
	hits := make([]*Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		hit := &Hit{ID: h.ID, Score: h.Score}
		if title, ok := h.Fields["title"].(string); ok {
			hit.Title = title
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

// Count returns the number of indexed submissions.
func (i *Index) Count() (uint64, error) {
	return i.index.DocCount()
}

// Close closes the index.
func (i *Index) Close() error {
	return i.index.Close()
}
