// Package samples serves example academic passages for the "try an
// example" flow. Texts are loaded from a directory and cached with a TTL
// so edits on disk show up without a restart.
package samples

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Sample is one example passage.
type Sample struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Store loads samples from a directory and caches them until expiry.
type Store struct {
	dir    string
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time

	mu        sync.Mutex
	cached    []*Sample
	expiresAt time.Time
}

// NewStore returns a Store reading *.txt and *.md files under dir.
func NewStore(dir string, ttl time.Duration, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		dir:    dir,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// List returns all samples, sorted by ID.
func (s *Store) List() ([]*Sample, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && s.now().Before(s.expiresAt) {
		return s.cached, nil
	}

	loaded, err := s.load()
	if err != nil {
		return nil, err
	}
	s.cached = loaded
	s.expiresAt = s.now().Add(s.ttl)
	return loaded, nil
}

// Get returns the sample with the given ID, or nil if absent.
func (s *Store) Get(id string) (*Sample, error) {
	all, err := s.List()
	if err != nil {
		return nil, err
	}
	for _, sample := range all {
		if sample.ID == id {
			return sample, nil
		}
	}
	return nil, nil
}

func (s *Store) load() ([]*Sample, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Sample{}, nil
		}
		return nil, fmt.Errorf("read samples dir: %w", err)
	}

	var out []*Sample
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".txt" && ext != ".md" {
			continue
		}
		content, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			s.logger.Warn("skipping unreadable sample",
				zap.String("file", entry.Name()),
				zap.Error(err))
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ext)
		out = append(out, &Sample{
			ID:    id,
			Title: titleFor(id, string(content)),
			Text:  strings.TrimSpace(string(content)),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if out == nil {
		out = []*Sample{}
	}
	s.logger.Debug("loaded samples", zap.Int("count", len(out)))
	return out, nil
}

// titleFor derives a display title from the first markdown heading when
// present, falling back to the file name with separators spaced out.
func titleFor(id, content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			return strings.TrimSpace(strings.TrimLeft(line, "# "))
		}
		if line != "" {
			break
		}
	}
	words := strings.FieldsFunc(id, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
