// Package prompt builds the prompts sent to the language model. Templates
// for the user prompt are compiled in but can be overridden per operation
// by <kind>.tmpl files in a prompts directory, with optional hot reload.
package prompt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"text/template"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Kind names a prompt template.
type Kind string

const (
	KindEvaluation  Kind = "evaluation"
	KindRewrite     Kind = "rewrite"
	KindRestructure Kind = "restructure"
	KindFigure      Kind = "figure"
	KindCoherence   Kind = "coherence"
)

// reloadDebounce coalesces editor write bursts into one reload.
const reloadDebounce = 400 * time.Millisecond

var defaultTemplates = map[Kind]string{
	KindEvaluation:  evaluationTemplate,
	KindRewrite:     rewriteTemplate,
	KindRestructure: restructureTemplate,
	KindFigure:      figureTemplate,
	KindCoherence:   coherenceTemplate,
}

var systemPrompts = map[Kind]string{
	KindEvaluation:  evaluationSystem,
	KindRewrite:     rewriteSystem,
	KindRestructure: restructureSystem,
	KindFigure:      figureSystem,
	KindCoherence:   coherenceSystem,
}

// Registry holds the compiled templates for all operations. It is safe for
// concurrent use; Watch swaps templates under the write lock.
type Registry struct {
	dir    string
	logger *zap.Logger

	mu        sync.RWMutex
	templates map[Kind]*template.Template
}

// NewRegistry compiles the default templates and applies any overrides
// found in dir (may be empty for defaults only). A broken override fails
// loudly at startup rather than at request time.
func NewRegistry(dir string, logger *zap.Logger) (*Registry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Registry{dir: dir, logger: logger}
	templates, err := r.compile()
	if err != nil {
		return nil, err
	}
	r.templates = templates
	return r, nil
}

// compile builds the full template set: defaults overlaid with dir files.
func (r *Registry) compile() (map[Kind]*template.Template, error) {
	templates := make(map[Kind]*template.Template, len(defaultTemplates))
	for kind, text := range defaultTemplates {
		t, err := template.New(string(kind)).Parse(text)
		if err != nil {
			return nil, fmt.Errorf("default template %s: %w", kind, err)
		}
		templates[kind] = t
	}
	if r.dir == "" {
		return templates, nil
	}
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return templates, nil
		}
		return nil, fmt.Errorf("read prompts dir: %w", err)
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".tmpl") {
			continue
		}
		kind := Kind(strings.TrimSuffix(name, ".tmpl"))
		if _, known := defaultTemplates[kind]; !known {
			r.logger.Warn("ignoring unknown prompt template", zap.String("file", name))
			continue
		}
		data, err := os.ReadFile(filepath.Join(r.dir, name))
		if err != nil {
			return nil, fmt.Errorf("read template %s: %w", name, err)
		}
		t, err := template.New(string(kind)).Parse(string(data))
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		templates[kind] = t
		r.logger.Debug("loaded prompt override", zap.String("kind", string(kind)))
	}
	return templates, nil
}

// Watch hot-reloads templates when files in the prompts directory change.
// It blocks until ctx is cancelled. A reload that fails to parse keeps the
// previous templates and logs a warning.
func (r *Registry) Watch(ctx context.Context) error {
	if r.dir == "" {
		<-ctx.Done()
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(r.dir); err != nil {
		return err
	}

	var timer *time.Timer
	reload := func() {
		templates, err := r.compile()
		if err != nil {
			r.logger.Warn("prompt reload failed, keeping previous templates", zap.Error(err))
			return
		}
		r.mu.Lock()
		r.templates = templates
		r.mu.Unlock()
		r.logger.Info("prompt templates reloaded", zap.String("dir", r.dir))
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(event.Name, ".tmpl") {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(reloadDebounce, reload)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Warn("prompt watcher error", zap.Error(err))
		}
	}
}

// render executes the template for kind with data.
func (r *Registry) render(kind Kind, data interface{}) (string, error) {
	r.mu.RLock()
	t := r.templates[kind]
	r.mu.RUnlock()
	if t == nil {
		return "", fmt.Errorf("no template for kind %s", kind)
	}
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render %s prompt: %w", kind, err)
	}
	return b.String(), nil
}
