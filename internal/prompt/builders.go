package prompt

import (
	"fmt"
	"strings"

	"github.com/quillworks/inkwell/internal/ai"
	"github.com/quillworks/inkwell/internal/models"
	"github.com/quillworks/inkwell/internal/readability"
)

// promptData is the execution context shared by all user-prompt templates;
// each template reads the fields relevant to its operation.
type promptData struct {
	Title        string
	Text         string
	Readability  string
	Audience     string
	Venue        string
	Style        string
	TargetFormat string
	Focus        string
	Caption      string
	Description  string
}

// BuildEvaluation builds the evaluation request for a submission.
func (r *Registry) BuildEvaluation(sub *models.Submission, report *readability.Report, opts *models.EvaluateOptions) (*ai.Request, error) {
	return r.build(KindEvaluation, &promptData{
		Title:       sub.Title,
		Text:        sub.Content,
		Readability: FormatReport(report),
		Audience:    opts.Audience,
		Venue:       opts.Venue,
	})
}

// BuildRewrite builds the rewrite request for a submission.
func (r *Registry) BuildRewrite(sub *models.Submission, report *readability.Report, opts *models.RewriteOptions) (*ai.Request, error) {
	return r.build(KindRewrite, &promptData{
		Title:       sub.Title,
		Text:        sub.Content,
		Readability: FormatReport(report),
		Audience:    opts.Audience,
		Style:       opts.Style,
	})
}

// BuildRestructure builds the restructuring request for a submission.
func (r *Registry) BuildRestructure(sub *models.Submission, report *readability.Report, opts *models.RestructureOptions) (*ai.Request, error) {
	return r.build(KindRestructure, &promptData{
		Title:        sub.Title,
		Text:         sub.Content,
		Readability:  FormatReport(report),
		TargetFormat: opts.TargetFormat,
	})
}

// BuildFigure builds the figure-evaluation request. The manuscript excerpt
// gives the model context for judging whether the caption stands alone.
func (r *Registry) BuildFigure(sub *models.Submission, opts *models.FigureOptions) (*ai.Request, error) {
	excerpt := sub.Content
	if len(excerpt) > 2000 {
		excerpt = excerpt[:2000]
	}
	return r.build(KindFigure, &promptData{
		Text:        excerpt,
		Caption:     opts.Caption,
		Description: opts.Description,
	})
}

// BuildCoherence builds the coherence-analysis request.
func (r *Registry) BuildCoherence(sub *models.Submission, report *readability.Report, opts *models.CoherenceOptions) (*ai.Request, error) {
	return r.build(KindCoherence, &promptData{
		Title:       sub.Title,
		Text:        sub.Content,
		Readability: FormatReport(report),
		Focus:       opts.Focus,
	})
}

func (r *Registry) build(kind Kind, data *promptData) (*ai.Request, error) {
	user, err := r.render(kind, data)
	if err != nil {
		return nil, err
	}
	return &ai.Request{System: systemPrompts[kind], User: user}, nil
}

// FormatReport renders a readability report as the compact plain-text
// summary embedded in prompts.
func FormatReport(r *readability.Report) string {
	if r == nil {
		return "not available"
	}
	if r.FleschGrade == readability.GradeUnknown {
		return "not available (text could not be analyzed)"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "- Flesch Reading Ease: %.1f (%s)\n", r.FleschScore, r.FleschGrade)
	fmt.Fprintf(&b, "- Sentences: %d, words: %d\n", r.TotalSentences, r.TotalWords)
	fmt.Fprintf(&b, "- Average sentence length: %.1f words\n", r.AvgSentenceLength)
	fmt.Fprintf(&b, "- Passive voice: %d%% of sentences", r.PassiveVoicePercent)
	if len(r.LongSentences) > 0 {
		fmt.Fprintf(&b, "\n- Overlong sentences (>%d words):", readability.DefaultLongSentenceWords)
		for i, ls := range r.LongSentences {
			fmt.Fprintf(&b, "\n  %d. (sentence %d, %d words) %s", i+1, ls.Position, ls.WordCount, ls.Text)
		}
	}
	return b.String()
}
