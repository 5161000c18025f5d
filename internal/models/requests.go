package models

import "fmt"

// rewriteStyles are the accepted rewrite styles.
var rewriteStyles = map[string]bool{
	"academic": true,
	"concise":  true,
	"plain":    true,
	"formal":   true,
}

// EvaluateOptions tunes the evaluation prompt.
type EvaluateOptions struct {
	Audience string `json:"audience,omitempty"` // e.g. "journal reviewers", "general readers"
	Venue    string `json:"venue,omitempty"`    // e.g. "conference paper", "thesis chapter"
}

// Validate fills defaults.
func (o *EvaluateOptions) Validate() error {
	if o.Audience == "" {
		o.Audience = "academic readers"
	}
	return nil
}

// RewriteOptions tunes the rewrite prompt.
type RewriteOptions struct {
	Style    string `json:"style,omitempty"`
	Audience string `json:"audience,omitempty"`
}

// Validate defaults the style to academic and rejects unknown styles.
func (o *RewriteOptions) Validate() error {
	if o.Style == "" {
		o.Style = "academic"
	}
	if !rewriteStyles[o.Style] {
		return fmt.Errorf("unknown rewrite style %q", o.Style)
	}
	if o.Audience == "" {
		o.Audience = "academic readers"
	}
	return nil
}

// RestructureOptions tunes the restructuring prompt.
type RestructureOptions struct {
	TargetFormat string `json:"target_format,omitempty"` // e.g. "IMRaD", "argumentative essay"
}

// Validate fills defaults.
func (o *RestructureOptions) Validate() error {
	if o.TargetFormat == "" {
		o.TargetFormat = "IMRaD"
	}
	return nil
}

// FigureOptions carries the figure or table under review. Description may
// come from an uploaded spreadsheet instead of the request body.
type FigureOptions struct {
	Caption     string `json:"caption"`
	Description string `json:"description,omitempty"`
}

// Validate requires a caption.
func (o *FigureOptions) Validate() error {
	if o.Caption == "" {
		return fmt.Errorf("caption cannot be empty")
	}
	return nil
}

// CoherenceOptions tunes the coherence-analysis prompt.
type CoherenceOptions struct {
	Focus string `json:"focus,omitempty"` // e.g. "transitions", "argument flow"
}

// Validate fills defaults.
func (o *CoherenceOptions) Validate() error {
	if o.Focus == "" {
		o.Focus = "transitions"
	}
	return nil
}
