// Package models defines core data structures for submissions, feedback
// records, and operation requests.
package models

import (
	"fmt"
	"strings"
	"time"
)

// MaxSubmissionBytes caps how much text a single submission may carry.
// Readability analysis and diffing are quadratic-free, but the LCS diff is
// O(m×n) in tokens and prompts have model context limits.
const MaxSubmissionBytes = 200_000

// Submission is a piece of writing stored for analysis and feedback.
type Submission struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Source    string    `json:"source,omitempty" db:"source"` // "json" or original filename for uploads
	WordCount int       `json:"word_count" db:"word_count"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SubmissionInput is the payload for creating a submission.
type SubmissionInput struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
}

// Validate normalizes the input and rejects empty or oversized content.
func (in *SubmissionInput) Validate() error {
	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" {
		return fmt.Errorf("content cannot be empty")
	}
	if len(in.Content) > MaxSubmissionBytes {
		return fmt.Errorf("content exceeds %d bytes", MaxSubmissionBytes)
	}
	if strings.TrimSpace(in.Title) == "" {
		in.Title = "Untitled"
	}
	return nil
}
