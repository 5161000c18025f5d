// Package storage defines the persistence interface for submissions and
// feedback records.
package storage

import (
	"context"

	"github.com/quillworks/inkwell/internal/models"
)

// Storage defines submission and feedback persistence operations.
type Storage interface {
	// Submission operations
	CreateSubmission(ctx context.Context, sub *models.Submission) error
	GetSubmission(ctx context.Context, id string) (*models.Submission, error)
	ListSubmissions(ctx context.Context, offset, limit int) ([]*models.Submission, error)
	DeleteSubmission(ctx context.Context, id string) error

	// Feedback operations
	CreateFeedback(ctx context.Context, rec *models.FeedbackRecord) error
	GetFeedback(ctx context.Context, id string) (*models.FeedbackRecord, error)
	ListFeedbackBySubmission(ctx context.Context, submissionID string) ([]*models.FeedbackRecord, error)

	// Stats
	CountSubmissions(ctx context.Context) (int64, error)
	CountFeedback(ctx context.Context) (int64, error)

	Close() error
}
