// Package storage provides the SQLite implementation of the Storage interface.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/quillworks/inkwell/internal/models"
)

// SQLiteStorage implements Storage using SQLite.
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage opens or creates a SQLite database at dbPath and
// initializes the schema. Parent directories are created if they do not
// exist.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS submissions (
		id TEXT PRIMARY KEY,
		title TEXT,
		content TEXT NOT NULL,
		source TEXT,
		word_count INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_submissions_created_at ON submissions(created_at);

	CREATE TABLE IF NOT EXISTS feedback_records (
		id TEXT PRIMARY KEY,
		submission_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		request TEXT,
		result TEXT NOT NULL,
		model TEXT,
		latency_ms INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (submission_id) REFERENCES submissions(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_feedback_submission_id ON feedback_records(submission_id);
	CREATE INDEX IF NOT EXISTS idx_feedback_submission_kind ON feedback_records(submission_id, kind);
	`
	_, err := db.Exec(schema)
	return err
}

// CreateSubmission inserts a submission.
func (s *SQLiteStorage) CreateSubmission(ctx context.Context, sub *models.Submission) error {
	sub.CreatedAt = time.Now()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO submissions (id, title, content, source, word_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.Title, sub.Content, sub.Source, sub.WordCount, sub.CreatedAt,
	)
	return err
}

// GetSubmission returns a submission by ID.
func (s *SQLiteStorage) GetSubmission(ctx context.Context, id string) (*models.Submission, error) {
	var sub models.Submission
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, content, source, word_count, created_at
		 FROM submissions WHERE id = ?`, id,
	).Scan(&sub.ID, &sub.Title, &sub.Content, &sub.Source, &sub.WordCount, &sub.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("submission not found: %s", id)
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// ListSubmissions returns submissions newest first with offset and limit.
func (s *SQLiteStorage) ListSubmissions(ctx context.Context, offset, limit int) ([]*models.Submission, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, content, source, word_count, created_at
		 FROM submissions ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*models.Submission
	for rows.Next() {
		var sub models.Submission
		if err := rows.Scan(&sub.ID, &sub.Title, &sub.Content, &sub.Source, &sub.WordCount, &sub.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, &sub)
	}
	return subs, rows.Err()
}

// DeleteSubmission removes a submission; its feedback records cascade.
func (s *SQLiteStorage) DeleteSubmission(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM submissions WHERE id = ?`, id)
	return err
}

// CreateFeedback inserts a feedback record.
func (s *SQLiteStorage) CreateFeedback(ctx context.Context, rec *models.FeedbackRecord) error {
	if !rec.Kind.Valid() {
		return fmt.Errorf("invalid feedback kind: %s", rec.Kind)
	}
	rec.CreatedAt = time.Now()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO feedback_records (id, submission_id, kind, request, result, model, latency_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.SubmissionID, rec.Kind, rec.Request, rec.Result, rec.Model, rec.LatencyMS, rec.CreatedAt,
	)
	return err
}

// GetFeedback returns a feedback record by ID.
func (s *SQLiteStorage) GetFeedback(ctx context.Context, id string) (*models.FeedbackRecord, error) {
	var rec models.FeedbackRecord
	err := s.db.QueryRowContext(ctx,
		`SELECT id, submission_id, kind, request, result, model, latency_ms, created_at
		 FROM feedback_records WHERE id = ?`, id,
	).Scan(&rec.ID, &rec.SubmissionID, &rec.Kind, &rec.Request, &rec.Result, &rec.Model, &rec.LatencyMS, &rec.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("feedback record not found: %s", id)
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListFeedbackBySubmission returns all feedback for a submission, oldest first.
func (s *SQLiteStorage) ListFeedbackBySubmission(ctx context.Context, submissionID string) ([]*models.FeedbackRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, submission_id, kind, request, result, model, latency_ms, created_at
		 FROM feedback_records WHERE submission_id = ? ORDER BY created_at`,
		submissionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*models.FeedbackRecord
	for rows.Next() {
		var rec models.FeedbackRecord
		if err := rows.Scan(&rec.ID, &rec.SubmissionID, &rec.Kind, &rec.Request, &rec.Result, &rec.Model, &rec.LatencyMS, &rec.CreatedAt); err != nil {
			return nil, err
		}
		recs = append(recs, &rec)
	}
	return recs, rows.Err()
}

// CountSubmissions returns the total number of submissions.
func (s *SQLiteStorage) CountSubmissions(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM submissions`).Scan(&count)
	return count, err
}

// CountFeedback returns the total number of feedback records.
func (s *SQLiteStorage) CountFeedback(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM feedback_records`).Scan(&count)
	return count, err
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
