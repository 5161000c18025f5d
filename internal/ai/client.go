// Package ai provides the client boundary to the hosted language model.
// Services hand it a fully built prompt and get back the raw completion
// text; everything semantic (prompt construction, JSON schemas, fallback
// behavior) lives with the callers.
package ai

import (
	"context"
	"errors"
)

// ErrUpstream indicates the model API could not be reached or kept
// failing after retries.
var ErrUpstream = errors.New("ai: upstream request failed")

// ErrBadResponse indicates the model replied but its output could not be
// used (empty choices, malformed JSON payload).
var ErrBadResponse = errors.New("ai: unusable model response")

// Request is a single completion request.
type Request struct {
	// System is the system prompt framing the task.
	System string
	// User is the user prompt carrying the text under review.
	User string
	// Temperature overrides the client default when > 0.
	Temperature float64
	// MaxTokens overrides the client default when > 0.
	MaxTokens int
}

// Client completes prompts against a text-generation service.
type Client interface {
	// Complete returns the raw text of the model's reply.
	Complete(ctx context.Context, req *Request) (string, error)
	// Model identifies the underlying model for record keeping.
	Model() string
}
