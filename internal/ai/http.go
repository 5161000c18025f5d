package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/quillworks/inkwell/internal/config"
	"go.uber.org/zap"
)

// HTTPClient talks to an OpenAI-compatible chat-completions endpoint.
// Failures retry a fixed number of times with linear backoff; this is a
// simple retry loop, not a resilience layer.
type HTTPClient struct {
	baseURL     string
	model       string
	apiKey      string
	temperature float64
	maxTokens   int
	maxRetries  int
	backoff     time.Duration
	http        *http.Client
	logger      *zap.Logger
}

// NewHTTPClient builds a client from config. apiKey comes from the
// environment (see config.AIConfig.APIKeyEnv); it is never logged.
func NewHTTPClient(cfg *config.AIConfig, apiKey string, logger *zap.Logger) *HTTPClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPClient{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		model:       cfg.Model,
		apiKey:      apiKey,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		maxRetries:  cfg.MaxRetries,
		backoff:     time.Duration(cfg.RetryBackoffSeconds) * time.Second,
		http:        &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		logger:      logger,
	}
}

// Model returns the configured model name.
func (c *HTTPClient) Model() string { return c.model }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete sends the request and returns the first choice's content.
// Transport errors, 429, and 5xx are retried up to the configured attempt
// count with linear backoff (attempt × base delay); other client errors
// fail immediately.
func (c *HTTPClient) Complete(ctx context.Context, req *Request) (string, error) {
	body, err := json.Marshal(c.chatRequest(req))
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		if attempt > 1 {
			delay := time.Duration(attempt-1) * c.backoff
			c.logger.Debug("retrying completion",
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		content, retryable, err := c.once(ctx, body)
		if err == nil {
			return content, nil
		}
		lastErr = err
		if !retryable {
			return "", err
		}
		c.logger.Warn("completion attempt failed",
			zap.Int("attempt", attempt),
			zap.Error(err))
	}
	return "", fmt.Errorf("%w: %v", ErrUpstream, lastErr)
}

// once performs a single request. The second return value reports whether
// the failure is worth retrying.
func (c *HTTPClient) once(ctx context.Context, body []byte) (string, bool, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", false, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", true, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return "", true, err
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to parse
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return "", true, fmt.Errorf("status %d: %s", resp.StatusCode, trimBody(data))
	default:
		return "", false, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, trimBody(data))
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if parsed.Error != nil {
		return "", false, fmt.Errorf("%w: %s", ErrUpstream, parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", false, fmt.Errorf("%w: no choices", ErrBadResponse)
	}
	return parsed.Choices[0].Message.Content, false, nil
}

func (c *HTTPClient) chatRequest(req *Request) *chatRequest {
	temp := c.temperature
	if req.Temperature > 0 {
		temp = req.Temperature
	}
	maxTokens := c.maxTokens
	if req.MaxTokens > 0 {
		maxTokens = req.MaxTokens
	}
	msgs := make([]chatMessage, 0, 2)
	if req.System != "" {
		msgs = append(msgs, chatMessage{Role: "system", Content: req.System})
	}
	msgs = append(msgs, chatMessage{Role: "user", Content: req.User})
	return &chatRequest{
		Model:       c.model,
		Messages:    msgs,
		Temperature: temp,
		MaxTokens:   maxTokens,
	}
}

func trimBody(data []byte) string {
	s := strings.TrimSpace(string(data))
	if len(s) > 300 {
		s = s[:300]
	}
	return s
}
