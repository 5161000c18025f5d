package ai

import (
	"context"
	"sync"
)

// MockClient is a scripted Client for tests. Responses are returned in
// order; when they run out the last one repeats. A non-nil Err is returned
// for every call instead.
type MockClient struct {
	Responses []string
	Err       error

	mu    sync.Mutex
	calls []*Request
	next  int
}

// Complete returns the next scripted response.
func (m *MockClient) Complete(_ context.Context, req *Request) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, req)
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Responses) == 0 {
		return "", ErrBadResponse
	}
	i := m.next
	if i >= len(m.Responses) {
		i = len(m.Responses) - 1
	}
	m.next++
	return m.Responses[i], nil
}

// Model returns a fixed test model name.
func (m *MockClient) Model() string { return "mock-model" }

// Calls returns the requests seen so far.
func (m *MockClient) Calls() []*Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*Request(nil), m.calls...)
}
