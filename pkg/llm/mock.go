package llm

import (
	"context"
	"sync"
)

// MockClient implements the Client interface for testing
type MockClient struct {
	mu sync.Mutex

	// CompleteFunc allows customizing the completion behavior
	CompleteFunc func(context.Context, Request) (string, error)

	// Calls records every request for assertions
	Calls []Request
}

// Ensure MockClient implements Client
var _ Client = (*MockClient)(nil)

// NewMockClient creates a new mock client with default behavior
func NewMockClient() *MockClient {
	return &MockClient{
		Calls: make([]Request, 0),
	}
}

// Complete implements Client.Complete
func (m *MockClient) Complete(ctx context.Context, req Request) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, req)
	m.mu.Unlock()

	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, req)
	}
	return "This is a mock completion.", nil
}

// CallCount returns the number of completion calls made
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// Reset clears the call history
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = make([]Request, 0)
}
