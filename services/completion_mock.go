package services

import (
	"context"
	"fmt"
	"sync"
)

// MockCompletionService is a mock implementation of CompletionService for testing
type MockCompletionService struct {
	response string
	prompts  []string
	mu       sync.Mutex
}

// NewMockCompletionService creates a mock responder that replies with the
// given canned text (greeting-prefixed, like the real service).
func NewMockCompletionService(response string) *MockCompletionService {
	return &MockCompletionService{response: response}
}

// Reply records the prompt and returns the canned response
func (m *MockCompletionService) Reply(_ context.Context, prompt, userName string) string {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.response != "" {
		return m.response
	}
	return fmt.Sprintf("Hello %s, mock reply to %q", userName, prompt)
}

// Prompts returns the prompts seen so far (for testing assertions)
func (m *MockCompletionService) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	prompts := make([]string, len(m.prompts))
	copy(prompts, m.prompts)
	return prompts
}
