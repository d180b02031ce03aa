package stages

import (
	"context"
	"errors"
)

// MockClient implements llm.Client for testing.
type MockClient struct {
	GenerateStructuredFunc func(ctx context.Context, system, user string) (string, error)

	// Recorded calls, in order.
	Systems []string
	Users   []string
}

func (m *MockClient) GenerateStructured(ctx context.Context, system, user string) (string, error) {
	m.Systems = append(m.Systems, system)
	m.Users = append(m.Users, user)
	if m.GenerateStructuredFunc != nil {
		return m.GenerateStructuredFunc(ctx, system, user)
	}
	return "", errors.New("no mock response configured")
}

func (m *MockClient) GetModel() string { return "mock-model" }

func (m *MockClient) Close() error { return nil }

// respondWith returns a mock function that always yields the given JSON.
func respondWith(jsonText string) func(context.Context, string, string) (string, error) {
	return func(context.Context, string, string) (string, error) {
		return jsonText, nil
	}
}

// failWith returns a mock function that always fails.
func failWith(message string) func(context.Context, string, string) (string, error) {
	return func(context.Context, string, string) (string, error) {
		return "", errors.New(message)
	}
}
