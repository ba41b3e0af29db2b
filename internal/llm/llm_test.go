package llm

import (
	"context"
	"sync"
	"testing"
)

// MockClient is a test client that records calls and returns canned responses.
type MockClient struct {
	mu       sync.Mutex
	Calls    []Request
	Response string
	Err      error
	ProvName string
}

func NewMockClient(name string) *MockClient {
	return &MockClient{
		ProvName: name,
		Response: "mock response",
	}
}

func (m *MockClient) Name() string {
	return m.ProvName
}

func (m *MockClient) Complete(ctx context.Context, req Request) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, req)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// --- Tests ---

func TestMockClientRecordsCalls(t *testing.T) {
	mock := NewMockClient("test")
	ctx := context.Background()

	resp, err := mock.Complete(ctx, Request{System: "be brief", User: "hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp != "mock response" {
		t.Errorf("expected 'mock response', got %q", resp)
	}

	if mock.CallCount() != 1 {
		t.Errorf("expected 1 call, got %d", mock.CallCount())
	}

	if mock.Calls[0].User != "hello" {
		t.Errorf("expected user message 'hello', got %q", mock.Calls[0].User)
	}
}

func TestFactoryReturnsErrorForMissingAPIKey(t *testing.T) {
	// Ensure env vars are not set for this test.
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	providers := []string{"anthropic", "openai"}
	for _, p := range providers {
		_, err := New(p, "some-model")
		if err == nil {
			t.Errorf("expected error for provider %q with missing API key", p)
		}
	}
}

func TestFactoryReturnsErrorForUnknownProvider(t *testing.T) {
	_, err := New("unknown", "some-model")
	if err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestFactoryCreatesOllamaWithoutAPIKey(t *testing.T) {
	t.Setenv("OLLAMA_HOST", "http://localhost:11434")
	client, err := New("ollama", "llama3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Name() != "ollama" {
		t.Errorf("expected name 'ollama', got %q", client.Name())
	}
}

func TestFactoryCreatesOllamaWithDefaultHost(t *testing.T) {
	t.Setenv("OLLAMA_HOST", "")
	client, err := New("ollama", "llama3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ollamaC, ok := client.(*OllamaClient)
	if !ok {
		t.Fatal("expected *OllamaClient")
	}
	if ollamaC.baseURL != "http://localhost:11434" {
		t.Errorf("expected default host, got %q", ollamaC.baseURL)
	}
}

func TestFactoryCreatesAnthropicClient(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	client, err := New("anthropic", "claude-sonnet-4-5-20250929")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Name() != "anthropic" {
		t.Errorf("expected name 'anthropic', got %q", client.Name())
	}
}

func TestFactoryCreatesOpenAIClient(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	client, err := New("openai", "gpt-4o")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Name() != "openai" {
		t.Errorf("expected name 'openai', got %q", client.Name())
	}
}
