package llm

import (
	"testing"

	"github.com/sashabaranov/go-openai"
)

func TestManagerRegisterAndGetClient(t *testing.T) {
	manager := NewManager()
	err := manager.RegisterClient("openai", Config{
		Provider:            "openai",
		Model:               openai.GPT4,
		APIKey:              "test-key",
		MaxCompletionTokens: 256,
	})
	if err != nil {
		t.Fatalf("RegisterClient() error = %v", err)
	}

	client, err := manager.GetClient("openai")
	if err != nil {
		t.Fatalf("GetClient() error = %v", err)
	}

	info := client.GetModelInfo()
	if info.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", info.Provider)
	}
	if info.Name != openai.GPT4 {
		t.Errorf("Name = %q, want %q", info.Name, openai.GPT4)
	}
	if info.MaxCompletionTokens != 256 {
		t.Errorf("MaxCompletionTokens = %d, want 256", info.MaxCompletionTokens)
	}
	if info.ContextLimit != 8192 {
		t.Errorf("ContextLimit = %d, want 8192", info.ContextLimit)
	}
}

func TestManagerRejectsUnsupportedProvider(t *testing.T) {
	manager := NewManager()
	if err := manager.RegisterClient("anthropic", Config{Provider: "anthropic", APIKey: "k"}); err == nil {
		t.Fatal("expected an error for an unsupported provider")
	}
}

func TestManagerRejectsMissingAPIKey(t *testing.T) {
	manager := NewManager()
	if err := manager.RegisterClient("openai", Config{Provider: "openai"}); err == nil {
		t.Fatal("expected an error for a missing API key")
	}
}

func TestManagerGetClientUnknownName(t *testing.T) {
	manager := NewManager()
	if _, err := manager.GetClient("openai"); err == nil {
		t.Fatal("expected an error for an unregistered client")
	}
}

func TestGeminiModelInfo(t *testing.T) {
	client := &GeminiClient{model: "gemini-1.5-pro", maxCompletionTokens: 512}
	info := client.GetModelInfo()
	if info.Provider != "gemini" {
		t.Errorf("Provider = %q, want gemini", info.Provider)
	}
	if info.Name != "gemini-1.5-pro" {
		t.Errorf("Name = %q, want gemini-1.5-pro", info.Name)
	}
	if info.MaxCompletionTokens != 512 {
		t.Errorf("MaxCompletionTokens = %d, want 512", info.MaxCompletionTokens)
	}
}
