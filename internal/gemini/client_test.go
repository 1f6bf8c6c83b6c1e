package gemini

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/genai"

	"github.com/campaignai/campaign-planner-go/internal/config"
	"github.com/campaignai/campaign-planner-go/internal/llm"
	"github.com/campaignai/campaign-planner-go/internal/metrics"
)

func testConfig(apiKey string) *config.Config {
	return &config.Config{
		Gemini: config.GeminiConfig{
			APIKey:          apiKey,
			Model:           "gemini-2.0-flash",
			Temperature:     0.7,
			MaxOutputTokens: 8192,
			TimeoutSeconds:  60,
		},
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient(nil, metrics.NewStore(), nil); err == nil {
		t.Fatalf("expected nil config error")
	}
	if _, err := NewClient(testConfig("key"), nil, nil); err == nil {
		t.Fatalf("expected nil metrics error")
	}
}

func TestEnsureClientNotConfigured(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
	}{
		{name: "empty", apiKey: ""},
		{name: "placeholder", apiKey: "changeme"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client, err := NewClient(testConfig(tc.apiKey), metrics.NewStore(), nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			_, err = client.ensureClient(context.Background())
			if !errors.Is(err, ErrNotConfigured) {
				t.Fatalf("expected ErrNotConfigured, got %v", err)
			}
		})
	}
}

func TestChatNotConfiguredSkipsNetwork(t *testing.T) {
	client, err := NewClient(testConfig(""), metrics.NewStore(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = client.Chat(context.Background(), Request{Prompt: "hello"})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}

	snapshot := client.metrics.Snapshot()
	if snapshot["total_errors"] != 1 {
		t.Fatalf("expected error recorded, got %v", snapshot["total_errors"])
	}
}

func TestBuildContents(t *testing.T) {
	history := []llm.HistoryEntry{
		{Role: "assistant", Content: "A1"},
		{Role: "user", Content: "Q1"},
	}
	contents := buildContents("prompt", history)
	if len(contents) != 3 {
		t.Fatalf("expected 3 contents, got %d", len(contents))
	}
	if contents[0].Role != string(genai.RoleModel) {
		t.Fatalf("expected model role, got %s", contents[0].Role)
	}
	if contents[1].Role != string(genai.RoleUser) {
		t.Fatalf("expected user role, got %s", contents[1].Role)
	}
	if contents[2].Parts[0].Text != "prompt" {
		t.Fatalf("expected prompt text, got %s", contents[2].Parts[0].Text)
	}
}

func TestExtractUsage(t *testing.T) {
	if got := extractUsage(nil); got != (llm.Usage{}) {
		t.Fatalf("expected zero usage for nil response")
	}

	response := &genai.GenerateContentResponse{
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     10,
			CandidatesTokenCount: 20,
			TotalTokenCount:      30,
		},
	}
	got := extractUsage(response)
	if got.InputTokens != 10 || got.OutputTokens != 20 || got.TotalTokens != 30 {
		t.Fatalf("unexpected usage: %+v", got)
	}
}
