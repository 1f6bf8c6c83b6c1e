package llmparse

import (
	"errors"
	"testing"
)

func TestExtractObject(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantKey string
		wantErr error
	}{
		{
			name:    "plain object",
			input:   `{"campaigns": []}`,
			wantKey: "campaigns",
		},
		{
			name:    "prose around object",
			input:   "Here is your plan:\n{\"personas\": []}\nHope it helps!",
			wantKey: "personas",
		},
		{
			name:    "json code fence",
			input:   "```json\n{\"campaigns\": [{\"title\": \"Summer\"}]}\n```",
			wantKey: "campaigns",
		},
		{
			name:    "fence without language tag",
			input:   "```\n{\"response\": \"ok\"}\n```",
			wantKey: "response",
		},
		{
			name:    "braces inside string literal",
			input:   `{"note": "uses {curly} text", "campaigns": []}`,
			wantKey: "note",
		},
		{
			name:    "escaped quote inside string",
			input:   `{"note": "she said \"hi}\" twice"}`,
			wantKey: "note",
		},
		{
			name:    "no json at all",
			input:   "I cannot produce campaigns right now.",
			wantErr: ErrNoPayload,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrNoPayload,
		},
		{
			name:    "truncated object",
			input:   `{"campaigns": [{"title": "Summ`,
			wantErr: ErrMalformedPayload,
		},
		{
			name:    "balanced but invalid json",
			input:   `{campaigns: oops}`,
			wantErr: ErrMalformedPayload,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			payload, err := ExtractObject(tc.input)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, ok := payload[tc.wantKey]; !ok {
				t.Fatalf("expected key %q in payload %v", tc.wantKey, payload)
			}
		})
	}
}

func TestExtractRawFirstObjectWins(t *testing.T) {
	raw, err := ExtractRaw(`{"a": 1} trailing {"b": 2}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw != `{"a": 1}` {
		t.Fatalf("expected first object, got %q", raw)
	}
}

func TestExtractRawNestedObjects(t *testing.T) {
	input := `result: {"campaigns": [{"content": {"offer": {"discountValue": 10}}}]}`
	raw, err := ExtractRaw(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw != `{"campaigns": [{"content": {"offer": {"discountValue": 10}}}]}` {
		t.Fatalf("unexpected extraction: %q", raw)
	}
}
