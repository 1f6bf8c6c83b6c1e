package prompt

import (
	"testing"
	"testing/fstest"
)

func TestLoadYAMLDir(t *testing.T) {
	fsys := fstest.MapFS{
		"prompts/campaigns.yml": &fstest.MapFile{Data: []byte("system: you are a strategist\nuser: 'query: {query}'\n")},
		"prompts/chat.yaml":     &fstest.MapFile{Data: []byte("system: planner\nempty:\n")},
	}

	prompts, err := LoadYAMLDir(fsys, "prompts")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prompts) != 2 {
		t.Fatalf("expected 2 prompts, got %d", len(prompts))
	}

	campaigns, err := Get(prompts, "campaigns")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if campaigns["system"] != "you are a strategist" {
		t.Fatalf("unexpected system prompt: %s", campaigns["system"])
	}

	chat, err := Get(prompts, "chat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chat["empty"] != "" {
		t.Fatalf("expected empty field, got %q", chat["empty"])
	}

	if _, err := Get(prompts, "missing"); err == nil {
		t.Fatalf("expected missing prompt error")
	}
	if _, err := Field(campaigns, "nope", "campaigns.nope"); err == nil {
		t.Fatalf("expected missing field error")
	}
}

func TestLoadYAMLMappingInvalid(t *testing.T) {
	fsys := fstest.MapFS{
		"prompts/bad.yml": &fstest.MapFile{Data: []byte(":\n\t- broken")},
	}
	if _, err := LoadYAMLMapping(fsys, "prompts/bad.yml"); err == nil {
		t.Fatalf("expected yaml parse error")
	}
}
