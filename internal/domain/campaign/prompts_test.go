package campaign

import (
	"strings"
	"testing"
)

func TestLoadPrompts(t *testing.T) {
	if _, err := LoadPrompts(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCampaignPrompt(t *testing.T) {
	prompts, err := LoadPrompts()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rendered, err := prompts.CampaignPrompt("holiday campaign", CampaignFilters{Season: "Winter"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		`User Query: "holiday campaign"`,
		"Season: Winter",
		"Festival: relevant festivals",
		"Trend: current trends",
		`"campaigns": [`,
	} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}

	// 같은 입력이면 같은 프롬프트여야 한다.
	again, err := prompts.CampaignPrompt("holiday campaign", CampaignFilters{Season: "Winter"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rendered != again {
		t.Fatalf("campaign prompt not deterministic")
	}
}

func TestPersonaPromptConstraints(t *testing.T) {
	prompts, err := LoadPrompts()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := Campaign{
		Title:          "Spring Sale",
		Description:    "Seasonal discounts",
		TargetAudience: "Young families",
		Season:         "Spring",
	}
	rendered, err := prompts.PersonaPrompt(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"create 5 different personas",
		"exactly 12 tailored offers",
		"Do not return fewer than 12 offers per persona",
		"- Title: Spring Sale",
		"- Key Messages: General campaign message",
		"- Channels: Email, SMS, Social",
	} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("persona prompt missing %q", want)
		}
	}
}

func TestPersonaPromptUsesCampaignContent(t *testing.T) {
	prompts, err := LoadPrompts()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := Campaign{
		Title:       "Diwali Blast",
		Description: "Festival push",
		Channels:    []string{"WhatsApp", "SMS"},
		Content:     Content{KeyMessages: []string{"Light up savings", "Family first"}},
	}
	rendered, err := prompts.PersonaPrompt(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(rendered, "Light up savings, Family first") {
		t.Fatalf("key messages not interpolated")
	}
	if !strings.Contains(rendered, "WhatsApp, SMS") {
		t.Fatalf("channels not interpolated")
	}
}

func TestChatPrompt(t *testing.T) {
	prompts, err := LoadPrompts()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rendered, err := prompts.ChatPrompt("suggest 4 campaigns", `{"lastCampaign":"c1"}`, "2026-09-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Today: 2026-09-01.",
		"SuggestCampaigns",
		"CampaignDetails",
		"LaunchCampaign",
		`User Message: "suggest 4 campaigns"`,
		`Context: {"lastCampaign":"c1"}`,
		"exactly ONE fenced JSON block per reply",
	} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("chat prompt missing %q", want)
		}
	}

	noContext, err := prompts.ChatPrompt("hi", "", "2026-09-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(noContext, "Context: None") {
		t.Fatalf("empty context should render as None")
	}
}
