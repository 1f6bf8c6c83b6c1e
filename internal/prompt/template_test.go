package prompt

import "testing"

func TestFormatTemplate(t *testing.T) {
	result, err := FormatTemplate("Hello {name}, season: {season}", map[string]string{
		"name":   "planner",
		"season": "Diwali",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "Hello planner, season: Diwali" {
		t.Fatalf("unexpected result: %s", result)
	}
}

func TestFormatTemplateLiteralBraces(t *testing.T) {
	result, err := FormatTemplate(`{{"campaigns": [{{"id": "{id}"}}]}}`, map[string]string{"id": "c1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != `{"campaigns": [{"id": "c1"}]}` {
		t.Fatalf("unexpected result: %s", result)
	}
}

func TestFormatTemplateErrors(t *testing.T) {
	if _, err := FormatTemplate("{missing", nil); err == nil {
		t.Fatalf("expected missing brace error")
	}
	if _, err := FormatTemplate("}oops", nil); err == nil {
		t.Fatalf("expected unexpected brace error")
	}
	if _, err := FormatTemplate("{key}", map[string]string{}); err == nil {
		t.Fatalf("expected missing value error")
	}
}
